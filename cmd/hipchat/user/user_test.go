// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/bureau-foundation/hipchat/cmd/hipchat/cli"
	"github.com/bureau-foundation/hipchat/hipchat"
	"github.com/bureau-foundation/hipchat/lib/config"
	"github.com/bureau-foundation/hipchat/lib/testutil"
)

const testToken = "user-test-token"

func newServer(t *testing.T) *testutil.Server {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	server := testutil.NewServer(t, testToken)
	server.AddUser(testutil.User{ID: 3, Name: "Ada Lovelace", MentionName: "ada", Email: "ada@example.com", Admin: true})
	server.AddUser(testutil.User{ID: 4, Name: "Grace Hopper", MentionName: "grace", Email: "grace@example.com", Title: "Rear Admiral"})
	server.AddUser(testutil.User{ID: 5, Name: "Charles Babbage", MentionName: "charles", Email: "cb@example.com", Deleted: true})
	return server
}

// run executes "hipchat user <args>" with stdin as input.
func run(t *testing.T, server *testutil.Server, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	command := Command(cli.Streams{In: strings.NewReader(stdin), Out: &stdout})
	command.HelpOutput = io.Discard
	args = append(args, "--base-url", server.URL(), "--token", testToken)
	err := command.Execute(args)
	return stdout.String(), err
}

func requireCategory(t *testing.T, err error, category cli.ErrorCategory) {
	t.Helper()
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != category {
		t.Fatalf("expected %q error, got %v", category, err)
	}
}

func TestList(t *testing.T) {
	server := newServer(t)

	output, err := run(t, server, "", "list")
	if err != nil {
		t.Fatalf("user list failed: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "@grace", "grace@example.com", "available"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Babbage") {
		t.Errorf("deleted user listed without --include-deleted:\n%s", output)
	}
	if server.LastRequest(t, "users/list").Form.Has("include_deleted") {
		t.Error("include_deleted should be omitted by default")
	}

	output, err = run(t, server, "", "list", "--include-deleted", "--json")
	if err != nil {
		t.Fatalf("user list failed: %v", err)
	}
	if got := server.LastRequest(t, "users/list").Form.Get("include_deleted"); got != "1" {
		t.Errorf("include_deleted = %q, want 1", got)
	}
	var users []hipchat.User
	if err := json.Unmarshal([]byte(output), &users); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"mention_name"`) || strings.Contains(output, "assword") {
		t.Errorf("unexpected JSON field names: %s", output)
	}
	if len(users) != 3 || !users[2].IsDeleted {
		t.Errorf("users = %+v", users)
	}
}

func TestShow(t *testing.T) {
	server := newServer(t)

	for _, arg := range []string{"3", "ada@example.com", "@ada", "ADA", "lovelace"} {
		t.Run(arg, func(t *testing.T) {
			output, err := run(t, server, "", "show", arg)
			if err != nil {
				t.Fatalf("user show %s failed: %v", arg, err)
			}
			if !strings.Contains(output, "Ada Lovelace") || !strings.Contains(output, "Admin:       true") {
				t.Errorf("output:\n%s", output)
			}
			if id := server.LastRequest(t, "users/show").Form.Get("user_id"); id != "3" {
				t.Errorf("user_id = %q, want 3", id)
			}
		})
	}

	t.Run("deleted user", func(t *testing.T) {
		output, err := run(t, server, "", "show", "@charles")
		if err != nil {
			t.Fatalf("user show failed: %v", err)
		}
		if !strings.Contains(output, "deleted") {
			t.Errorf("deleted user should show as deleted:\n%s", output)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := run(t, server, "", "show", "zzzz")
		requireCategory(t, err, cli.CategoryNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := run(t, server, "", "show", "999")
		requireCategory(t, err, cli.CategoryNotFound)
	})
}

func TestCreate(t *testing.T) {
	server := newServer(t)
	email := testutil.UniqueName("ken") + "@example.com"

	output, err := run(t, server, "s3cret-password\n", "create", email, "Ken", "Thompson",
		"--mention", "@ken", "--title", "Unix", "--admin", "--password-stdin")
	if err != nil {
		t.Fatalf("user create failed: %v", err)
	}
	if !strings.Contains(output, email) {
		t.Errorf("output = %q", output)
	}

	request := server.LastRequest(t, "users/create")
	want := map[string]string{
		"email":          email,
		"name":           "Ken Thompson",
		"mention_name":   "ken",
		"title":          "Unix",
		"is_group_admin": "1",
		"password":       "s3cret-password",
	}
	for key, value := range want {
		if got := request.Form.Get(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}

	t.Run("server generated password", func(t *testing.T) {
		if _, err := run(t, server, "", "create", testutil.UniqueName("dmr")+"@example.com", "Dennis"); err != nil {
			t.Fatalf("user create failed: %v", err)
		}
		if server.LastRequest(t, "users/create").Form.Has("password") {
			t.Error("password should be omitted without a password option")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := run(t, server, "", "create", "ada@example.com", "Ada Again")
		requireCategory(t, err, cli.CategoryConflict)
	})

	t.Run("empty stdin password", func(t *testing.T) {
		_, err := run(t, server, "\n", "create", "x@example.com", "X", "--password-stdin")
		requireCategory(t, err, cli.CategoryValidation)
	})

	t.Run("prompt without terminal", func(t *testing.T) {
		_, err := run(t, server, "", "create", "y@example.com", "Y", "--password-prompt")
		requireCategory(t, err, cli.CategoryValidation)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := run(t, server, "", "create", "not-an-email", "Z")
		requireCategory(t, err, cli.CategoryValidation)
	})
}

func TestUpdate(t *testing.T) {
	server := newServer(t)

	if _, err := run(t, server, "", "update", "@grace", "--title", "Commodore"); err != nil {
		t.Fatalf("user update failed: %v", err)
	}
	request := server.LastRequest(t, "users/update")
	if request.Form.Get("user_id") != "4" || request.Form.Get("title") != "Commodore" {
		t.Errorf("form = %v", request.Form)
	}
	if request.Form.Has("email") || request.Form.Has("name") {
		t.Errorf("unchanged fields were sent: %v", request.Form)
	}
	if request.Form.Get("is_group_admin") != "0" {
		t.Errorf("is_group_admin = %q, want current value 0", request.Form.Get("is_group_admin"))
	}

	t.Run("admin flag kept", func(t *testing.T) {
		if _, err := run(t, server, "", "update", "3", "--name", "Augusta Ada King"); err != nil {
			t.Fatalf("user update failed: %v", err)
		}
		user, _ := server.User(3)
		if !user.Admin || user.Name != "Augusta Ada King" {
			t.Errorf("user = %+v", user)
		}
	})

	t.Run("revoke admin", func(t *testing.T) {
		if _, err := run(t, server, "", "update", "3", "--admin", "false"); err != nil {
			t.Fatalf("user update failed: %v", err)
		}
		if user, _ := server.User(3); user.Admin {
			t.Error("admin was not revoked")
		}
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := run(t, server, "", "update", "3")
		requireCategory(t, err, cli.CategoryValidation)
	})

	t.Run("invalid admin value", func(t *testing.T) {
		_, err := run(t, server, "", "update", "3", "--admin", "maybe")
		requireCategory(t, err, cli.CategoryValidation)
	})
}

func TestDeleteAndUndelete(t *testing.T) {
	server := newServer(t)

	if _, err := run(t, server, "", "delete", "@grace"); err != nil {
		t.Fatalf("user delete failed: %v", err)
	}
	request := server.LastRequest(t, "users/delete")
	if request.Method != "POST" || request.Form.Get("user_id") != "4" {
		t.Errorf("delete request = %+v", request)
	}
	if user, _ := server.User(4); !user.Deleted {
		t.Error("user not deleted")
	}

	// Deleted users are only found by name with deleted users included.
	output, err := run(t, server, "", "undelete", "@grace")
	if err != nil {
		t.Fatalf("user undelete failed: %v", err)
	}
	if !strings.Contains(output, "restored user "+strconv.Itoa(4)) {
		t.Errorf("output = %q", output)
	}
	if user, _ := server.User(4); user.Deleted {
		t.Error("user still deleted")
	}

	_, err = run(t, server, "", "delete", "404")
	requireCategory(t, err, cli.CategoryNotFound)
}

func TestDestructiveCommandsRequireFullName(t *testing.T) {
	server := newServer(t)

	_, err := run(t, server, "", "delete", "grace h")
	requireCategory(t, err, cli.CategoryNotFound)
	if !strings.Contains(err.Error(), `"Grace Hopper"`) {
		t.Errorf("expected the candidate in the error, got %v", err)
	}
	if user, _ := server.User(4); user.Deleted {
		t.Fatal("partial name deleted the user")
	}

	_, err = run(t, server, "", "update", "ada", "--title", "Countess")
	if err != nil {
		t.Fatalf("update by @mention name failed: %v", err)
	}
	_, err = run(t, server, "", "update", "lovel", "--title", "Countess")
	requireCategory(t, err, cli.CategoryNotFound)

	for _, request := range server.Requests() {
		if request.Service == "users/delete" {
			t.Fatal("users/delete was called for a partial name")
		}
	}

	if _, err := run(t, server, "", "delete", "grace hopper"); err != nil {
		t.Fatalf("delete by full name failed: %v", err)
	}
	if user, _ := server.User(4); !user.Deleted {
		t.Error("user not deleted by full name")
	}
}

func TestForbidden(t *testing.T) {
	server := newServer(t)
	server.Fail("users/create", 403, "You must be a group admin")

	_, err := run(t, server, "", "create", "new@example.com", "New")
	requireCategory(t, err, cli.CategoryForbidden)
}
