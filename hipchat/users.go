// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// UserOptions holds the optional settings for CreateUserAccount.
type UserOptions struct {
	MentionName  string
	Title        string
	IsGroupAdmin bool
	Password     string
}

// UserUpdate holds the fields for UpdateUserFields. Empty strings leave
// the corresponding field unchanged; IsGroupAdmin is always sent.
type UserUpdate struct {
	Email string
	Name  string
	UserOptions
}

// ListUsersOptions holds the optional parameters for ListUsers.
type ListUsersOptions struct {
	// IncludeDeleted, when set, is sent as include_deleted. Leave nil
	// to use the server default (deleted users excluded).
	IncludeDeleted *bool
}

// CreateUser creates a user from the writable fields of user (email,
// name, mention name, title, group admin flag, password).
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "users/create", toUserWire(user).values())
	if err != nil {
		return nil, fmt.Errorf("hipchat: create user %q failed: %w", user.Email, err)
	}

	created, err := decodeUser(body)
	if err != nil {
		return nil, fmt.Errorf("hipchat: failed to parse create user response: %w", err)
	}
	c.logger.Info("created user", "user_id", created.ID, "email", created.Email)
	return created, nil
}

// CreateUserAccount creates a user with the given email and display name.
func (c *Client) CreateUserAccount(ctx context.Context, email, name string, options UserOptions) (*User, error) {
	return c.CreateUser(ctx, User{
		Email:        email,
		Name:         name,
		MentionName:  options.MentionName,
		Title:        options.Title,
		IsGroupAdmin: options.IsGroupAdmin,
		Password:     options.Password,
	})
}

// DeleteUser deletes a user. Deleted users can be restored with
// UndeleteUser.
func (c *Client) DeleteUser(ctx context.Context, userID int) (bool, error) {
	params := url.Values{"user_id": {strconv.Itoa(userID)}}
	if _, err := c.doRequest(ctx, http.MethodPost, "users/delete", params); err != nil {
		return false, fmt.Errorf("hipchat: delete user %d failed: %w", userID, err)
	}
	c.logger.Info("deleted user", "user_id", userID)
	return true, nil
}

// ListUsers returns the users in the group.
func (c *Client) ListUsers(ctx context.Context, options ListUsersOptions) ([]User, error) {
	params := url.Values{}
	if options.IncludeDeleted != nil {
		params.Set("include_deleted", flagValue(*options.IncludeDeleted))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "users/list", params)
	if err != nil {
		return []User{}, fmt.Errorf("hipchat: list users failed: %w", err)
	}

	var envelope usersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []User{}, fmt.Errorf("hipchat: failed to parse list users response: %w", err)
	}
	return mapSafely(envelope.Users, userWire.toUser), nil
}

// GetUser returns a user's details.
func (c *Client) GetUser(ctx context.Context, userID int) (*User, error) {
	params := url.Values{"user_id": {strconv.Itoa(userID)}}
	body, err := c.doRequest(ctx, http.MethodGet, "users/show", params)
	if err != nil {
		return nil, fmt.Errorf("hipchat: get user %d failed: %w", userID, err)
	}

	user, err := decodeUser(body)
	if err != nil {
		return nil, fmt.Errorf("hipchat: failed to parse get user response: %w", err)
	}
	return user, nil
}

// UndeleteUser restores a deleted user.
func (c *Client) UndeleteUser(ctx context.Context, userID int) (bool, error) {
	params := url.Values{"user_id": {strconv.Itoa(userID)}}
	if _, err := c.doRequest(ctx, http.MethodPost, "users/undelete", params); err != nil {
		return false, fmt.Errorf("hipchat: undelete user %d failed: %w", userID, err)
	}
	c.logger.Info("undeleted user", "user_id", userID)
	return true, nil
}

// UpdateUser updates the user identified by user.ID. Empty string
// fields are left unchanged on the server.
func (c *Client) UpdateUser(ctx context.Context, user User) (*User, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("hipchat: update user failed: user ID is required")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "users/update", toUserWire(user).values())
	if err != nil {
		return nil, fmt.Errorf("hipchat: update user %s failed: %w", user.ID, err)
	}

	updated, err := decodeUser(body)
	if err != nil {
		return nil, fmt.Errorf("hipchat: failed to parse update user response: %w", err)
	}
	c.logger.Info("updated user", "user_id", updated.ID)
	return updated, nil
}

// UpdateUserFields updates the user identified by userID.
func (c *Client) UpdateUserFields(ctx context.Context, userID int, update UserUpdate) (*User, error) {
	return c.UpdateUser(ctx, User{
		ID:           strconv.Itoa(userID),
		Email:        update.Email,
		Name:         update.Name,
		MentionName:  update.MentionName,
		Title:        update.Title,
		IsGroupAdmin: update.IsGroupAdmin,
		Password:     update.Password,
	})
}

func decodeUser(body []byte) (*User, error) {
	var raw userWire
	if err := decodeObject(body, "user", &raw); err != nil {
		return nil, err
	}
	user := raw.toUser()
	return &user, nil
}
