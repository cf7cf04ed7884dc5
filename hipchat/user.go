// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"net/url"
	"time"
)

// User is a HipChat account.
type User struct {
	// ID is the numeric user id in text form. Empty for a user that has
	// not been created yet.
	ID          string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	MentionName string `json:"mention_name"`
	Title       string `json:"title"`
	// AvatarURL links to the user's avatar.
	AvatarURL  string     `json:"photo,omitempty"`
	LastActive time.Time  `json:"last_active,omitzero"`
	Created    time.Time  `json:"created,omitzero"`
	Status     UserStatus `json:"status"`
	// StatusMessage is the free-form text shown next to the status.
	StatusMessage string `json:"status_message,omitempty"`
	IsGroupAdmin  bool   `json:"is_group_admin"`
	IsDeleted     bool   `json:"is_deleted"`
	// Password is write-only: it is sent on create and update and never
	// populated from a response.
	Password string `json:"-"`
}

type userWire struct {
	UserID        flexString   `json:"user_id"`
	Email         string       `json:"email"`
	Name          string       `json:"name"`
	MentionName   string       `json:"mention_name"`
	Title         string       `json:"title"`
	Photo         string       `json:"photo"`
	LastActive    epochSeconds `json:"last_active"`
	Created       epochSeconds `json:"created"`
	Status        string       `json:"status"`
	StatusMessage string       `json:"status_message"`
	IsGroupAdmin  intFlag      `json:"is_group_admin"`
	IsDeleted     intFlag      `json:"is_deleted"`
	Password      string       `json:"-"`
}

type usersEnvelope struct {
	Users []userWire `json:"users"`
}

func toUserWire(user User) userWire {
	return userWire{
		UserID:        flexString(user.ID),
		Email:         user.Email,
		Name:          user.Name,
		MentionName:   user.MentionName,
		Title:         user.Title,
		Photo:         user.AvatarURL,
		LastActive:    toEpochSeconds(user.LastActive),
		Created:       toEpochSeconds(user.Created),
		Status:        user.Status.String(),
		StatusMessage: user.StatusMessage,
		IsGroupAdmin:  toFlag(user.IsGroupAdmin),
		IsDeleted:     toFlag(user.IsDeleted),
		Password:      user.Password,
	}
}

func (w userWire) toUser() User {
	return User{
		ID:            string(w.UserID),
		Email:         w.Email,
		Name:          w.Name,
		MentionName:   w.MentionName,
		Title:         w.Title,
		AvatarURL:     w.Photo,
		LastActive:    w.LastActive.time(),
		Created:       w.Created.time(),
		Status:        ParseUserStatus(w.Status),
		StatusMessage: w.StatusMessage,
		IsGroupAdmin:  w.IsGroupAdmin.bool(),
		IsDeleted:     w.IsDeleted.bool(),
	}
}

// values returns the form parameters for users/create and users/update.
// Empty optional fields are omitted so an update leaves them unchanged.
// Read-only fields (status, timestamps, photo, deletion) are never sent.
func (w userWire) values() url.Values {
	values := url.Values{}
	setIfPresent(values, "user_id", string(w.UserID))
	setIfPresent(values, "email", w.Email)
	setIfPresent(values, "name", w.Name)
	setIfPresent(values, "mention_name", w.MentionName)
	setIfPresent(values, "title", w.Title)
	setIfPresent(values, "password", w.Password)
	values.Set("is_group_admin", flagValue(w.IsGroupAdmin.bool()))
	return values
}

func setIfPresent(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
