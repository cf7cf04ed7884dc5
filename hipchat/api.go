// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"time"
)

// API is the set of HipChat operations. *Client implements it; callers
// that want to substitute a fake accept an API.
type API interface {
	CreateRoom(ctx context.Context, room Room) (*Room, error)
	CreateNamedRoom(ctx context.Context, name string, ownerID int, options RoomOptions) (*Room, error)
	DeleteRoom(ctx context.Context, roomID int) (bool, error)
	RoomHistory(ctx context.Context, roomID int, date time.Time) ([]Message, error)
	RecentHistory(ctx context.Context, roomID int) ([]Message, error)
	ListRooms(ctx context.Context) ([]Room, error)
	SendMessage(ctx context.Context, message Message) (bool, error)
	Send(ctx context.Context, roomID int, from, text string, options SendOptions) (bool, error)
	ChangeTopic(ctx context.Context, roomID int, topic, from string) (bool, error)
	GetRoom(ctx context.Context, roomID int) (*Room, error)

	CreateUser(ctx context.Context, user User) (*User, error)
	CreateUserAccount(ctx context.Context, email, name string, options UserOptions) (*User, error)
	DeleteUser(ctx context.Context, userID int) (bool, error)
	ListUsers(ctx context.Context, options ListUsersOptions) ([]User, error)
	GetUser(ctx context.Context, userID int) (*User, error)
	UndeleteUser(ctx context.Context, userID int) (bool, error)
	UpdateUser(ctx context.Context, user User) (*User, error)
	UpdateUserFields(ctx context.Context, userID int, update UserUpdate) (*User, error)

	Close() error
}

var _ API = (*Client)(nil)
