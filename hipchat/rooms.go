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
	"time"
)

// historyDateLayout is the rooms/history date parameter format.
const historyDateLayout = "2006-01-02"

// historyRecent asks rooms/history for the latest messages instead of a
// calendar day.
const historyRecent = "recent"

// RoomOptions holds the optional settings for CreateNamedRoom.
type RoomOptions struct {
	AccessLevel AccessLevel
	AllowGuests bool
	Topic       string
}

// SendOptions holds the optional settings for Send. The zero value
// sends HTML, without notification, in yellow.
type SendOptions struct {
	Format MessageFormat
	Notify bool
	Color  Color
}

// CreateRoom creates a room from the writable fields of room (name,
// owner, access level, guest access, topic) and returns the room as
// the server created it.
func (c *Client) CreateRoom(ctx context.Context, room Room) (*Room, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "rooms/create", toRoomWire(room).values())
	if err != nil {
		return nil, fmt.Errorf("hipchat: create room %q failed: %w", room.Name, err)
	}

	var raw roomWire
	if err := decodeObject(body, "room", &raw); err != nil {
		return nil, fmt.Errorf("hipchat: failed to parse create room response: %w", err)
	}
	created := raw.toRoom()

	c.logger.Info("created room", "room_id", created.ID, "name", created.Name)
	return &created, nil
}

// CreateNamedRoom creates a room owned by ownerID.
func (c *Client) CreateNamedRoom(ctx context.Context, name string, ownerID int, options RoomOptions) (*Room, error) {
	return c.CreateRoom(ctx, Room{
		Name:         name,
		OwnerID:      ownerID,
		AccessLevel:  options.AccessLevel,
		AllowsGuests: options.AllowGuests,
		Topic:        options.Topic,
	})
}

// DeleteRoom deletes a room and its history.
func (c *Client) DeleteRoom(ctx context.Context, roomID int) (bool, error) {
	params := url.Values{"room_id": {strconv.Itoa(roomID)}}
	if _, err := c.doRequest(ctx, http.MethodPost, "rooms/delete", params); err != nil {
		return false, fmt.Errorf("hipchat: delete room %d failed: %w", roomID, err)
	}
	c.logger.Info("deleted room", "room_id", roomID)
	return true, nil
}

// RoomHistory returns the messages posted to a room on the calendar day
// of date, evaluated in UTC. A zero date requests the most recent
// messages instead.
func (c *Client) RoomHistory(ctx context.Context, roomID int, date time.Time) ([]Message, error) {
	day := historyRecent
	if !date.IsZero() {
		day = date.UTC().Format(historyDateLayout)
	}
	params := url.Values{
		"room_id": {strconv.Itoa(roomID)},
		"date":    {day},
	}

	body, err := c.doRequest(ctx, http.MethodGet, "rooms/history", params)
	if err != nil {
		return []Message{}, fmt.Errorf("hipchat: room %d history failed: %w", roomID, err)
	}

	var envelope messagesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []Message{}, fmt.Errorf("hipchat: failed to parse room history response: %w", err)
	}
	return mapSafely(envelope.Messages, incomingMessageWire.toMessage), nil
}

// RecentHistory returns the most recent messages in a room.
func (c *Client) RecentHistory(ctx context.Context, roomID int) ([]Message, error) {
	return c.RoomHistory(ctx, roomID, time.Time{})
}

// ListRooms returns every room visible to the token.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "rooms/list", nil)
	if err != nil {
		return []Room{}, fmt.Errorf("hipchat: list rooms failed: %w", err)
	}

	var envelope roomsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []Room{}, fmt.Errorf("hipchat: failed to parse list rooms response: %w", err)
	}
	return mapSafely(envelope.Rooms, roomWire.toRoom), nil
}

// SendMessage posts message to the room named by message.RoomID.
func (c *Client) SendMessage(ctx context.Context, message Message) (bool, error) {
	if _, err := c.doRequest(ctx, http.MethodPost, "rooms/message", toOutgoingMessageWire(message).values()); err != nil {
		return false, fmt.Errorf("hipchat: send message to room %s failed: %w", message.RoomID, err)
	}
	c.logger.Info("sent message",
		"room_id", message.RoomID,
		"from", message.From,
		"format", message.Format,
		"notify", message.Notify,
	)
	return true, nil
}

// Send posts text to a room as from.
func (c *Client) Send(ctx context.Context, roomID int, from, text string, options SendOptions) (bool, error) {
	return c.SendMessage(ctx, Message{
		RoomID: strconv.Itoa(roomID),
		From:   from,
		Text:   text,
		Format: options.Format,
		Notify: options.Notify,
		Color:  options.Color,
	})
}

// ChangeTopic sets a room's topic. An empty from posts the change as the
// API user.
func (c *Client) ChangeTopic(ctx context.Context, roomID int, topic, from string) (bool, error) {
	params := url.Values{
		"room_id": {strconv.Itoa(roomID)},
		"topic":   {topic},
	}
	setIfPresent(params, "from", from)

	if _, err := c.doRequest(ctx, http.MethodPost, "rooms/topic", params); err != nil {
		return false, fmt.Errorf("hipchat: change topic of room %d failed: %w", roomID, err)
	}
	c.logger.Info("changed room topic", "room_id", roomID)
	return true, nil
}

// GetRoom returns a room's details, including its participants.
func (c *Client) GetRoom(ctx context.Context, roomID int) (*Room, error) {
	params := url.Values{"room_id": {strconv.Itoa(roomID)}}
	body, err := c.doRequest(ctx, http.MethodGet, "rooms/show", params)
	if err != nil {
		return nil, fmt.Errorf("hipchat: get room %d failed: %w", roomID, err)
	}

	var raw roomWire
	if err := decodeObject(body, "room", &raw); err != nil {
		return nil, fmt.Errorf("hipchat: failed to parse get room response: %w", err)
	}
	room := raw.toRoom()
	return &room, nil
}
