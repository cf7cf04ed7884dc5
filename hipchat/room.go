// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"net/url"
	"strconv"
	"time"
)

// Room is a HipChat chat room.
type Room struct {
	// ID is zero for a room that has not been created yet.
	ID          int         `json:"room_id"`
	Name        string      `json:"name"`
	Topic       string      `json:"topic"`
	LastActive  time.Time   `json:"last_active,omitzero"`
	Created     time.Time   `json:"created,omitzero"`
	IsArchived  bool        `json:"is_archived"`
	IsPrivate   bool        `json:"is_private"`
	OwnerID     int         `json:"owner_user_id,omitempty"`
	AccessLevel AccessLevel `json:"privacy"`
	// Participants lists the users currently in the room. Only
	// populated by GetRoom.
	Participants []User `json:"participants,omitempty"`
	// AllowsGuests enables the public guest URL.
	AllowsGuests   bool   `json:"guest_access"`
	GuestAccessURL string `json:"guest_access_url,omitempty"`
	XMPPJabberID   string `json:"xmpp_jid,omitempty"`
}

type roomWire struct {
	RoomID         flexInt      `json:"room_id"`
	Name           string       `json:"name"`
	Topic          string       `json:"topic"`
	LastActive     epochSeconds `json:"last_active"`
	Created        epochSeconds `json:"created"`
	IsArchived     intFlag      `json:"is_archived"`
	IsPrivate      intFlag      `json:"is_private"`
	OwnerUserID    flexInt      `json:"owner_user_id"`
	Privacy        string       `json:"privacy"`
	Participants   []userWire   `json:"participants"`
	GuestAccess    intFlag      `json:"guest_access"`
	GuestAccessURL string       `json:"guest_access_url"`
	XMPPJID        string       `json:"xmpp_jid"`
}

type roomsEnvelope struct {
	Rooms []roomWire `json:"rooms"`
}

func toRoomWire(room Room) roomWire {
	return roomWire{
		RoomID:         flexInt(room.ID),
		Name:           room.Name,
		Topic:          room.Topic,
		LastActive:     toEpochSeconds(room.LastActive),
		Created:        toEpochSeconds(room.Created),
		IsArchived:     toFlag(room.IsArchived),
		IsPrivate:      toFlag(room.IsPrivate),
		OwnerUserID:    flexInt(room.OwnerID),
		Privacy:        room.AccessLevel.String(),
		Participants:   mapSafely(room.Participants, toUserWire),
		GuestAccess:    toFlag(room.AllowsGuests),
		GuestAccessURL: room.GuestAccessURL,
		XMPPJID:        room.XMPPJabberID,
	}
}

func (w roomWire) toRoom() Room {
	return Room{
		ID:             int(w.RoomID),
		Name:           w.Name,
		Topic:          w.Topic,
		LastActive:     w.LastActive.time(),
		Created:        w.Created.time(),
		IsArchived:     w.IsArchived.bool(),
		IsPrivate:      w.IsPrivate.bool(),
		OwnerID:        int(w.OwnerUserID),
		AccessLevel:    ParseAccessLevel(w.Privacy),
		Participants:   mapSafely(w.Participants, userWire.toUser),
		AllowsGuests:   w.GuestAccess.bool(),
		GuestAccessURL: w.GuestAccessURL,
		XMPPJabberID:   w.XMPPJID,
	}
}

// values returns the form parameters for rooms/create. privacy and
// guest_access are always present; the rest only when set.
func (w roomWire) values() url.Values {
	values := url.Values{}
	if w.RoomID != 0 {
		values.Set("room_id", strconv.Itoa(int(w.RoomID)))
	}
	setIfPresent(values, "name", w.Name)
	if w.OwnerUserID != 0 {
		values.Set("owner_user_id", strconv.Itoa(int(w.OwnerUserID)))
	}
	values.Set("privacy", ParseAccessLevel(w.Privacy).String())
	values.Set("guest_access", flagValue(w.GuestAccess.bool()))
	setIfPresent(values, "topic", w.Topic)
	return values
}
