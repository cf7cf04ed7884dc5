// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"net/url"
	"time"
)

// Message is a room message. The same type describes both directions:
// outgoing messages use RoomID, From, Text, Format, Notify, and Color;
// history messages populate TimeSent, SendingUser, Text, and File.
type Message struct {
	// RoomID is the target room id in text form.
	RoomID string `json:"room_id,omitempty"`
	// From is the sender name shown in the room. The API limits it to
	// 15 characters.
	From   string        `json:"from,omitempty"`
	Text   string        `json:"message"`
	Format MessageFormat `json:"message_format"`
	// Notify triggers a client notification for room members.
	Notify bool  `json:"notify"`
	Color  Color `json:"color"`

	TimeSent    time.Time `json:"date,omitzero"`
	SendingUser *User     `json:"from_user,omitempty"`
	File        *File     `json:"file,omitempty"`
}

// outgoingMessageWire is the rooms/message request shape.
type outgoingMessageWire struct {
	RoomID        string  `json:"room_id"`
	From          string  `json:"from"`
	Message       string  `json:"message"`
	MessageFormat string  `json:"message_format"`
	Notify        intFlag `json:"notify"`
	Color         string  `json:"color"`
}

// incomingMessageWire is one entry of a rooms/history response.
type incomingMessageWire struct {
	Date    messageDate `json:"date"`
	From    *userWire   `json:"from"`
	Message string      `json:"message"`
	File    *fileWire   `json:"file"`
}

type messagesEnvelope struct {
	Messages []incomingMessageWire `json:"messages"`
}

func toOutgoingMessageWire(message Message) outgoingMessageWire {
	return outgoingMessageWire{
		RoomID:        message.RoomID,
		From:          message.From,
		Message:       message.Text,
		MessageFormat: message.Format.String(),
		Notify:        toFlag(message.Notify),
		Color:         message.Color.String(),
	}
}

func (w outgoingMessageWire) toMessage() Message {
	return Message{
		RoomID: w.RoomID,
		From:   w.From,
		Text:   w.Message,
		Format: ParseMessageFormat(w.MessageFormat),
		Notify: w.Notify.bool(),
		Color:  ParseColor(w.Color),
	}
}

// values returns the form parameters for rooms/message. Every field is
// always present.
func (w outgoingMessageWire) values() url.Values {
	values := url.Values{}
	values.Set("room_id", w.RoomID)
	values.Set("from", w.From)
	values.Set("message", w.Message)
	values.Set("message_format", ParseMessageFormat(w.MessageFormat).String())
	values.Set("notify", flagValue(w.Notify.bool()))
	values.Set("color", ParseColor(w.Color).String())
	return values
}

func toIncomingMessageWire(message Message) incomingMessageWire {
	wire := incomingMessageWire{
		Date:    messageDate{Time: message.TimeSent},
		Message: message.Text,
	}
	if message.SendingUser != nil {
		from := toUserWire(*message.SendingUser)
		wire.From = &from
	}
	if message.File != nil {
		file := toFileWire(*message.File)
		wire.File = &file
	}
	return wire
}

func (w incomingMessageWire) toMessage() Message {
	message := Message{
		TimeSent: w.Date.Time,
		Text:     w.Message,
	}
	if w.From != nil {
		user := w.From.toUser()
		message.SendingUser = &user
	}
	if w.File != nil {
		file := w.File.toFile()
		message.File = &file
	}
	return message
}
