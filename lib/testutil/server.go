// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// Room is a room held by the fake server.
type Room struct {
	ID       int
	Name     string
	Topic    string
	OwnerID  int
	Private  bool
	Guests   bool
	Archived bool
	Created  time.Time
}

// User is a user held by the fake server.
type User struct {
	ID          int
	Email       string
	Name        string
	MentionName string
	Title       string
	Admin       bool
	Deleted     bool
	Status      string
}

// Message is a history entry held by the fake server.
type Message struct {
	Date     time.Time
	FromID   int
	FromName string
	Text     string
	FileName string
	FileSize int
	FileURL  string
}

// Request is one API call received by the fake server. Form merges the
// query string and the form body, without auth_token and format.
type Request struct {
	Method  string
	Service string
	Form    url.Values
}

type failure struct {
	status  int
	message string
}

// Server is an in-memory HipChat v1 API.
type Server struct {
	server *httptest.Server
	token  string

	mu       sync.Mutex
	rooms    map[int]*Room
	users    map[int]*User
	history  map[int][]Message
	requests []Request
	failures map[string]failure
	nextID   int
}

// NewServer starts a fake API that accepts token. The server is closed
// when the test completes.
func NewServer(t testing.TB, token string) *Server {
	t.Helper()
	server := &Server{
		token:    token,
		rooms:    make(map[int]*Room),
		users:    make(map[int]*User),
		history:  make(map[int][]Message),
		failures: make(map[string]failure),
		nextID:   100,
	}
	server.server = httptest.NewServer(http.HandlerFunc(server.handle))
	t.Cleanup(server.server.Close)
	return server
}

// URL returns the base URL to pass as --base-url.
func (s *Server) URL() string {
	return s.server.URL
}

// AddRoom stores room, assigning an id when room.ID is zero, and
// returns the id.
func (s *Server) AddRoom(room Room) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room.ID == 0 {
		room.ID = s.allocateID()
	}
	if room.Created.IsZero() {
		room.Created = time.Unix(1700000000, 0).UTC()
	}
	s.rooms[room.ID] = &room
	return room.ID
}

// AddUser stores user, assigning an id when user.ID is zero, and
// returns the id.
func (s *Server) AddUser(user User) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.allocateID()
	}
	if user.Status == "" {
		user.Status = "available"
	}
	s.users[user.ID] = &user
	return user.ID
}

// AddMessage appends message to a room's history.
func (s *Server) AddMessage(roomID int, message Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[roomID] = append(s.history[roomID], message)
}

// Fail makes every later call to service (e.g. "rooms/list") answer
// with status and an error envelope carrying message.
func (s *Server) Fail(service string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[service] = failure{status: status, message: message}
}

// Room returns a copy of the stored room.
func (s *Server) Room(id int) (Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return Room{}, false
	}
	return *room, true
}

// User returns a copy of the stored user.
func (s *Server) User(id int) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	return *user, true
}

// Requests returns the calls received so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent call to service.
func (s *Server) LastRequest(t testing.TB, service string) Request {
	t.Helper()
	requests := s.Requests()
	for index := len(requests) - 1; index >= 0; index-- {
		if requests[index].Service == service {
			return requests[index]
		}
	}
	t.Fatalf("no request to %s (got %d requests)", service, len(requests))
	return Request{}
}

func (s *Server) allocateID() int {
	s.nextID++
	return s.nextID
}

func (s *Server) handle(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		writeError(writer, http.StatusBadRequest, "malformed request")
		return
	}
	service := strings.TrimPrefix(request.URL.Path, "/v1/")
	if request.Form.Get("auth_token") != s.token {
		writeError(writer, http.StatusUnauthorized, "Auth token not found. Please see: https://www.hipchat.com/docs/api/auth")
		return
	}

	form := make(url.Values, len(request.Form))
	for key, values := range request.Form {
		if key != "auth_token" && key != "format" {
			form[key] = values
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{Method: request.Method, Service: service, Form: form})

	if failed, ok := s.failures[service]; ok {
		writeError(writer, failed.status, failed.message)
		return
	}

	handlers := map[string]func(http.ResponseWriter, url.Values){
		"rooms/list":     s.listRooms,
		"rooms/show":     s.showRoom,
		"rooms/create":   s.createRoom,
		"rooms/delete":   s.deleteRoom,
		"rooms/history":  s.roomHistory,
		"rooms/message":  s.postMessage,
		"rooms/topic":    s.changeTopic,
		"users/list":     s.listUsers,
		"users/show":     s.showUser,
		"users/create":   s.createUser,
		"users/delete":   s.deleteUser,
		"users/undelete": s.undeleteUser,
		"users/update":   s.updateUser,
	}
	handler, ok := handlers[service]
	if !ok {
		writeError(writer, http.StatusNotFound, "Unknown API method")
		return
	}
	handler(writer, form)
}

func (s *Server) listRooms(writer http.ResponseWriter, _ url.Values) {
	rooms := make([]map[string]any, 0, len(s.rooms))
	for _, id := range sortedKeys(s.rooms) {
		rooms = append(rooms, roomJSON(s.rooms[id], nil))
	}
	writeJSON(writer, map[string]any{"rooms": rooms})
}

func (s *Server) showRoom(writer http.ResponseWriter, form url.Values) {
	room, ok := s.rooms[formInt(form, "room_id")]
	if !ok {
		writeError(writer, http.StatusNotFound, "Room not found")
		return
	}
	participants := make([]map[string]any, 0)
	for _, id := range sortedKeys(s.users) {
		user := s.users[id]
		if !user.Deleted {
			participants = append(participants, map[string]any{"user_id": user.ID, "name": user.Name, "status": user.Status})
		}
	}
	writeJSON(writer, map[string]any{"room": roomJSON(room, participants)})
}

func (s *Server) createRoom(writer http.ResponseWriter, form url.Values) {
	name := form.Get("name")
	if name == "" {
		writeError(writer, http.StatusBadRequest, "Room name is required")
		return
	}
	for _, existing := range s.rooms {
		if strings.EqualFold(existing.Name, name) {
			writeError(writer, http.StatusConflict, "Another room exists with that name")
			return
		}
	}
	room := &Room{
		ID:      s.allocateID(),
		Name:    name,
		Topic:   form.Get("topic"),
		OwnerID: formInt(form, "owner_user_id"),
		Private: form.Get("privacy") == "private",
		Guests:  form.Get("guest_access") == "1",
		Created: time.Unix(1700000000, 0).UTC(),
	}
	s.rooms[room.ID] = room
	writeJSON(writer, map[string]any{"room": roomJSON(room, nil)})
}

func (s *Server) deleteRoom(writer http.ResponseWriter, form url.Values) {
	id := formInt(form, "room_id")
	if _, ok := s.rooms[id]; !ok {
		writeError(writer, http.StatusNotFound, "Room not found")
		return
	}
	delete(s.rooms, id)
	delete(s.history, id)
	writeJSON(writer, map[string]any{"deleted": true})
}

func (s *Server) roomHistory(writer http.ResponseWriter, form url.Values) {
	id := formInt(form, "room_id")
	if _, ok := s.rooms[id]; !ok {
		writeError(writer, http.StatusNotFound, "Room not found")
		return
	}
	date := form.Get("date")
	messages := make([]map[string]any, 0)
	for _, message := range s.history[id] {
		if date != "recent" && message.Date.UTC().Format("2006-01-02") != date {
			continue
		}
		entry := map[string]any{
			"date":    message.Date.Format("2006-01-02T15:04:05-0700"),
			"from":    map[string]any{"user_id": message.FromID, "name": message.FromName},
			"message": message.Text,
		}
		if message.FileName != "" {
			entry["file"] = map[string]any{"name": message.FileName, "size": message.FileSize, "url": message.FileURL}
		}
		messages = append(messages, entry)
	}
	writeJSON(writer, map[string]any{"messages": messages})
}

func (s *Server) postMessage(writer http.ResponseWriter, form url.Values) {
	id := formInt(form, "room_id")
	if _, ok := s.rooms[id]; !ok {
		writeError(writer, http.StatusNotFound, "Room not found")
		return
	}
	if form.Get("message") == "" {
		writeError(writer, http.StatusBadRequest, "Message is required")
		return
	}
	s.history[id] = append(s.history[id], Message{
		Date:     time.Unix(1700000000, 0).UTC(),
		FromName: form.Get("from"),
		Text:     form.Get("message"),
	})
	writeJSON(writer, map[string]any{"status": "sent"})
}

func (s *Server) changeTopic(writer http.ResponseWriter, form url.Values) {
	room, ok := s.rooms[formInt(form, "room_id")]
	if !ok {
		writeError(writer, http.StatusNotFound, "Room not found")
		return
	}
	room.Topic = form.Get("topic")
	writeJSON(writer, map[string]any{"status": "ok"})
}

func (s *Server) listUsers(writer http.ResponseWriter, form url.Values) {
	includeDeleted := form.Get("include_deleted") == "1"
	users := make([]map[string]any, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		user := s.users[id]
		if user.Deleted && !includeDeleted {
			continue
		}
		users = append(users, userJSON(user))
	}
	writeJSON(writer, map[string]any{"users": users})
}

func (s *Server) showUser(writer http.ResponseWriter, form url.Values) {
	user, ok := s.lookupUser(form)
	if !ok {
		writeError(writer, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(writer, map[string]any{"user": userJSON(user)})
}

func (s *Server) createUser(writer http.ResponseWriter, form url.Values) {
	email := form.Get("email")
	if email == "" || form.Get("name") == "" {
		writeError(writer, http.StatusBadRequest, "Email and name are required")
		return
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, email) {
			writeError(writer, http.StatusConflict, "A user with that email already exists")
			return
		}
	}
	user := &User{
		ID:          s.allocateID(),
		Email:       email,
		Name:        form.Get("name"),
		MentionName: form.Get("mention_name"),
		Title:       form.Get("title"),
		Admin:       form.Get("is_group_admin") == "1",
		Status:      "offline",
	}
	s.users[user.ID] = user
	writeJSON(writer, map[string]any{"user": userJSON(user)})
}

func (s *Server) deleteUser(writer http.ResponseWriter, form url.Values) {
	user, ok := s.lookupUser(form)
	if !ok {
		writeError(writer, http.StatusNotFound, "User not found")
		return
	}
	user.Deleted = true
	writeJSON(writer, map[string]any{"deleted": true})
}

func (s *Server) undeleteUser(writer http.ResponseWriter, form url.Values) {
	user, ok := s.lookupUser(form)
	if !ok {
		writeError(writer, http.StatusNotFound, "User not found")
		return
	}
	user.Deleted = false
	writeJSON(writer, map[string]any{"undeleted": true})
}

func (s *Server) updateUser(writer http.ResponseWriter, form url.Values) {
	user, ok := s.lookupUser(form)
	if !ok {
		writeError(writer, http.StatusNotFound, "User not found")
		return
	}
	for key, field := range map[string]*string{
		"email":        &user.Email,
		"name":         &user.Name,
		"mention_name": &user.MentionName,
		"title":        &user.Title,
	} {
		if value := form.Get(key); value != "" {
			*field = value
		}
	}
	if form.Has("is_group_admin") {
		user.Admin = form.Get("is_group_admin") == "1"
	}
	writeJSON(writer, map[string]any{"user": userJSON(user)})
}

func (s *Server) lookupUser(form url.Values) (*User, bool) {
	user, ok := s.users[formInt(form, "user_id")]
	return user, ok
}

func roomJSON(room *Room, participants []map[string]any) map[string]any {
	privacy := "public"
	if room.Private {
		privacy = "private"
	}
	encoded := map[string]any{
		"room_id":       room.ID,
		"name":          room.Name,
		"topic":         room.Topic,
		"last_active":   room.Created.Unix(),
		"created":       room.Created.Unix(),
		"owner_user_id": room.OwnerID,
		"is_archived":   room.Archived,
		"is_private":    room.Private,
		"privacy":       privacy,
		"guest_access":  room.Guests,
		"xmpp_jid":      strconv.Itoa(room.ID) + "_room@conf.hipchat.com",
	}
	if room.Guests {
		encoded["guest_access_url"] = "https://www.hipchat.com/g" + strconv.Itoa(room.ID)
	}
	if participants != nil {
		encoded["participants"] = participants
	}
	return encoded
}

func userJSON(user *User) map[string]any {
	return map[string]any{
		"user_id":        user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"mention_name":   user.MentionName,
		"title":          user.Title,
		"photo":          "https://www.hipchat.com/img/silhouette_125.png",
		"last_active":    0,
		"created":        1700000000,
		"status":         user.Status,
		"status_message": "",
		"is_group_admin": boolFlag(user.Admin),
		"is_deleted":     boolFlag(user.Deleted),
	}
}

func boolFlag(value bool) int {
	if value {
		return 1
	}
	return 0
}

func formInt(form url.Values, key string) int {
	value, _ := strconv.Atoi(form.Get(key))
	return value
}

func sortedKeys[V any](items map[int]V) []int {
	keys := make([]int, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

func writeJSON(writer http.ResponseWriter, body any) {
	writer.Header().Set("Content-Type", "application/json")
	json.NewEncoder(writer).Encode(body)
}

func writeError(writer http.ResponseWriter, status int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(map[string]any{
		"error": map[string]any{
			"code":    status,
			"type":    http.StatusText(status),
			"message": message,
		},
	})
}
