package ws

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhimasank/ngobrol/internal/domain"
)

// Hub coordinates the connection registry and the room store. Every
// state transition (join, room create, room switch, message send,
// disconnect) runs under one mutex, so no two mutations interleave.
// Events are enqueued to per-connection buffers before the lock is
// released, so every connection observes a room's messages in the
// order they were appended to history; the write pumps drain those
// buffers concurrently.
type Hub struct {
	mu          sync.Mutex
	registry    *Registry
	rooms       *RoomStore
	recentLimit int
}

// NewHub creates a hub whose rooms keep historySize messages and
// replay up to recentLimit of them on room entry
func NewHub(historySize, recentLimit int) *Hub {
	return &Hub{
		registry:    NewRegistry(),
		rooms:       NewRoomStore(historySize),
		recentLimit: recentLimit,
	}
}

// SeedDefaultRooms creates the rooms every fresh server starts with.
// Called once from process initialization, before any connection is
// accepted.
func (h *Hub) SeedDefaultRooms() {
	defaults := []struct{ name, description string }{
		{"General", "General discussion"},
		{"Random", "Random conversations"},
		{"Help", "Get help and support"},
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range defaults {
		room, err := h.rooms.Create(d.name, d.description)
		if err != nil {
			continue
		}
		log.Printf("Created default room: %s (%s)", room.Name, room.ID)
	}
}

// Join registers a connection under a display name. On success the new
// connection receives the room list, everyone else learns about the
// new user, and all connections (the new one included) receive the
// refreshed user list. On failure only the requesting connection is
// told and it stays unauthenticated, free to retry with another name.
func (h *Hub) Join(c *Client, rawName, requestedID string) error {
	username, err := ValidateUsername(rawName)
	if err != nil {
		h.sendError(c, err)
		return err
	}

	var out outbox
	h.mu.Lock()

	if h.registry.Lookup(c) != nil {
		h.mu.Unlock()
		h.sendError(c, domain.ErrAlreadyJoined)
		return domain.ErrAlreadyJoined
	}

	user, err := h.registry.Register(c, username, requestedID)
	if err != nil {
		h.mu.Unlock()
		h.sendError(c, err)
		return err
	}

	out.add(h.roomsListEvent(), []*Client{c}, nil)
	out.add(domain.UserJoinedEvent{
		Type:     domain.EventUserJoined,
		Username: user.Username,
		UserID:   user.ID,
	}, h.registry.Clients(), c)
	out.add(h.usersListEvent(), h.registry.Clients(), nil)

	out.flush()
	h.mu.Unlock()

	log.Printf("User joined: %s (%s)", user.Username, user.ID)
	return nil
}

// CreateRoom creates a room named by an authenticated user. The
// creator gets a roomCreated confirmation and everyone receives the
// updated room list.
func (h *Hub) CreateRoom(c *Client, rawName string) error {
	var out outbox
	h.mu.Lock()

	user := h.registry.Lookup(c)
	if user == nil {
		h.mu.Unlock()
		h.sendError(c, domain.ErrNotAuthenticated)
		return domain.ErrNotAuthenticated
	}

	name, err := ValidateRoomName(rawName)
	if err != nil {
		h.mu.Unlock()
		h.sendError(c, err)
		return err
	}

	room, err := h.rooms.Create(name, "Created by "+user.Username)
	if err != nil {
		h.mu.Unlock()
		h.sendError(c, err)
		return err
	}

	out.add(domain.RoomCreatedEvent{
		Type: domain.EventRoomCreated,
		Room: h.snapshotRoom(room),
	}, []*Client{c}, nil)
	out.add(h.roomsListEvent(), h.registry.Clients(), nil)

	out.flush()
	h.mu.Unlock()

	log.Printf("Room created: %s by %s", room.Name, user.Username)
	return nil
}

// JoinRoom moves an authenticated connection into the target room,
// leaving its current room first. The two membership updates commit as
// one transition. The switching connection gets the room snapshot plus
// recent history, everyone gets the refreshed room list (both rooms'
// counts changed), and the new room's other members get an explicit
// notice. The old room's members learn of the departure only through
// the room list refresh.
func (h *Hub) JoinRoom(c *Client, roomID string) error {
	var out outbox
	h.mu.Lock()

	user := h.registry.Lookup(c)
	if user == nil {
		h.mu.Unlock()
		h.sendError(c, domain.ErrNotAuthenticated)
		return domain.ErrNotAuthenticated
	}

	room := h.rooms.Get(roomID)
	if room == nil {
		h.mu.Unlock()
		h.sendError(c, domain.ErrRoomNotFound)
		return domain.ErrRoomNotFound
	}

	if user.CurrentRoomID != "" {
		if old := h.rooms.Get(user.CurrentRoomID); old != nil {
			old.removeMember(user, c)
		}
	}
	room.addMember(user, c)
	user.CurrentRoomID = room.ID

	out.add(domain.JoinedRoomEvent{
		Type:     domain.EventJoinedRoom,
		Room:     h.snapshotRoom(room),
		Messages: messagesOrEmpty(h.rooms.RecentMessages(room.ID, h.recentLimit)),
	}, []*Client{c}, nil)
	out.add(h.roomsListEvent(), h.registry.Clients(), nil)
	out.add(domain.UserJoinedRoomEvent{
		Type:     domain.EventUserJoinedRoom,
		Username: user.Username,
		RoomID:   room.ID,
	}, roomTargets(room), c)

	out.flush()
	h.mu.Unlock()

	log.Printf("User %s joined room: %s", user.Username, room.Name)
	return nil
}

// SendMessage appends a message to the sender's current room and fans
// it out to every connection in that room, the sender included: the
// sender's own view is driven by the server echo. The named room must
// be the one the sender is currently in.
func (h *Hub) SendMessage(c *Client, roomID, text string) error {
	var out outbox
	h.mu.Lock()

	user := h.registry.Lookup(c)
	if user == nil {
		h.mu.Unlock()
		h.sendError(c, domain.ErrNotAuthenticated)
		return domain.ErrNotAuthenticated
	}

	if user.CurrentRoomID == "" || user.CurrentRoomID != roomID {
		h.mu.Unlock()
		h.sendError(c, domain.ErrNotInRoom)
		return domain.ErrNotInRoom
	}

	text = strings.TrimSpace(text)
	if text == "" {
		h.mu.Unlock()
		h.sendError(c, domain.ErrEmptyMessage)
		return domain.ErrEmptyMessage
	}

	room := h.rooms.Get(user.CurrentRoomID)
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Text:      text,
		Timestamp: time.Now(),
	}
	h.rooms.AppendMessage(room.ID, msg)

	out.add(domain.MessageEvent{
		Type:        domain.EventMessage,
		ChatMessage: msg,
	}, roomTargets(room), nil)

	out.flush()
	h.mu.Unlock()
	return nil
}

// Disconnect tears down a connection's registration and room
// membership, then tells the remaining connections. It is idempotent:
// transport error and close signals may both fire for one connection,
// and only the first call finds the user registered.
func (h *Hub) Disconnect(c *Client) {
	var out outbox
	h.mu.Lock()

	user := h.registry.Unregister(c)
	if user == nil {
		h.mu.Unlock()
		return
	}
	c.markClosed()

	if user.CurrentRoomID != "" {
		if room := h.rooms.Get(user.CurrentRoomID); room != nil {
			room.removeMember(user, c)
		}
		user.CurrentRoomID = ""
	}

	out.add(domain.UserLeftEvent{
		Type:     domain.EventUserLeft,
		Username: user.Username,
		UserID:   user.ID,
	}, h.registry.Clients(), nil)
	out.add(h.usersListEvent(), h.registry.Clients(), nil)
	out.add(h.roomsListEvent(), h.registry.Clients(), nil)

	out.flush()
	h.mu.Unlock()

	log.Printf("User disconnected: %s (%s)", user.Username, user.ID)
}

// ConnectedUsers returns the number of registered connections
func (h *Hub) ConnectedUsers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.Count()
}

// RoomCount returns the number of rooms
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rooms.Count()
}

// Rooms returns a snapshot of every room in creation order
func (h *Hub) Rooms() []domain.RoomSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.roomSnapshots()
}

// sendError reports a rejected transition to the offending connection
// only. The connection and all shared state are left untouched.
func (h *Hub) sendError(c *Client, err error) {
	payload, merr := json.Marshal(domain.NewErrorEvent(err))
	if merr != nil {
		return
	}
	c.trySend(payload)
}

// snapshotRoom builds the wire representation of a room.
// NOTE: caller must hold h.mu.
func (h *Hub) snapshotRoom(room *Room) domain.RoomSnapshot {
	users := make([]string, 0, len(room.memberIDs))
	for id := range room.memberIDs {
		if u := h.registry.UserByID(id); u != nil {
			users = append(users, u.Username)
		}
	}

	return domain.RoomSnapshot{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Users:       users,
		UserCount:   room.MemberCount(),
		CreatedAt:   room.CreatedAt,
	}
}

// roomSnapshots builds snapshots of all rooms in creation order.
// NOTE: caller must hold h.mu.
func (h *Hub) roomSnapshots() []domain.RoomSnapshot {
	rooms := h.rooms.List()
	snapshots := make([]domain.RoomSnapshot, 0, len(rooms))
	for _, r := range rooms {
		snapshots = append(snapshots, h.snapshotRoom(r))
	}
	return snapshots
}

// roomsListEvent builds the full room list event.
// NOTE: caller must hold h.mu.
func (h *Hub) roomsListEvent() domain.RoomsListEvent {
	return domain.RoomsListEvent{
		Type:  domain.EventRoomsList,
		Rooms: h.roomSnapshots(),
	}
}

// usersListEvent builds the full user list event.
// NOTE: caller must hold h.mu.
func (h *Hub) usersListEvent() domain.UsersListEvent {
	return domain.UsersListEvent{
		Type:  domain.EventUsersList,
		Users: h.registry.Usernames(),
	}
}

// roomTargets returns the room's connections as a target slice
func roomTargets(room *Room) []*Client {
	targets := make([]*Client, 0, len(room.connections))
	for c := range room.connections {
		targets = append(targets, c)
	}
	return targets
}

// messagesOrEmpty keeps joinedRoom payloads as [] instead of null
func messagesOrEmpty(msgs []domain.ChatMessage) []domain.ChatMessage {
	if msgs == nil {
		return []domain.ChatMessage{}
	}
	return msgs
}
