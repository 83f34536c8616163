package ws

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dhimasank/ngobrol/internal/domain"
)

// Room is a named channel grouping connections for message scoping.
// memberIDs and connections are kept in lockstep: they are mutated only
// through addMember/removeMember, so their sizes always match and a
// connection belongs to at most one room.
type Room struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time

	memberIDs   map[string]struct{}
	connections map[*Client]struct{}
	history     *History
}

// addMember adds a user and its connection to the room as one paired update
func (r *Room) addMember(user *domain.User, c *Client) {
	r.memberIDs[user.ID] = struct{}{}
	r.connections[c] = struct{}{}
}

// removeMember removes a user and its connection; no-op if absent
func (r *Room) removeMember(user *domain.User, c *Client) {
	delete(r.memberIDs, user.ID)
	delete(r.connections, c)
}

// MemberCount returns the number of users in the room
func (r *Room) MemberCount() int {
	return len(r.memberIDs)
}

// ConnectionCount returns the number of connections in the room
func (r *Room) ConnectionCount() int {
	return len(r.connections)
}

// HasMember reports whether the user id is in the room
func (r *Room) HasMember(userID string) bool {
	_, ok := r.memberIDs[userID]
	return ok
}

// RoomStore owns all room entities and their message history.
// It knows nothing about the network.
//
// NOTE: RoomStore is not safe for concurrent use on its own; the hub's
// lock serializes every access.
type RoomStore struct {
	rooms      map[string]*Room
	order      []string // room ids in creation order
	historyCap int
}

// NewRoomStore creates an empty store whose rooms keep historyCap messages
func NewRoomStore(historyCap int) *RoomStore {
	return &RoomStore{
		rooms:      make(map[string]*Room),
		historyCap: historyCap,
	}
}

// Create allocates a room with empty membership and history. The name
// must be unique case-insensitively among all existing rooms; a
// collision fails with domain.ErrRoomExists.
func (s *RoomStore) Create(name, description string) (*Room, error) {
	for _, r := range s.rooms {
		if strings.EqualFold(r.Name, name) {
			return nil, domain.ErrRoomExists
		}
	}

	room := &Room{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		memberIDs:   make(map[string]struct{}),
		connections: make(map[*Client]struct{}),
		history:     NewHistory(s.historyCap),
	}

	s.rooms[room.ID] = room
	s.order = append(s.order, room.ID)
	return room, nil
}

// Get returns a room by id, or nil
func (s *RoomStore) Get(id string) *Room {
	return s.rooms[id]
}

// List returns all rooms in creation order
func (s *RoomStore) List() []*Room {
	rooms := make([]*Room, 0, len(s.order))
	for _, id := range s.order {
		rooms = append(rooms, s.rooms[id])
	}
	return rooms
}

// AppendMessage appends to the room's history, evicting the oldest
// message once the capacity is exceeded. Unknown room ids are ignored.
func (s *RoomStore) AppendMessage(roomID string, msg domain.ChatMessage) {
	if room := s.rooms[roomID]; room != nil {
		room.history.Add(msg)
	}
}

// RecentMessages returns the room's last limit messages, oldest first
func (s *RoomStore) RecentMessages(roomID string, limit int) []domain.ChatMessage {
	room := s.rooms[roomID]
	if room == nil {
		return nil
	}
	return room.history.Recent(limit)
}

// Count returns the number of rooms
func (s *RoomStore) Count() int {
	return len(s.rooms)
}
