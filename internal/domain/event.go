package domain

// EventType discriminates the flat JSON envelope exchanged with
// clients: {"type": "...", ...fields}.
type EventType string

// Inbound event types
const (
	EventJoin       EventType = "join"
	EventCreateRoom EventType = "createRoom"
	EventJoinRoom   EventType = "joinRoom"
	EventMessage    EventType = "message"
)

// Outbound event types
const (
	EventUserJoined     EventType = "userJoined"
	EventUserLeft       EventType = "userLeft"
	EventUserJoinedRoom EventType = "userJoinedRoom"
	EventRoomsList      EventType = "roomsList"
	EventUsersList      EventType = "usersList"
	EventRoomCreated    EventType = "roomCreated"
	EventJoinedRoom     EventType = "joinedRoom"
	EventError          EventType = "error"
)

// ClientEvent is the union of all inbound event shapes. Which fields
// are meaningful depends on Type.
type ClientEvent struct {
	Type     EventType `json:"type"`
	Username string    `json:"username,omitempty"`
	UserID   string    `json:"userId,omitempty"`
	RoomName string    `json:"roomName,omitempty"`
	RoomID   string    `json:"roomId,omitempty"`
	Text     string    `json:"text,omitempty"`
}

// UserJoinedEvent announces a new connection to everyone else
type UserJoinedEvent struct {
	Type     EventType `json:"type"`
	Username string    `json:"username"`
	UserID   string    `json:"userId"`
}

// UserLeftEvent announces a disconnect to the remaining connections
type UserLeftEvent struct {
	Type     EventType `json:"type"`
	Username string    `json:"username"`
	UserID   string    `json:"userId"`
}

// UserJoinedRoomEvent notifies a room's members of a new occupant
type UserJoinedRoomEvent struct {
	Type     EventType `json:"type"`
	Username string    `json:"username"`
	RoomID   string    `json:"roomId"`
}

// RoomsListEvent carries the full room roster with member counts
type RoomsListEvent struct {
	Type  EventType      `json:"type"`
	Rooms []RoomSnapshot `json:"rooms"`
}

// UsersListEvent carries the display names of every connected user
type UsersListEvent struct {
	Type  EventType `json:"type"`
	Users []string  `json:"users"`
}

// RoomCreatedEvent confirms room creation to the creator
type RoomCreatedEvent struct {
	Type EventType    `json:"type"`
	Room RoomSnapshot `json:"room"`
}

// JoinedRoomEvent is sent to a user entering a room, with the room
// snapshot and the most recent history
type JoinedRoomEvent struct {
	Type     EventType     `json:"type"`
	Room     RoomSnapshot  `json:"room"`
	Messages []ChatMessage `json:"messages"`
}

// MessageEvent is a chat message fanned out to a room. The message
// fields are flattened into the envelope.
type MessageEvent struct {
	Type EventType `json:"type"`
	ChatMessage
}

// ErrorEvent reports a rejected transition to the offending connection
type ErrorEvent struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}

// NewErrorEvent wraps an error for the wire
func NewErrorEvent(err error) ErrorEvent {
	return ErrorEvent{Type: EventError, Message: err.Error()}
}
