package domain

import "time"

// ChatMessage is a message sent to a room. The author's username is a
// snapshot taken at send time; it is immutable once stored and is
// destroyed only by FIFO eviction from the room's history.
type ChatMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
