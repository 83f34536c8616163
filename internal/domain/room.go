package domain

import "time"

// RoomSnapshot is the wire representation of a room sent in roomsList,
// roomCreated and joinedRoom events. Membership is reported as display
// names plus a count.
type RoomSnapshot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Users       []string  `json:"users"`
	UserCount   int       `json:"userCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
