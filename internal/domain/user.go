package domain

import "time"

// User is the identity of a connected participant. It exists only for
// the lifetime of its connection; there is no account or session store
// behind it.
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`

	// CurrentRoomID is empty while the user is connected but not in
	// any room. Only the hub's join/leave transitions mutate it.
	CurrentRoomID string `json:"-"`
}

// NewUser creates a User with the given id and display name
func NewUser(id, username string) *User {
	return &User{
		ID:       id,
		Username: username,
		JoinedAt: time.Now(),
	}
}
