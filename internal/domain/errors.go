package domain

import "errors"

// Errors reported back to the originating connection as a non-fatal
// "error" event. None of them terminate the connection; the rejected
// transition leaves all state unchanged.
var (
	ErrInvalidName      = errors.New("Username must be between 2 and 20 characters (letters, digits, _ and -)")
	ErrNameTaken        = errors.New("Username is already taken")
	ErrAlreadyJoined    = errors.New("Already joined")
	ErrNotAuthenticated = errors.New("User not authenticated")
	ErrInvalidRoomName  = errors.New("Room name must be between 2 and 50 characters")
	ErrRoomExists       = errors.New("Room name already exists")
	ErrRoomNotFound     = errors.New("Room not found")
	ErrNotInRoom        = errors.New("User not in room")
	ErrEmptyMessage     = errors.New("Message cannot be empty")
	ErrMalformedEvent   = errors.New("Invalid message format")
	ErrUnknownEvent     = errors.New("Unknown message type")
	ErrRateLimited      = errors.New("Too many messages")
)
