package ws

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dhimasank/ngobrol/internal/domain"
)

// usernameRegex matches valid display names (alphanumeric plus - and _)
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateUsername trims the raw name and checks length and charset.
// Returns the cleaned name or domain.ErrInvalidName.
func ValidateUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)
	if n < domain.UsernameMinLen || n > domain.UsernameMaxLen {
		return "", domain.ErrInvalidName
	}
	if !usernameRegex.MatchString(name) {
		return "", domain.ErrInvalidName
	}
	return name, nil
}

// ValidateRoomName trims the raw name and checks its length.
// Returns the cleaned name or domain.ErrInvalidRoomName.
func ValidateRoomName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)
	if n < domain.RoomNameMinLen || n > domain.RoomNameMaxLen {
		return "", domain.ErrInvalidRoomName
	}
	return name, nil
}
