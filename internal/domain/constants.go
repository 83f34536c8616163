package domain

// ==== WebSocket Constants ====

// MaxMessageSize is the maximum allowed WebSocket message size in bytes
const MaxMessageSize = 4096

// ==== History Constants ====

// MaxHistorySize is the number of messages kept per room; the oldest
// message is evicted once a room's history exceeds this
const MaxHistorySize = 100

// RecentMessagesLimit is the number of history messages replayed to a
// user entering a room
const RecentMessagesLimit = 50

// ==== Validation Constants ====

const (
	// UsernameMinLen and UsernameMaxLen bound the display name length
	UsernameMinLen = 2
	UsernameMaxLen = 20

	// RoomNameMinLen and RoomNameMaxLen bound the room name length
	RoomNameMinLen = 2
	RoomNameMaxLen = 50
)

// ==== Rate Limit Constants ====

const (
	// DefaultRateLimitAPI is the default rate limit for API endpoints (requests/sec)
	DefaultRateLimitAPI = 10

	// DefaultRateLimitWS is the default rate limit for WebSocket upgrades (req/sec)
	DefaultRateLimitWS = 5

	// DefaultMessageRate is the default per-connection inbound event rate (events/sec)
	DefaultMessageRate = 10

	// DefaultMessageBurst is the default per-connection inbound event burst
	DefaultMessageBurst = 20
)
