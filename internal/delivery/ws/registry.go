package ws

import (
	"github.com/google/uuid"

	"github.com/dhimasank/ngobrol/internal/domain"
)

// Registry maps live connections to their users. It is the single
// source of truth for who is connected.
//
// NOTE: Registry is not safe for concurrent use on its own; the hub's
// lock serializes every access.
type Registry struct {
	clients map[*Client]*domain.User
	byID    map[string]*domain.User
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[*Client]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

// Register associates a connection with a fresh user. It fails with
// domain.ErrNameTaken when another live connection already holds the
// same display name (case-sensitive exact match). An empty requestedID
// gets a generated id; otherwise the requested id is accepted as-is,
// since ids are ephemeral and carry no cross-session meaning.
func (r *Registry) Register(c *Client, username, requestedID string) (*domain.User, error) {
	for other, u := range r.clients {
		if other != c && u.Username == username {
			return nil, domain.ErrNameTaken
		}
	}

	id := requestedID
	if id == "" {
		id = uuid.NewString()
	}

	user := domain.NewUser(id, username)
	r.clients[c] = user
	r.byID[user.ID] = user
	return user, nil
}

// Lookup returns the user for a connection, or nil if it never joined
func (r *Registry) Lookup(c *Client) *domain.User {
	return r.clients[c]
}

// UserByID returns a registered user by id, or nil
func (r *Registry) UserByID(id string) *domain.User {
	return r.byID[id]
}

// Unregister removes and returns the user for a connection. It returns
// nil when the connection was not registered, which makes disconnect
// cleanup idempotent. Room cleanup is the caller's responsibility.
func (r *Registry) Unregister(c *Client) *domain.User {
	user, ok := r.clients[c]
	if !ok {
		return nil
	}
	delete(r.clients, c)
	delete(r.byID, user.ID)
	return user
}

// Usernames returns the display names of every registered user
func (r *Registry) Usernames() []string {
	names := make([]string, 0, len(r.clients))
	for _, u := range r.clients {
		names = append(names, u.Username)
	}
	return names
}

// Clients returns every registered connection
func (r *Registry) Clients() []*Client {
	clients := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		clients = append(clients, c)
	}
	return clients
}

// Count returns the number of registered connections
func (r *Registry) Count() int {
	return len(r.clients)
}
