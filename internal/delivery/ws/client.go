package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/dhimasank/ngobrol/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = domain.MaxMessageSize

	// Outbound buffer per connection; a full buffer drops messages for
	// this connection instead of blocking the hub
	sendBufferSize = 256
)

// Client is one live transport endpoint. The hub references clients
// but never owns the connection; the transport layer does.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// send is never closed; both pumps exit on connection teardown
	// and a closed client is skipped via the closed flag instead
	send    chan []byte
	closed  atomic.Bool
	limiter *rate.Limiter
}

// NewClient wraps an upgraded connection. limiter bounds inbound
// events; nil disables the bound.
func NewClient(hub *Hub, conn *websocket.Conn, limiter *rate.Limiter) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		limiter: limiter,
	}
}

// ReadPump pumps events from the connection into the hub. Read errors
// and graceful closes both end the loop and funnel into one Disconnect.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Disconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		if c.limiter != nil && !c.limiter.Allow() {
			c.sendEvent(domain.NewErrorEvent(domain.ErrRateLimited))
			continue
		}

		c.handleEvent(data)
	}
}

// handleEvent decodes one inbound envelope and routes it to the hub
func (c *Client) handleEvent(data []byte) {
	var event domain.ClientEvent
	if err := json.Unmarshal(data, &event); err != nil {
		c.sendEvent(domain.NewErrorEvent(domain.ErrMalformedEvent))
		return
	}

	switch event.Type {
	case domain.EventJoin:
		c.hub.Join(c, event.Username, event.UserID)
	case domain.EventCreateRoom:
		c.hub.CreateRoom(c, event.RoomName)
	case domain.EventJoinRoom:
		c.hub.JoinRoom(c, event.RoomID)
	case domain.EventMessage:
		c.hub.SendMessage(c, event.RoomID, event.Text)
	default:
		c.sendEvent(domain.NewErrorEvent(domain.ErrUnknownEvent))
	}
}

// WritePump pumps queued events to the connection and keeps the peer
// alive with pings
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush queued messages in the same frame batch
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend queues a payload without blocking; a full buffer drops it
func (c *Client) trySend(payload []byte) {
	select {
	case c.send <- payload:
	default:
	}
}

// sendEvent serializes and queues one event for this connection only
func (c *Client) sendEvent(event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	c.trySend(payload)
}

// markClosed flags the client so broadcasts skip it
func (c *Client) markClosed() {
	c.closed.Store(true)
}

// isClosed reports whether the connection has been torn down
func (c *Client) isClosed() bool {
	return c.closed.Load()
}
