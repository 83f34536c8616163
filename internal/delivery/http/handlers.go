package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/dhimasank/ngobrol/internal/config"
	"github.com/dhimasank/ngobrol/internal/delivery/ws"
)

// Handler exposes the WebSocket entry point and the JSON endpoints
type Handler struct {
	hub      *ws.Hub
	cfg      *config.Config
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler bound to the hub and configuration
func NewHandler(hub *ws.Hub, cfg *config.Config) *Handler {
	h := &Handler{
		hub: hub,
		cfg: cfg,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return h.isOriginAllowed(r.Header.Get("Origin"))
		},
	}
	return h
}

// isOriginAllowed checks if the origin is in the allowed list
func (h *Handler) isOriginAllowed(origin string) bool {
	// Empty origin is allowed (same-origin requests)
	if origin == "" {
		return true
	}

	for _, allowed := range h.cfg.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

// HandleWebSocket upgrades the request and starts the connection's
// pumps. The connection stays unauthenticated until its join event is
// accepted by the hub.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	limiter := rate.NewLimiter(h.cfg.MessageRate, h.cfg.MessageBurst)
	client := ws.NewClient(h.hub, conn, limiter)

	go client.WritePump()
	go client.ReadPump()
}

// HandleHealth reports liveness
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleStats reports connected user and room counts
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"users": h.hub.ConnectedUsers(),
		"rooms": h.hub.RoomCount(),
	})
}

// HandleRooms lists all rooms with their member counts
func (h *Handler) HandleRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.hub.Rooms())
}
