package ws

import "github.com/dhimasank/ngobrol/internal/domain"

// History is a fixed-size circular buffer of chat messages.
// It provides O(1) append with FIFO eviction once full.
type History struct {
	data []domain.ChatMessage
	head int // next write position
	size int // current number of elements
	cap  int // maximum capacity
}

// NewHistory creates a history buffer with the given capacity
func NewHistory(capacity int) *History {
	return &History{
		data: make([]domain.ChatMessage, capacity),
		cap:  capacity,
	}
}

// Add appends a message, evicting the oldest if the buffer is full
func (h *History) Add(msg domain.ChatMessage) {
	h.data[h.head] = msg
	h.head = (h.head + 1) % h.cap

	if h.size < h.cap {
		h.size++
	}
}

// All returns every stored message in chronological order (oldest first)
func (h *History) All() []domain.ChatMessage {
	if h.size == 0 {
		return nil
	}

	result := make([]domain.ChatMessage, h.size)

	if h.size < h.cap {
		copy(result, h.data[:h.size])
	} else {
		// Buffer is full, head points to the oldest element
		copy(result, h.data[h.head:])
		copy(result[h.cap-h.head:], h.data[:h.head])
	}

	return result
}

// Recent returns the last limit messages, oldest first. The whole
// history is returned when it holds fewer than limit messages.
func (h *History) Recent(limit int) []domain.ChatMessage {
	all := h.All()
	if limit <= 0 || len(all) <= limit {
		return all
	}
	return all[len(all)-limit:]
}

// Len returns the current number of stored messages
func (h *History) Len() int {
	return h.size
}
