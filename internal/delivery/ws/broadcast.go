package ws

import (
	"encoding/json"
	"log"
)

// delivery is one serialized event bound for a set of connections
type delivery struct {
	payload []byte
	targets []*Client
}

// outbox collects the deliveries of one mutation so they enqueue as a
// unit. flush runs while the hub lock is still held: that is what
// keeps each connection's buffer in the same per-room order as the
// mutations themselves, and since sends never block, holding the lock
// through enqueue cannot stall on a slow reader. Delivery itself never
// mutates shared state: it only writes to per-client buffers.
type outbox struct {
	pending []delivery
}

// add serializes the event once and queues it for the targets,
// skipping the excluded connection
func (o *outbox) add(event interface{}, targets []*Client, exclude *Client) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode event: %v", err)
		return
	}

	kept := make([]*Client, 0, len(targets))
	for _, c := range targets {
		if c != nil && c != exclude {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return
	}

	o.pending = append(o.pending, delivery{payload: payload, targets: kept})
}

// flush delivers every queued event. Closed connections are skipped
// silently; a closed peer is expected, not exceptional. Sends are
// fire-and-forget: a slow reader's full buffer drops the message for
// that connection without blocking anyone else.
func (o *outbox) flush() {
	for _, d := range o.pending {
		for _, c := range d.targets {
			if c.isClosed() {
				continue
			}
			c.trySend(d.payload)
		}
	}
	o.pending = nil
}
