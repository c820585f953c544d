// Package feed fans bowler list snapshots out to live subscribers.
//
// Each subscriber has a one-slot mailbox. A publish replaces whatever the
// subscriber has not consumed yet, so slow readers skip intermediate
// snapshots but always end up on the newest one, and never see them out
// of order.
package feed

import (
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// Snapshot is the complete list at one point in time. Receivers must not
// modify it.
type Snapshot []models.Bowler

type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan Snapshot
	nextID uint64
	latest Snapshot
	primed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan Snapshot)}
}

// Publish stores snapshot as the latest and hands it to every subscriber.
func (h *Hub) Publish(snapshot []models.Bowler) {
	snap := make(Snapshot, len(snapshot))
	copy(snap, snapshot)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = snap
	h.primed = true
	for _, ch := range h.subs {
		offer(ch, snap)
	}
}

// Subscribe registers a mailbox. If a snapshot was already published it is
// waiting in the mailbox. The returned func unsubscribes and closes the
// channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	if h.primed {
		ch <- h.latest
	}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			close(ch)
			h.mu.Unlock()
		})
	}
}

// Primed reports whether any snapshot has been published yet.
func (h *Hub) Primed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.primed
}

// Subscribers returns the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// offer must be called with the hub lock held; it is the only sender, so
// after draining the slot the send cannot block.
func offer(ch chan Snapshot, snap Snapshot) {
	select {
	case <-ch:
	default:
	}
	ch <- snap
}
