package realtime

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Wildcard subscribes to every table
const Wildcard = "*"

// ActionResync tells subscribers their view may be stale and should be refetched
const ActionResync = "resync"

// Change is one row-level change pushed to clients
type Change struct {
	Table  string    `json:"table"`
	Action string    `json:"action"` // insert, update, delete, resync
	ID     string    `json:"id,omitempty"`
	At     time.Time `json:"at"`
}

// DecodeChange parses a pg_notify payload
func DecodeChange(payload string) (Change, error) {
	var ch Change
	if err := json.Unmarshal([]byte(payload), &ch); err != nil {
		return Change{}, fmt.Errorf("decode change: %w", err)
	}
	if ch.Table == "" || ch.Action == "" {
		return Change{}, fmt.Errorf("decode change: missing table or action")
	}
	ch.Action = strings.ToLower(ch.Action)
	if ch.At.IsZero() {
		ch.At = time.Now().UTC()
	}
	return ch, nil
}

// Subscription receives changes for its tables until Unsubscribe
type Subscription struct {
	ID     uuid.UUID
	Tables []string
	C      <-chan Change

	send     chan Change
	sendOnce sync.Once
}

func (s *Subscription) closeSend() { s.sendOnce.Do(func() { close(s.send) }) }

// Hub fans changes out to subscribers keyed by table
type Hub struct {
	mu     sync.RWMutex
	tables map[string]map[uuid.UUID]*Subscription
	buffer int
}

func NewHub() *Hub {
	return &Hub{
		tables: make(map[string]map[uuid.UUID]*Subscription),
		buffer: 64,
	}
}

// Subscribe registers for the given tables; no tables means all of them
func (h *Hub) Subscribe(tables ...string) *Subscription {
	if len(tables) == 0 {
		tables = []string{Wildcard}
	}
	send := make(chan Change, h.buffer)
	sub := &Subscription{ID: uuid.New(), Tables: tables, C: send, send: send}

	h.mu.Lock()
	for _, t := range tables {
		if h.tables[t] == nil {
			h.tables[t] = make(map[uuid.UUID]*Subscription)
		}
		h.tables[t][sub.ID] = sub
	}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	for _, t := range sub.Tables {
		if m := h.tables[t]; m != nil {
			delete(m, sub.ID)
			if len(m) == 0 {
				delete(h.tables, t)
			}
		}
	}
	h.mu.Unlock()
	sub.closeSend()
}

// Publish delivers ch to table and wildcard subscribers. Slow subscribers drop the change.
// A resync change goes to everyone.
func (h *Hub) Publish(ch Change) int {
	h.mu.RLock()
	targets := make(map[uuid.UUID]*Subscription)
	if ch.Action == ActionResync {
		for _, m := range h.tables {
			for id, s := range m {
				targets[id] = s
			}
		}
	} else {
		for _, key := range []string{ch.Table, Wildcard} {
			for id, s := range h.tables[key] {
				targets[id] = s
			}
		}
	}
	h.mu.RUnlock()

	delivered := 0
	for _, s := range targets {
		select {
		case s.send <- ch:
			delivered++
		default:
		}
	}
	return delivered
}

// Count returns the number of live subscriptions
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	for _, m := range h.tables {
		for id := range m {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}
