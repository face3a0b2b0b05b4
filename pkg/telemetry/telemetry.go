// Package telemetry fans out dock lifecycle events to in-process
// subscribers. Publishing never blocks the UI loop; slow subscribers
// drop events.
package telemetry

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType identifies the kind of telemetry event.
type EventType string

const (
	EventPartAdded        EventType = "part.added"
	EventPartRemoved      EventType = "part.removed"
	EventPartCollapsed    EventType = "part.collapsed"
	EventPartExpanded     EventType = "part.expanded"
	EventPartHidden       EventType = "part.hidden"
	EventPartShown        EventType = "part.shown"
	EventPartsReordered   EventType = "parts.reordered"
	EventLayoutPass       EventType = "layout.pass"
	EventAnimationStarted EventType = "animation.started"
	EventAnimationEnded   EventType = "animation.ended"
	EventStateSaved       EventType = "state.saved"
	EventStateRestored    EventType = "state.restored"
	EventSnapshotSaved    EventType = "snapshot.saved"
)

// Event describes dock activity that UIs and loggers can consume.
type Event struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	Timestamp   time.Time      `json:"timestamp"`
	ContainerID string         `json:"containerId,omitempty"`
	PartID      string         `json:"partId,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// Hub fan-outs telemetry events to any number of subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	closed      bool
}

// NewHub constructs a telemetry hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Publish notifies all subscribers of an event. Non-blocking; drops if buffer full.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Drop if subscriber can't keep up; prevents blocking the UI loop.
		}
	}
}

// Subscribe returns a channel that will receive future events and a cleanup func.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		empty := make(chan Event)
		close(empty)
		return empty, func() {}
	}
	ch := make(chan Event, 64)
	h.subscribers[ch] = struct{}{}
	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// Close unsubscribes all listeners and prevents future publications.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}
