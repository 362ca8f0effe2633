package events

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int]chan Event),
	}
}

func New(eventType string, operation string, target string, success bool) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Operation: operation,
		Target:    target,
		Success:   success,
		Timestamp: time.Now().UTC(),
	}
}

func (e Event) ToJSON() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	return json.Marshal(e)
}

// Subscribe registers a new buffered channel and returns it with its handle.
func (h *Hub) Subscribe() (int, chan Event) {
	h.lock.Lock()
	defer h.lock.Unlock()

	id := h.next
	h.next++

	ch := make(chan Event, 100)
	h.subscribers[id] = ch

	return id, ch
}

// Unsubscribe removes and closes the channel for the handle. Safe to call
// once per handle.
func (h *Hub) Unsubscribe(id int) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// Publish delivers the event to every subscriber whose buffer has room.
func (h *Hub) Publish(event Event) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *Hub) Subscribers() int {
	h.lock.RLock()
	defer h.lock.RUnlock()

	return len(h.subscribers)
}
