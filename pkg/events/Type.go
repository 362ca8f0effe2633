package events

import (
	"sync"
	"time"
)

// Event is one operation notice pushed to websocket subscribers.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Operation string    `json:"operation"`
	Target    string    `json:"target"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types.
const (
	TYPE_CONTAINER = "container"
	TYPE_COMPOSE   = "compose"
	TYPE_CHROME    = "chrome"
	TYPE_SPEEDTEST = "speedtest"
)

// Hub fans events out to subscriber channels. Slow subscribers drop events
// instead of blocking the publisher.
type Hub struct {
	lock        sync.RWMutex
	subscribers map[int]chan Event
	next        int
}
