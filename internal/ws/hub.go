package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event represents a WebSocket event sent to site visitors.
type Event struct {
	Type string      `json:"type"` // "hero", "countdown"
	Data interface{} `json:"data"`
}

// SnapshotFunc returns the events a client needs right after connecting.
type SnapshotFunc func() []*Event

// Hub maintains the set of active WebSocket clients and broadcasts events.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	snapshot   SnapshotFunc
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// SetSnapshot sets the source of the initial events for new clients.
func (h *Hub) SetSnapshot(fn SnapshotFunc) {
	h.snapshot = fn
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.greet(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				h.log.Warn("failed to marshal ws event", slog.String("type", event.Type), slog.String("error", err.Error()))
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) greet(client *Client) {
	if h.snapshot == nil {
		return
	}
	for _, event := range h.snapshot() {
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		select {
		case client.send <- data:
		default:
		}
	}
}

// Publish queues an event for every connected client. Events are dropped
// when the queue is full so timers never block on slow browsers.
func (h *Hub) Publish(eventType string, data any) {
	select {
	case h.broadcast <- &Event{Type: eventType, Data: data}:
	default:
		h.log.Warn("ws broadcast queue full, event dropped", slog.String("type", eventType))
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
