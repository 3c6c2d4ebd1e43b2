package realtime

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Client represents a single subscriber connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	// Send queues message for delivery and reports false if it was dropped.
	Send(message []byte) bool
	Close()
}

// Hub maintains subscribers per topic and broadcasts events to them.
// Topics are cache names.
type Hub struct {
	mu             sync.RWMutex
	topicToClients map[string]map[Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		topicToClients: make(map[string]map[Client]struct{}),
	}
}

// Register adds a client under a topic.
func (h *Hub) Register(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.topicToClients[topic]; !ok {
		h.topicToClients[topic] = make(map[Client]struct{})
	}
	h.topicToClients[topic][client] = struct{}{}
}

// Unregister removes a client; if the topic has no more clients, cleans up map.
func (h *Hub) Unregister(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.topicToClients[topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.topicToClients, topic)
		}
	}
}

// Subscribers returns the number of clients registered under topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topicToClients[topic])
}

// Broadcast sends a message to all clients of a topic and returns how many
// accepted it.
func (h *Hub) Broadcast(topic string, message []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for c := range h.topicToClients[topic] {
		// A full client is skipped; its handler notices the dead conn on its side.
		if c.Send(message) {
			delivered++
		}
	}
	return delivered
}

// EvictionEvent is pushed to subscribers of a cache whenever it discards an entry.
type EvictionEvent struct {
	Type    string `json:"type"`
	Cache   string `json:"cache"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// EvictionPublisher returns a cache OnEvicted callback that broadcasts an
// EvictionEvent on the topic named after the cache.
func EvictionPublisher(h *Hub, cacheName string) func(key, value string) {
	return func(key, _ string) {
		evt := EvictionEvent{
			Type:    "evicted",
			Cache:   cacheName,
			Key:     key,
			Message: fmt.Sprintf("DISCARD: %s", key),
		}
		if bytes, err := json.Marshal(evt); err == nil {
			h.Broadcast(cacheName, bytes)
		}
	}
}
