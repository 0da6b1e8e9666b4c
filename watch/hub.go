package watch

import (
	"encoding/json"
	"slices"
	"sync"
)

// Event is one wire message: a kind string (the effect name) and an
// already-marshaled payload.
type Event struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EventHandler consumes published events.
type EventHandler interface {
	HandleEvent(e Event)
}

// Hub is a per-kind registry of event handlers. Publish fans an event out
// to every handler subscribed to its kind. Safe for concurrent use.
type Hub struct {
	lock     sync.Mutex
	handlers map[string][]EventHandler
}

func NewHub() *Hub {
	return &Hub{handlers: map[string][]EventHandler{}}
}

// Subscribe registers h for every listed kind. An empty kinds list means
// every kind published so far and later, expressed as the wildcard "*".
func (hub *Hub) Subscribe(h EventHandler, kinds ...string) {
	hub.lock.Lock()
	defer hub.lock.Unlock()
	if len(kinds) == 0 {
		kinds = []string{"*"}
	}
	for _, kind := range kinds {
		hub.handlers[kind] = append(hub.handlers[kind], h)
	}
}

// Unsubscribe removes h from every kind it was registered for.
func (hub *Hub) Unsubscribe(h EventHandler) {
	hub.lock.Lock()
	defer hub.lock.Unlock()
	for kind, list := range hub.handlers {
		hub.handlers[kind] = slices.DeleteFunc(list, func(have EventHandler) bool {
			return have == h
		})
	}
}

// Publish delivers e to all handlers of its kind plus wildcard subscribers.
func (hub *Hub) Publish(e Event) {
	hub.lock.Lock()
	targets := slices.Clone(hub.handlers[e.Kind])
	targets = append(targets, hub.handlers["*"]...)
	hub.lock.Unlock()

	log.Debug("publishing event {{kind}} to {{count}} handlers", "kind", e.Kind, "count", len(targets))
	for _, h := range targets {
		h.HandleEvent(e)
	}
}
