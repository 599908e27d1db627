package chat

import (
	"sync"

	"github.com/akshaynaik00018/cpms/internal/events"
)

// Relay keeps one hub per room so placement-cell announcements and company
// Q&A threads don't cross. Messages are best effort; nothing is stored.
type Relay struct {
	mu    sync.Mutex
	rooms map[string]*events.Hub
}

func NewRelay() *Relay {
	return &Relay{rooms: make(map[string]*events.Hub)}
}

func (r *Relay) room(name string) *events.Hub {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.rooms[name]
	if !ok {
		h = events.NewHub()
		r.rooms[name] = h
	}
	return h
}

func (r *Relay) Subscribe(room string) chan string {
	return r.room(room).Subscribe()
}

func (r *Relay) Unsubscribe(room string, ch chan string) {
	r.room(room).Unsubscribe(ch)
}

// Post relays a message to everyone in the room. Slow readers miss it.
func (r *Relay) Post(room, requestID, sender, text string) {
	r.room(room).Publish(events.MakeEvent(requestID, events.TypeChatMessage, map[string]string{
		"room":   room,
		"sender": sender,
		"text":   text,
	}))
}

// Rooms lists rooms that currently exist.
func (r *Relay) Rooms() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.rooms))
	for name := range r.rooms {
		out = append(out, name)
	}
	return out
}
