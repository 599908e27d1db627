package events

import (
	"encoding/json"
	"testing"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	if n := h.Subscribers(); n != 1 {
		t.Fatalf("Subscribers() = %d, want 1", n)
	}
	h.Publish("hello")
	select {
	case got := <-ch:
		if got != "hello" {
			t.Fatalf("got %q", got)
		}
	default:
		t.Fatal("no message delivered")
	}
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// beyond the buffer, events must be dropped, not block
	for i := 0; i < subscriberBuffer+15; i++ {
		h.Publish("m")
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("buffered = %d, want %d", len(ch), subscriberBuffer)
	}
}

func TestHubUnsubscribeCloses(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatal("channel not closed")
	}
	if n := h.Subscribers(); n != 0 {
		t.Fatalf("Subscribers() = %d after unsubscribe", n)
	}
	// publish after unsubscribe must not panic
	h.Publish("late")
}

func TestMakeEvent(t *testing.T) {
	s := MakeEvent("req-1", TypeApplicationStatus, map[string]string{"status": "shortlisted"})

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Type != "application_status" || e.Version != 1 || e.RequestID != "req-1" {
		t.Fatalf("event = %+v", e)
	}
	if e.At.IsZero() {
		t.Fatal("At not set")
	}
	var data map[string]string
	if err := json.Unmarshal(e.Data, &data); err != nil || data["status"] != "shortlisted" {
		t.Fatalf("data = %s", e.Data)
	}
}
