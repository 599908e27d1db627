package httpapi

import (
	"fmt"
	"net/http"

	"github.com/akshaynaik00018/cpms/internal/chat"
)

type ChatHandler struct {
	Relay *chat.Relay
}

type chatPostReq struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Post handles POST /chat/{room}.
func (h ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	room := roomFromPath(r.URL.Path)
	if room == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "room name is required")
		return
	}

	var req chatPostReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Sender == "" || req.Text == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "sender and text are required")
		return
	}

	h.Relay.Post(room, RequestIDFrom(r.Context()), req.Sender, req.Text)
	w.WriteHeader(http.StatusAccepted)
}

// Stream handles GET /chat/{room} as an SSE stream.
func (h ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	room := roomFromPath(r.URL.Path)
	if room == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "room name is required")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "Streaming unsupported")
		return
	}

	ch := h.Relay.Subscribe(room)
	defer h.Relay.Unsubscribe(room, ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func roomFromPath(path string) string {
	const prefix = "/chat/"
	if len(path) <= len(prefix) {
		return ""
	}
	return path[len(prefix):]
}
