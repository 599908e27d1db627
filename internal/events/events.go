// Package events carries the live feed behind the placement dashboard:
// application updates, posting openings, intake runs and chat messages fan
// out as JSON envelopes over SSE.
package events

import (
	"encoding/json"
	"time"
)

// Event types published on the feed.
const (
	TypePing               = "ping"
	TypeApplicationCreated = "application_created"
	TypeApplicationStatus  = "application_status"
	TypePostingOpened      = "posting_opened"
	TypeIntakeCompleted    = "intake_completed"
	TypeChatMessage        = "chat_message"
)

// envelopeVersion bumps when the wire shape changes.
const envelopeVersion = 1

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent serializes one feed envelope. reqID ties the event back to the
// HTTP request that caused it; background publishers pass "".
func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   envelopeVersion,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
