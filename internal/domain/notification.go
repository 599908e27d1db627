package domain

import "time"

type Notification struct {
	ID          int64     `json:"id"`
	RecipientID int64     `json:"recipientId"` // candidate ID
	Type        string    `json:"type"`        // application/posting/system
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	EntityType  string    `json:"entityType,omitempty"`
	EntityID    int64     `json:"entityId,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}
