package domain

import "time"

type Company struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Industry     string    `json:"industry,omitempty"`
	Website      string    `json:"website,omitempty"`
	ContactEmail string    `json:"contactEmail"`
	Verified     bool      `json:"verified"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}
