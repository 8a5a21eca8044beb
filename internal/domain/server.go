package domain

import "time"

// Server is one game server. Each server has an independent market.
type Server struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Type         string    `json:"type,omitempty"`
	Language     string    `json:"language,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
