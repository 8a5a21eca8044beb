package domain

import "time"

// Item is a tradeable game item. Metadata is sourced from the external game-data importer.
type Item struct {
	ID         int       `json:"item_id" db:"item_id"`
	ExternalID *int      `json:"external_id,omitempty" db:"external_id"`
	Name       string    `json:"name" db:"name"`
	Type       string    `json:"type,omitempty" db:"type"`
	Category   string    `json:"category,omitempty" db:"category"`
	Level      *int      `json:"level,omitempty" db:"level"`
	ImageURL   string    `json:"image_url,omitempty" db:"image_url"`
	UpdatedAt  time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
