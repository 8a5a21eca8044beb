package domain

import "time"

// Ingredient is one edge of a recipe: Quantity units of ItemID consumed per craft.
type Ingredient struct {
	ItemID   int `json:"item_id" yaml:"item_id"`
	Quantity int `json:"quantity" yaml:"quantity"`
}

// Recipe produces QuantityProduced units of ItemID from its ingredients.
type Recipe struct {
	ID               int          `json:"recipe_id"`
	ItemID           int          `json:"item_id"`
	QuantityProduced int          `json:"quantity_produced"`
	Profession       *string      `json:"profession,omitempty"`
	ProfessionLevel  *int         `json:"profession_level,omitempty"`
	Ingredients      []Ingredient `json:"ingredients"`
	CreatedAt        time.Time    `json:"created_at,omitempty"`
}

// ProfessionName returns the recipe profession or an empty string.
func (r *Recipe) ProfessionName() string {
	if r.Profession == nil {
		return ""
	}
	return *r.Profession
}
