package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Catalog defines the interface for item and recipe persistence
type Catalog interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	// ListRecipes returns every recipe with its ingredients in stored order
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)

	// Seed operations, keyed by the external game-data ID
	UpsertItem(ctx context.Context, item *domain.Item) (int, error)
	UpsertRecipe(ctx context.Context, recipe *domain.Recipe) (int, error)
}
