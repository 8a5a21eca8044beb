package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Prices defines the interface for market price persistence
type Prices interface {
	// GetCurrentPrice returns the latest approved price, or nil when none exists
	GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error)
	// ListCurrentPrices returns every approved price on a server
	ListCurrentPrices(ctx context.Context, serverID int) ([]domain.Price, error)
	GetPriceHistory(ctx context.Context, itemID, serverID, limit int) ([]domain.PriceHistory, error)

	BeginTx(ctx context.Context) (PriceTx, error)
}

// PriceTx groups a price upsert with its history row
type PriceTx interface {
	Tx
	UpsertPrice(ctx context.Context, price *domain.Price) error
	InsertPriceHistory(ctx context.Context, history *domain.PriceHistory) error
}
