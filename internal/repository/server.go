package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Servers defines the interface for game server persistence
type Servers interface {
	// GetServer returns nil when the server does not exist
	GetServer(ctx context.Context, serverID int) (*domain.Server, error)
	ListActiveServers(ctx context.Context) ([]domain.Server, error)
	UpsertServer(ctx context.Context, server *domain.Server) (int, error)
}
