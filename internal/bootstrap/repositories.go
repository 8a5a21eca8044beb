package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/database/postgres"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Catalog repository.Catalog
	Prices  repository.Prices
	Servers repository.Servers
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog: postgres.NewCatalogRepository(dbPool),
		Prices:  postgres.NewPriceRepository(dbPool),
		Servers: postgres.NewServerRepository(dbPool),
	}
}
