package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CraftMarket_Go/internal/catalog"
	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/notify"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
)

// Services holds the domain services built on top of the repositories.
type Services struct {
	Catalog *catalog.Catalog
	Prices  *pricing.CachedSource
	Costing costing.Service
	Pricing pricing.Service
}

// SyncSeed loads, validates and syncs a catalog seed file to the database.
func SyncSeed(ctx context.Context, path string, repos *Repositories) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingSeed, "path", path)

	seed, err := catalog.LoadSeed(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSeed, err)
	}

	result, err := seed.Sync(ctx, repos.Catalog, repos.Servers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncSeed, err)
	}

	slog.Info(LogMsgSeedSynced,
		"servers", result.Servers,
		"items", result.Items,
		"recipes", result.Recipes)
	return result, nil
}

// InitializeServices loads the recipe catalog and wires the costing and pricing services.
// The first catalog load must succeed; later reloads run in the background.
func InitializeServices(ctx context.Context, cfg *config.Config, repos *Repositories) (*Services, error) {
	cat := catalog.New(repos.Catalog)
	stats, err := cat.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "items", stats.Items, "recipes", stats.Recipes)

	prices := pricing.NewCachedSource(repos.Prices, cfg.PriceCacheSize, cfg.PriceCacheTTL)

	return &Services{
		Catalog: cat,
		Prices:  prices,
		Costing: costing.NewService(cat, prices, repos.Servers,
			costing.WithRankingWorkers(cfg.RankingWorkers),
			costing.WithRankingLimit(cfg.RankingLimit)),
		Pricing: pricing.NewService(repos.Prices, repos.Catalog, repos.Servers, prices),
	}, nil
}

// NewReloadNotifier returns the Discord notifier, or nil when no webhook is configured.
func NewReloadNotifier(cfg *config.Config) (catalog.ReloadNotifier, error) {
	if cfg.DiscordWebhookURL == "" {
		slog.Info(LogMsgNotifierDisabled)
		return nil, nil
	}
	d, err := notify.NewDiscord(cfg.DiscordWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotify, err)
	}
	slog.Info(LogMsgNotifierEnabled)
	return d, nil
}
