package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
)

// PriceReader is the read side of the price repository
type PriceReader interface {
	GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error)
	ListCurrentPrices(ctx context.Context, serverID int) ([]domain.Price, error)
}

// CachedSource serves current approved prices through an expiring LRU.
// It satisfies costing.PriceSource and costing.Snapshotter.
type CachedSource struct {
	repo  PriceReader
	cache *priceCache
}

// NewCachedSource creates a CachedSource holding at most size entries for ttl each.
func NewCachedSource(repo PriceReader, size int, ttl time.Duration) *CachedSource {
	return &CachedSource{
		repo:  repo,
		cache: newPriceCache(size, ttl),
	}
}

// CurrentPrice returns the approved price of an item on a server, or nil.
func (s *CachedSource) CurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error) {
	if price, ok := s.cache.Get(serverID, itemID); ok {
		metrics.PriceCacheHits.Inc()
		return price, nil
	}
	metrics.PriceCacheMisses.Inc()

	price, err := s.repo.GetCurrentPrice(ctx, itemID, serverID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPriceFmt, itemID, serverID, err)
	}
	if !price.IsApproved() {
		price = nil
	}
	s.cache.Set(serverID, itemID, price)
	return price, nil
}

// Snapshot loads every approved price of a server in one query.
func (s *CachedSource) Snapshot(ctx context.Context, serverID int) (costing.PriceSource, error) {
	prices, err := s.repo.ListCurrentPrices(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPricesFmt, serverID, err)
	}
	snap := newSnapshot(serverID, prices)
	logger.FromContext(ctx).Debug(LogMsgSnapshotLoaded, "server_id", serverID, "prices", len(snap.prices))
	return snap, nil
}

// Invalidate drops the cached entry for (server, item).
func (s *CachedSource) Invalidate(serverID, itemID int) {
	s.cache.Invalidate(serverID, itemID)
}

// Clear drops every cached entry.
func (s *CachedSource) Clear() {
	s.cache.Clear()
}

// snapshot is an immutable set of one server's current prices
type snapshot struct {
	serverID int
	prices   map[int]*domain.Price
}

func newSnapshot(serverID int, prices []domain.Price) *snapshot {
	snap := &snapshot{serverID: serverID, prices: make(map[int]*domain.Price, len(prices))}
	for i := range prices {
		p := &prices[i]
		if p.ServerID != serverID || !p.IsApproved() {
			continue
		}
		// Rows arrive newest first per item
		if cur, ok := snap.prices[p.ItemID]; ok && !p.UpdatedAt.After(cur.UpdatedAt) {
			continue
		}
		snap.prices[p.ItemID] = p
	}
	return snap
}

func (s *snapshot) CurrentPrice(_ context.Context, itemID, serverID int) (*domain.Price, error) {
	if serverID != s.serverID {
		return nil, nil
	}
	return s.prices[itemID], nil
}
