package pricing

import (
	"context"
	"fmt"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// ItemLookup resolves items by ID. Returns nil without error for unknown IDs.
type ItemLookup interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
}

// ServerLookup resolves servers by ID. Returns nil without error for unknown IDs.
type ServerLookup interface {
	GetServer(ctx context.Context, serverID int) (*domain.Server, error)
}

// Invalidator drops cached prices after a write
type Invalidator interface {
	Invalidate(serverID, itemID int)
}

// Service defines the price read and write operations
type Service interface {
	SubmitPrice(ctx context.Context, itemID, serverID int, price int64, submittedBy string) (*domain.Price, error)
	SubmitPrices(ctx context.Context, serverID int, prices []domain.PriceSubmission, submittedBy string) ([]domain.Price, error)
	GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error)
	GetHistory(ctx context.Context, itemID, serverID, limit int) ([]domain.PriceHistory, error)
}

type service struct {
	repo    repository.Prices
	items   ItemLookup
	servers ServerLookup
	cache   Invalidator
}

// NewService creates a new pricing service. cache may be nil.
func NewService(repo repository.Prices, items ItemLookup, servers ServerLookup, cache Invalidator) Service {
	return &service{
		repo:    repo,
		items:   items,
		servers: servers,
		cache:   cache,
	}
}

// SubmitPrice records an approved price and appends it to the item's history
func (s *service) SubmitPrice(ctx context.Context, itemID, serverID int, price int64, submittedBy string) (*domain.Price, error) {
	saved, err := s.SubmitPrices(ctx, serverID, []domain.PriceSubmission{{ItemID: itemID, Price: price}}, submittedBy)
	if err != nil {
		return nil, err
	}
	return &saved[0], nil
}

// SubmitPrices writes every submission in a single transaction. Nothing is stored if one fails.
func (s *service) SubmitPrices(ctx context.Context, serverID int, prices []domain.PriceSubmission, submittedBy string) ([]domain.Price, error) {
	log := logger.FromContext(ctx)

	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyBatch)
	}
	for _, p := range prices {
		if !domain.ValidPrice(p.Price) {
			return nil, fmt.Errorf(ErrMsgInvalidPriceFmt, domain.ErrInvalidPrice, p.Price, domain.MinPrice, domain.MaxPrice)
		}
	}
	if err := s.checkServer(ctx, serverID); err != nil {
		return nil, err
	}
	for _, p := range prices {
		item, err := s.items.GetItemByID(ctx, p.ItemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetItemFmt, p.ItemID, err)
		}
		if item == nil {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, p.ItemID)
		}
	}

	var by *string
	if submittedBy != "" {
		by = &submittedBy
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFmt, err)
	}
	defer repository.SafeRollback(ctx, tx)

	saved := make([]domain.Price, 0, len(prices))
	for _, p := range prices {
		row := domain.Price{
			ItemID:      p.ItemID,
			ServerID:    serverID,
			Price:       p.Price,
			Status:      domain.PriceStatusApproved,
			SubmittedBy: by,
		}
		if err := tx.UpsertPrice(ctx, &row); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertPriceFmt, p.ItemID, err)
		}
		history := domain.PriceHistory{ItemID: p.ItemID, ServerID: serverID, Price: p.Price, SubmittedBy: by}
		if err := tx.InsertPriceHistory(ctx, &history); err != nil {
			return nil, fmt.Errorf(ErrMsgInsertHistoryFmt, p.ItemID, err)
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFmt, err)
	}

	if s.cache != nil {
		for _, p := range saved {
			s.cache.Invalidate(serverID, p.ItemID)
		}
	}
	metrics.PricesSubmitted.Add(float64(len(saved)))

	if len(saved) == 1 {
		log.Info(LogMsgPriceSubmitted, "item_id", saved[0].ItemID, "server_id", serverID, "price", saved[0].Price)
	} else {
		log.Info(LogMsgPricesSubmitted, "server_id", serverID, "count", len(saved))
	}
	return saved, nil
}

// GetCurrentPrice reads through to storage, bypassing the cache
func (s *service) GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error) {
	if err := s.checkServer(ctx, serverID); err != nil {
		return nil, err
	}
	price, err := s.repo.GetCurrentPrice(ctx, itemID, serverID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPriceFmt, itemID, serverID, err)
	}
	if !price.IsApproved() {
		return nil, nil
	}
	return price, nil
}

func (s *service) GetHistory(ctx context.Context, itemID, serverID, limit int) ([]domain.PriceHistory, error) {
	if err := s.checkServer(ctx, serverID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.GetPriceHistory(ctx, itemID, serverID, limit)
}

func (s *service) checkServer(ctx context.Context, serverID int) error {
	server, err := s.servers.GetServer(ctx, serverID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetServerFmt, serverID, err)
	}
	if server == nil {
		return fmt.Errorf("%w: %d", domain.ErrServerNotFound, serverID)
	}
	if !server.IsActive {
		return fmt.Errorf("%w: %d", domain.ErrServerInactive, serverID)
	}
	return nil
}
