package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
)

// RecipeGraph is read access to items and their recipes.
// Lookups return nil without error when nothing exists for the key.
type RecipeGraph interface {
	Item(ctx context.Context, itemID int) (*domain.Item, error)
	RecipeFor(ctx context.Context, itemID int) (*domain.Recipe, error)
	RecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error)
	Recipes(ctx context.Context) ([]*domain.Recipe, error)
}

// GraphSnapshotter is implemented by recipe graphs that can be replaced while the
// service runs. Each top-level call reads every lookup from one snapshot.
type GraphSnapshotter interface {
	GraphSnapshot() RecipeGraph
}

// PriceSource returns the current approved price of an item on a server, or nil.
type PriceSource interface {
	CurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error)
}

// Snapshotter is implemented by price sources that can load every current price
// of a server at once. Batch operations use it instead of per-item lookups.
type Snapshotter interface {
	Snapshot(ctx context.Context, serverID int) (PriceSource, error)
}

// ServerLookup resolves server identities. Returns nil without error for unknown IDs.
type ServerLookup interface {
	GetServer(ctx context.Context, serverID int) (*domain.Server, error)
}

// Service computes acquisition costs, breakdowns and profitability on one server at a time.
// Every call builds its own memo table; nothing is shared between calls.
type Service interface {
	ResolveCraftCost(ctx context.Context, itemID, serverID int) (int64, bool, error)
	OptimalCost(ctx context.Context, itemID, serverID int) (int64, bool, error)
	Summarize(ctx context.Context, itemID, serverID int) (*domain.CostSummary, error)
	BuildCostBreakdown(ctx context.Context, itemID, serverID int) (*domain.CostBreakdown, error)
	EvaluateProfitability(ctx context.Context, recipe *domain.Recipe, serverID int) (*domain.Profitability, error)
	RecipeProfitability(ctx context.Context, recipeID, serverID int) (*domain.Profitability, error)
	RankRecipes(ctx context.Context, serverID int, filter domain.RankingFilter) ([]domain.RankedRecipe, error)
	AnalyzeItem(ctx context.Context, itemID, serverID int) (*domain.Analysis, error)
	AnalyzeItems(ctx context.Context, itemIDs []int, serverID int) ([]domain.Analysis, error)
}

// Option configures the service
type Option func(*service)

// WithRankingWorkers bounds how many recipes are evaluated in parallel during ranking
func WithRankingWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithRankingLimit sets the maximum number of ranked recipes returned
func WithRankingLimit(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.limit = n
		}
	}
}

type service struct {
	graph   RecipeGraph
	prices  PriceSource
	servers ServerLookup
	workers int
	limit   int
}

// NewService creates a new cost resolution service
func NewService(graph RecipeGraph, prices PriceSource, servers ServerLookup, opts ...Option) Service {
	s := &service{
		graph:   graph,
		prices:  prices,
		servers: servers,
		workers: DefaultRankingWorkers,
		limit:   DefaultRankingLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// checkServer rejects unknown and inactive servers before any resolution starts.
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

// snapshotGraph returns the graph one top-level call reads from.
func (s *service) snapshotGraph() RecipeGraph {
	if snap, ok := s.graph.(GraphSnapshotter); ok {
		return snap.GraphSnapshot()
	}
	return s.graph
}

// begin validates the (item, server) pair and opens a fresh resolution on graph.
func (s *service) begin(ctx context.Context, graph RecipeGraph, itemID, serverID int) (*resolution, *domain.Item, error) {
	if err := s.checkServer(ctx, serverID); err != nil {
		return nil, nil, err
	}
	item, err := graph.Item(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetItemFmt, itemID, err)
	}
	if item == nil {
		return nil, nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return newResolution(ctx, serverID, graph, s.prices), item, nil
}

// ResolveCraftCost returns the cost of one craft of the item's recipe.
// ok is false when the item has no recipe or any ingredient cannot be sourced.
func (s *service) ResolveCraftCost(ctx context.Context, itemID, serverID int) (int64, bool, error) {
	start := time.Now()
	res, _, err := s.begin(ctx, s.snapshotGraph(), itemID, serverID)
	if err != nil {
		return 0, false, err
	}
	n, err := res.optimal(itemID)
	cost, ok := valueOf(nodeCraft(n))
	s.observe(ctx, res, OpCraftCost, itemID, start, ok, err)
	if err != nil {
		return 0, false, err
	}
	return cost, ok, nil
}

// OptimalCost returns min(direct price, craft cost), whichever exists.
func (s *service) OptimalCost(ctx context.Context, itemID, serverID int) (int64, bool, error) {
	start := time.Now()
	res, _, err := s.begin(ctx, s.snapshotGraph(), itemID, serverID)
	if err != nil {
		return 0, false, err
	}
	n, err := res.optimal(itemID)
	cost, ok := valueOf(nodeCost(n))
	s.observe(ctx, res, OpOptimalCost, itemID, start, ok, err)
	if err != nil {
		return 0, false, err
	}
	return cost, ok, nil
}

// Summarize returns the direct price, craft cost, optimal cost and chosen method together.
func (s *service) Summarize(ctx context.Context, itemID, serverID int) (*domain.CostSummary, error) {
	start := time.Now()
	res, _, err := s.begin(ctx, s.snapshotGraph(), itemID, serverID)
	if err != nil {
		return nil, err
	}
	n, err := res.optimal(itemID)
	s.observe(ctx, res, OpSummary, itemID, start, nodeCost(n) != nil, err)
	if err != nil {
		return nil, err
	}
	return &domain.CostSummary{
		ItemID:      itemID,
		ServerID:    serverID,
		DirectPrice: n.direct,
		CraftCost:   n.craft,
		OptimalCost: n.cost,
		Method:      n.method,
	}, nil
}

func (s *service) observe(ctx context.Context, res *resolution, op string, itemID int, start time.Time, ok bool, err error) {
	outcome := metrics.OutcomeResolved
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case !ok:
		outcome = metrics.OutcomeUnresolved
	}
	metrics.ResolutionsTotal.WithLabelValues(op, outcome).Inc()
	metrics.ResolutionDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.ResolutionNodes.Observe(float64(len(res.memo)))

	logger.FromContext(ctx).Debug(LogMsgResolved,
		"operation", op,
		"item_id", itemID,
		"server_id", res.serverID,
		"outcome", outcome,
		"nodes", len(res.memo))
}

func valueOf(v *int64) (int64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
