package costing

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
)

// RankRecipes evaluates every recipe of a profession on one server and returns the
// profitable ones, best first. Recipes that cannot be priced or do not turn a profit
// are left out. Each recipe gets its own resolution; all of them read one graph snapshot.
func (s *service) RankRecipes(ctx context.Context, serverID int, filter domain.RankingFilter) ([]domain.RankedRecipe, error) {
	start := time.Now()
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	if err := s.checkServer(ctx, serverID); err != nil {
		return nil, err
	}

	graph := s.snapshotGraph()
	all, err := graph.Recipes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRecipesFmt, err)
	}
	selected := selectRecipes(all, filter)

	prices, err := s.snapshot(ctx, serverID)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.Profitability, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, recipe := range selected {
		g.Go(func() error {
			res := newResolution(gctx, serverID, graph, prices)
			p, err := res.profitability(recipe)
			if err != nil {
				return fmt.Errorf(ErrMsgEvaluateFmt, recipe.ID, err)
			}
			results[i] = p
			return nil
		})
	}
	err = g.Wait()
	metrics.RankedRecipes.Add(float64(len(selected)))
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues(OpRanking, metrics.OutcomeError).Inc()
		return nil, err
	}

	ranked := make([]domain.RankedRecipe, 0, len(results))
	for i, p := range results {
		if p == nil || p.Profit <= 0 {
			continue
		}
		item, err := graph.Item(ctx, p.ItemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetItemFmt, p.ItemID, err)
		}
		row := domain.RankedRecipe{Recipe: selected[i], Profitability: *p}
		if item != nil {
			row.ItemName = item.Name
		}
		ranked = append(ranked, row)
	}

	sortRanked(ranked, filter.SortBy)

	limit := s.limit
	if filter.Limit > 0 && filter.Limit < limit {
		limit = filter.Limit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	metrics.ResolutionsTotal.WithLabelValues(OpRanking, metrics.OutcomeResolved).Inc()
	metrics.ResolutionDuration.WithLabelValues(OpRanking).Observe(time.Since(start).Seconds())
	logger.FromContext(ctx).Info(LogMsgRankingComplete,
		"server_id", serverID,
		"profession", filter.Profession,
		"evaluated", len(selected),
		"returned", len(ranked),
		"duration", time.Since(start))

	return ranked, nil
}

func validateFilter(f domain.RankingFilter) error {
	if strings.TrimSpace(f.Profession) == "" {
		return domain.ErrProfessionRequired
	}
	if !f.SortBy.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortMetric, f.SortBy)
	}
	if f.MinLevel != nil && f.MaxLevel != nil && *f.MinLevel > *f.MaxLevel {
		return fmt.Errorf("%w: min %d > max %d", domain.ErrInvalidLevelRange, *f.MinLevel, *f.MaxLevel)
	}
	return nil
}

// selectRecipes keeps recipes of the filter profession, compared case-insensitively,
// inside the level range. A recipe without a level never matches a bounded range.
func selectRecipes(recipes []*domain.Recipe, f domain.RankingFilter) []*domain.Recipe {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(f.Profession))

	var out []*domain.Recipe
	for _, recipe := range recipes {
		if recipe.Profession == nil || fold.String(strings.TrimSpace(*recipe.Profession)) != want {
			continue
		}
		if f.MinLevel != nil && (recipe.ProfessionLevel == nil || *recipe.ProfessionLevel < *f.MinLevel) {
			continue
		}
		if f.MaxLevel != nil && (recipe.ProfessionLevel == nil || *recipe.ProfessionLevel > *f.MaxLevel) {
			continue
		}
		out = append(out, recipe)
	}
	return out
}

// sortRanked orders descending by the metric, or ascending for cost. Ties go to the lower recipe ID.
func sortRanked(rows []domain.RankedRecipe, metric domain.SortMetric) {
	key := func(a, b domain.Profitability) int {
		switch metric {
		case domain.SortByMargin:
			return cmp.Compare(b.Margin, a.Margin)
		case domain.SortByRevenue:
			return cmp.Compare(b.Revenue, a.Revenue)
		case domain.SortByCost:
			return cmp.Compare(a.Cost, b.Cost)
		default:
			return cmp.Compare(b.Profit, a.Profit)
		}
	}
	slices.SortStableFunc(rows, func(a, b domain.RankedRecipe) int {
		if c := key(a.Profitability, b.Profitability); c != 0 {
			return c
		}
		return cmp.Compare(a.Recipe.ID, b.Recipe.ID)
	})
}

// snapshot loads every current price of the server in one pass when the source supports it.
func (s *service) snapshot(ctx context.Context, serverID int) (PriceSource, error) {
	snap, ok := s.prices.(Snapshotter)
	if !ok {
		return s.prices, nil
	}
	prices, err := snap.Snapshot(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSnapshotFmt, serverID, err)
	}
	return prices, nil
}
