package costing

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// AnalyzeItem compares buying an item with crafting it and reports the saving of the better option.
func (s *service) AnalyzeItem(ctx context.Context, itemID, serverID int) (*domain.Analysis, error) {
	start := time.Now()
	res, item, err := s.begin(ctx, s.snapshotGraph(), itemID, serverID)
	if err != nil {
		return nil, err
	}

	a, err := res.analyze(item)
	s.observe(ctx, res, OpAnalysis, itemID, start, a != nil && a.BestOption != domain.MethodUnavailable, err)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// AnalyzeItems analyzes each item in its own resolution and drops unavailable or unknown items.
func (s *service) AnalyzeItems(ctx context.Context, itemIDs []int, serverID int) ([]domain.Analysis, error) {
	if err := s.checkServer(ctx, serverID); err != nil {
		return nil, err
	}

	out := make([]domain.Analysis, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		a, err := s.AnalyzeItem(ctx, itemID, serverID)
		if errors.Is(err, domain.ErrItemNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if a.BestOption == domain.MethodUnavailable {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *resolution) analyze(item *domain.Item) (*domain.Analysis, error) {
	tree, err := r.breakdown(item.ID)
	if err != nil {
		return nil, err
	}

	a := &domain.Analysis{
		ItemID:      item.ID,
		ItemName:    item.Name,
		ServerID:    r.serverID,
		DirectPrice: tree.DirectPrice,
		CraftCost:   tree.CraftCost,
		BestOption:  tree.Method,
		Breakdown:   tree,
	}
	if tree.DirectPrice != nil && tree.CraftCost != nil {
		a.Savings = *tree.DirectPrice - *tree.CraftCost
		if a.Savings < 0 {
			a.Savings = -a.Savings
		}
	}
	return a, nil
}
