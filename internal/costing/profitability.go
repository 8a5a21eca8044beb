package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// EvaluateProfitability prices one craft of recipe against the sale price of its output.
// It returns nil when the recipe cannot be crafted or the output has no price.
func (s *service) EvaluateProfitability(ctx context.Context, recipe *domain.Recipe, serverID int) (*domain.Profitability, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: recipe is required", domain.ErrInvalidInput)
	}
	return s.evaluate(ctx, s.snapshotGraph(), recipe, serverID)
}

// RecipeProfitability looks the recipe up by ID and evaluates it against the same graph.
func (s *service) RecipeProfitability(ctx context.Context, recipeID, serverID int) (*domain.Profitability, error) {
	graph := s.snapshotGraph()
	recipe, err := graph.RecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", recipeID, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}
	return s.evaluate(ctx, graph, recipe, serverID)
}

func (s *service) evaluate(ctx context.Context, graph RecipeGraph, recipe *domain.Recipe, serverID int) (*domain.Profitability, error) {
	start := time.Now()
	res, _, err := s.begin(ctx, graph, recipe.ItemID, serverID)
	if err != nil {
		return nil, err
	}

	p, err := res.profitability(recipe)
	s.observe(ctx, res, OpProfitability, recipe.ItemID, start, p != nil, err)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// profitability uses the given recipe for the craft cost, not whatever the graph
// holds for the output item. Cost covers one craft; revenue covers every unit produced.
func (r *resolution) profitability(recipe *domain.Recipe) (*domain.Profitability, error) {
	if recipe.QuantityProduced < 1 {
		return nil, nil
	}

	r.visiting[recipe.ItemID] = len(r.visiting)
	craft, _, _, err := r.craftCost(recipe)
	delete(r.visiting, recipe.ItemID)
	if err != nil || craft == nil {
		return nil, err
	}

	unit, err := r.directPrice(recipe.ItemID)
	if err != nil || unit == nil {
		return nil, err
	}

	revenue := *unit * int64(recipe.QuantityProduced)
	profit := revenue - *craft
	return &domain.Profitability{
		RecipeID:         recipe.ID,
		ItemID:           recipe.ItemID,
		QuantityProduced: recipe.QuantityProduced,
		Cost:             *craft,
		UnitPrice:        *unit,
		Revenue:          revenue,
		Profit:           profit,
		Margin:           domain.ProfitMargin(profit, *craft),
	}, nil
}
