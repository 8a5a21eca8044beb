package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
)

// Source lists the persisted catalog
type Source interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
}

// Catalog serves the current Graph and swaps it atomically on reload.
type Catalog struct {
	source Source
	graph  atomic.Pointer[Graph]
	loaded atomic.Bool
}

// New creates a Catalog with an empty graph
func New(source Source) *Catalog {
	c := &Catalog{source: source}
	c.graph.Store(NewGraph(nil, nil))
	return c
}

// Current returns the graph in use
func (c *Catalog) Current() *Graph {
	return c.graph.Load()
}

// GraphSnapshot pins the current graph for one cost resolution. Later reloads do not change it.
func (c *Catalog) GraphSnapshot() costing.RecipeGraph {
	return c.Current()
}

// Loaded reports whether at least one reload has succeeded
func (c *Catalog) Loaded() bool {
	return c.loaded.Load()
}

// Reload reads items and recipes from the source and replaces the graph.
// On failure the previous graph stays in place.
func (c *Catalog) Reload(ctx context.Context) (Stats, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	items, err := c.source.ListItems(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.ResultFailure).Inc()
		return Stats{}, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	recipes, err := c.source.ListRecipes(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.ResultFailure).Inc()
		return Stats{}, fmt.Errorf(ErrMsgListRecipesFailed, err)
	}

	g := NewGraph(items, recipes)
	for _, r := range g.recipes {
		for _, ing := range r.Ingredients {
			if g.items[ing.ItemID] == nil {
				log.Warn(LogMsgDanglingIngredient, "recipe_id", r.ID, "item_id", ing.ItemID)
			}
		}
	}
	c.graph.Store(g)
	c.loaded.Store(true)

	stats := g.Stats()
	metrics.CatalogReloads.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CatalogItems.Set(float64(stats.Items))
	metrics.CatalogRecipes.Set(float64(stats.Recipes))
	log.Info(LogMsgCatalogReloaded, "items", stats.Items, "recipes", stats.Recipes, "duration", time.Since(start))
	return stats, nil
}

func (c *Catalog) Item(ctx context.Context, itemID int) (*domain.Item, error) {
	return c.Current().Item(ctx, itemID)
}

func (c *Catalog) RecipeFor(ctx context.Context, itemID int) (*domain.Recipe, error) {
	return c.Current().RecipeFor(ctx, itemID)
}

func (c *Catalog) RecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	return c.Current().RecipeByID(ctx, recipeID)
}

func (c *Catalog) Recipes(ctx context.Context) ([]*domain.Recipe, error) {
	return c.Current().Recipes(ctx)
}

// Professions lists the professions of the current graph
func (c *Catalog) Professions() []string {
	return c.Current().Professions()
}
