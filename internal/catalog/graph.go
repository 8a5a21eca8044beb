package catalog

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Graph is an immutable view of every item and recipe.
// Recipes are indexed by produced item and by recipe ID.
type Graph struct {
	items       map[int]*domain.Item
	byItem      map[int]*domain.Recipe
	byID        map[int]*domain.Recipe
	recipes     []*domain.Recipe
	professions []string
}

// NewGraph indexes items and recipes. When two recipes produce the same item the lower ID wins.
func NewGraph(items []domain.Item, recipes []domain.Recipe) *Graph {
	g := &Graph{
		items:  make(map[int]*domain.Item, len(items)),
		byItem: make(map[int]*domain.Recipe, len(recipes)),
		byID:   make(map[int]*domain.Recipe, len(recipes)),
	}
	for i := range items {
		g.items[items[i].ID] = &items[i]
	}

	fold := cases.Fold()
	seen := make(map[string]struct{})
	for i := range recipes {
		r := &recipes[i]
		g.byID[r.ID] = r
		if cur, ok := g.byItem[r.ItemID]; !ok || r.ID < cur.ID {
			g.byItem[r.ItemID] = r
		}
		g.recipes = append(g.recipes, r)

		if name := strings.TrimSpace(r.ProfessionName()); name != "" {
			key := fold.String(name)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				g.professions = append(g.professions, name)
			}
		}
	}
	slices.SortFunc(g.recipes, func(a, b *domain.Recipe) int { return a.ID - b.ID })
	slices.Sort(g.professions)
	return g
}

func (g *Graph) Item(_ context.Context, itemID int) (*domain.Item, error) {
	return g.items[itemID], nil
}

func (g *Graph) RecipeFor(_ context.Context, itemID int) (*domain.Recipe, error) {
	return g.byItem[itemID], nil
}

func (g *Graph) RecipeByID(_ context.Context, recipeID int) (*domain.Recipe, error) {
	return g.byID[recipeID], nil
}

// Recipes returns every recipe ordered by ID. The slice must not be modified.
func (g *Graph) Recipes(_ context.Context) ([]*domain.Recipe, error) {
	return g.recipes, nil
}

// Professions returns the distinct profession names in sorted order
func (g *Graph) Professions() []string {
	return g.professions
}

// Stats counts the indexed items and recipes
func (g *Graph) Stats() Stats {
	return Stats{Items: len(g.items), Recipes: len(g.recipes)}
}

// Stats summarises a loaded graph
type Stats struct {
	Items   int `json:"items"`
	Recipes int `json:"recipes"`
}
