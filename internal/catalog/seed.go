package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

// ErrInvalidSeed is returned for seed files that fail validation
var ErrInvalidSeed = errors.New("invalid catalog seed")

// Seed is the YAML catalog description. Items and recipes reference each other
// by external game-data ID.
type Seed struct {
	Version string      `yaml:"version"`
	Servers []ServerDef `yaml:"servers"`
	Items   []ItemDef   `yaml:"items"`
	Recipes []RecipeDef `yaml:"recipes"`
}

// ServerDef is a market server entry
type ServerDef struct {
	Slug         string `yaml:"slug"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Language     string `yaml:"language"`
	Active       *bool  `yaml:"active"`
	DisplayOrder int    `yaml:"display_order"`
}

// ItemDef is a single item entry
type ItemDef struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	Level    *int   `yaml:"level"`
	ImageURL string `yaml:"image_url"`
}

// RecipeDef describes how an item is crafted
type RecipeDef struct {
	Item        int             `yaml:"item"`
	Quantity    int             `yaml:"quantity"`
	Profession  string          `yaml:"profession"`
	Level       *int            `yaml:"level"`
	Ingredients []IngredientDef `yaml:"ingredients"`
}

// IngredientDef is one ingredient edge
type IngredientDef struct {
	Item     int `yaml:"item"`
	Quantity int `yaml:"quantity"`
}

// SyncResult counts what a seed sync wrote
type SyncResult struct {
	Servers int
	Items   int
	Recipes int
}

// LoadSeed reads and parses a YAML seed file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFileFailed, err)
	}
	return ParseSeed(data)
}

// ParseSeed parses YAML seed content. A recipe without quantity produces one unit.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}
	for i := range seed.Recipes {
		if seed.Recipes[i].Quantity == 0 {
			seed.Recipes[i].Quantity = 1
		}
	}
	return &seed, nil
}

// Validate checks references and quantities. Cycles are allowed.
func (s *Seed) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgSeedNil)
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgNoItemsDefined)
	}

	slugs := make(map[string]bool, len(s.Servers))
	for i, srv := range s.Servers {
		if srv.Slug == "" {
			return fmt.Errorf(ErrFmtServerEmptySlug, ErrInvalidSeed, i)
		}
		if slugs[srv.Slug] {
			return fmt.Errorf(ErrFmtDuplicateServerSlug, ErrInvalidSeed, srv.Slug)
		}
		slugs[srv.Slug] = true
	}

	ids := make(map[int]bool, len(s.Items))
	for i, item := range s.Items {
		if item.ID == 0 {
			return fmt.Errorf(ErrFmtItemMissingID, ErrInvalidSeed, i)
		}
		if item.Name == "" {
			return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidSeed, item.ID)
		}
		if ids[item.ID] {
			return fmt.Errorf(ErrFmtDuplicateItemID, ErrInvalidSeed, item.ID)
		}
		ids[item.ID] = true
	}

	crafted := make(map[int]bool, len(s.Recipes))
	for i, r := range s.Recipes {
		if !ids[r.Item] {
			return fmt.Errorf(ErrFmtRecipeUnknownItem, ErrInvalidSeed, i, r.Item)
		}
		if crafted[r.Item] {
			return fmt.Errorf(ErrFmtDuplicateRecipe, ErrInvalidSeed, r.Item)
		}
		crafted[r.Item] = true
		if r.Quantity < 1 {
			return fmt.Errorf(ErrFmtRecipeBadQuantity, ErrInvalidSeed, r.Item, r.Quantity)
		}
		for _, ing := range r.Ingredients {
			if !ids[ing.Item] {
				return fmt.Errorf(ErrFmtIngredientUnknownItem, ErrInvalidSeed, r.Item, ing.Item)
			}
			if ing.Quantity < 1 {
				return fmt.Errorf(ErrFmtIngredientBadQuantity, ErrInvalidSeed, r.Item, ing.Quantity, ing.Item)
			}
		}
	}
	return nil
}

// Sync upserts servers, items and recipes. External IDs are mapped to stored IDs.
func (s *Seed) Sync(ctx context.Context, catalogRepo repository.Catalog, serverRepo repository.Servers) (*SyncResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	result := &SyncResult{}

	for _, def := range s.Servers {
		active := def.Active == nil || *def.Active
		server := &domain.Server{
			Name:         def.Name,
			Slug:         def.Slug,
			Type:         def.Type,
			Language:     def.Language,
			IsActive:     active,
			DisplayOrder: def.DisplayOrder,
		}
		if server.Name == "" {
			server.Name = def.Slug
		}
		if _, err := serverRepo.UpsertServer(ctx, server); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertServerFailed, def.Slug, err)
		}
		result.Servers++
	}

	stored := make(map[int]int, len(s.Items))
	for _, def := range s.Items {
		externalID := def.ID
		item := &domain.Item{
			ExternalID: &externalID,
			Name:       def.Name,
			Type:       def.Type,
			Category:   def.Category,
			Level:      def.Level,
			ImageURL:   def.ImageURL,
		}
		id, err := catalogRepo.UpsertItem(ctx, item)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, def.ID, err)
		}
		stored[def.ID] = id
		result.Items++
	}

	for _, def := range s.Recipes {
		recipe := &domain.Recipe{
			ItemID:           stored[def.Item],
			QuantityProduced: def.Quantity,
			ProfessionLevel:  def.Level,
			Ingredients:      make([]domain.Ingredient, 0, len(def.Ingredients)),
		}
		if def.Profession != "" {
			profession := def.Profession
			recipe.Profession = &profession
		}
		for _, ing := range def.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{ItemID: stored[ing.Item], Quantity: ing.Quantity})
		}
		if _, err := catalogRepo.UpsertRecipe(ctx, recipe); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertRecipeFailed, def.Item, err)
		}
		result.Recipes++
	}

	logger.FromContext(ctx).Info(LogMsgSeedSynced, "servers", result.Servers, "items", result.Items, "recipes", result.Recipes)
	return result, nil
}
