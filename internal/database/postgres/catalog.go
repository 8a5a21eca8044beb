package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

const itemColumns = `item_id, external_id, name, item_type, category, level, image_url, updated_at`

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{pool: pool}
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item       domain.Item
		externalID pgtype.Int4
		level      pgtype.Int4
	)
	if err := row.Scan(&item.ID, &externalID, &item.Name, &item.Type, &item.Category, &level, &item.ImageURL, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.ExternalID = ptrInt(externalID)
	item.Level = ptrInt(level)
	return &item, nil
}

// GetItemByID returns nil when the item does not exist
func (r *CatalogRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListItems returns every item ordered by ID
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// UpsertItem inserts or updates an item matched on its external ID
func (r *CatalogRepository) UpsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO items (external_id, name, item_type, category, level, image_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			item_type = EXCLUDED.item_type,
			category = EXCLUDED.category,
			level = EXCLUDED.level,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
		RETURNING item_id`,
		intPtrToInt4(item.ExternalID), item.Name, item.Type, item.Category, intPtrToInt4(item.Level), item.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToUpsertItem, err)
	}
	item.ID = id
	return id, nil
}

// ListRecipes loads recipes and their ingredients in two queries
func (r *CatalogRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT recipe_id, item_id, quantity_produced, profession, profession_level, created_at
		FROM recipes ORDER BY recipe_id`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListRecipes, err)
	}

	var recipes []domain.Recipe
	index := make(map[int]int)
	for rows.Next() {
		var (
			rec        domain.Recipe
			profession pgtype.Text
			level      pgtype.Int4
		)
		if err := rows.Scan(&rec.ID, &rec.ItemID, &rec.QuantityProduced, &profession, &level, &rec.CreatedAt); err != nil {
			rows.Close()
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		rec.Profession = textToPtr(profession)
		rec.ProfessionLevel = ptrInt(level)
		rec.Ingredients = []domain.Ingredient{}
		index[rec.ID] = len(recipes)
		recipes = append(recipes, rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListRecipes, err)
	}

	ingRows, err := r.pool.Query(ctx, `
		SELECT recipe_id, item_id, quantity
		FROM recipe_ingredients ORDER BY recipe_id, position`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListIngredients, err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var recipeID int
		var ing domain.Ingredient
		if err := ingRows.Scan(&recipeID, &ing.ItemID, &ing.Quantity); err != nil {
			return nil, wrapErr(ErrMsgFailedToScanRow, err)
		}
		if i, ok := index[recipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, ing)
		}
	}
	if err := ingRows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListIngredients, err)
	}
	return recipes, nil
}

// UpsertRecipe stores a recipe keyed by its produced item and replaces its ingredients
func (r *CatalogRepository) UpsertRecipe(ctx context.Context, recipe *domain.Recipe) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (item_id, quantity_produced, profession, profession_level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id) DO UPDATE SET
			quantity_produced = EXCLUDED.quantity_produced,
			profession = EXCLUDED.profession,
			profession_level = EXCLUDED.profession_level
		RETURNING recipe_id`,
		recipe.ItemID, recipe.QuantityProduced, ptrToText(recipe.Profession), intPtrToInt4(recipe.ProfessionLevel),
	).Scan(&id)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToUpsertRecipe, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id); err != nil {
		return 0, wrapErr(ErrMsgFailedToClearIngredients, err)
	}

	if len(recipe.Ingredients) > 0 {
		batch := &pgx.Batch{}
		for pos, ing := range recipe.Ingredients {
			batch.Queue(`INSERT INTO recipe_ingredients (recipe_id, item_id, quantity, position) VALUES ($1, $2, $3, $4)`,
				id, ing.ItemID, ing.Quantity, pos)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return 0, wrapErr(ErrMsgFailedToInsertIngredients, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	recipe.ID = id
	return id, nil
}
