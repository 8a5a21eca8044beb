package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func seedServer(t *testing.T, ctx context.Context, repo repository.Servers, slug string, active bool) int {
	t.Helper()
	id, err := repo.UpsertServer(ctx, &domain.Server{Name: slug, Slug: slug, Type: "classic", Language: "en", IsActive: active})
	require.NoError(t, err)
	return id
}

func TestCatalogRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(pool)

	ore := &domain.Item{ExternalID: intPtr(100), Name: "Iron Ore", Type: "resource", Level: intPtr(1)}
	ingot := &domain.Item{ExternalID: intPtr(101), Name: "Iron Ingot", Type: "resource", Level: intPtr(10)}
	_, err := repo.UpsertItem(ctx, ore)
	require.NoError(t, err)
	_, err = repo.UpsertItem(ctx, ingot)
	require.NoError(t, err)

	t.Run("UpsertItem updates by external id", func(t *testing.T) {
		renamed := &domain.Item{ExternalID: intPtr(100), Name: "Raw Iron Ore", Type: "resource"}
		id, err := repo.UpsertItem(ctx, renamed)
		require.NoError(t, err)
		assert.Equal(t, ore.ID, id)

		got, err := repo.GetItemByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Raw Iron Ore", got.Name)
		assert.Nil(t, got.Level)
	})

	t.Run("GetItemByID unknown returns nil", func(t *testing.T) {
		got, err := repo.GetItemByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpsertRecipe replaces ingredients in order", func(t *testing.T) {
		recipe := &domain.Recipe{
			ItemID:           ingot.ID,
			QuantityProduced: 1,
			Profession:       strPtr("Smith"),
			ProfessionLevel:  intPtr(10),
			Ingredients:      []domain.Ingredient{{ItemID: ore.ID, Quantity: 4}},
		}
		firstID, err := repo.UpsertRecipe(ctx, recipe)
		require.NoError(t, err)

		recipe.QuantityProduced = 2
		recipe.Ingredients = []domain.Ingredient{{ItemID: ore.ID, Quantity: 3}, {ItemID: ore.ID, Quantity: 1}}
		secondID, err := repo.UpsertRecipe(ctx, recipe)
		require.NoError(t, err)
		assert.Equal(t, firstID, secondID)

		recipes, err := repo.ListRecipes(ctx)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, 2, recipes[0].QuantityProduced)
		assert.Equal(t, "Smith", recipes[0].ProfessionName())
		assert.Equal(t, []domain.Ingredient{{ItemID: ore.ID, Quantity: 3}, {ItemID: ore.ID, Quantity: 1}}, recipes[0].Ingredients)
	})

	t.Run("UpsertRecipe with unknown ingredient is invalid input", func(t *testing.T) {
		_, err := repo.UpsertRecipe(ctx, &domain.Recipe{
			ItemID:           ore.ID,
			QuantityProduced: 1,
			Ingredients:      []domain.Ingredient{{ItemID: 424242, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestServerRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewServerRepository(pool)

	activeID := seedServer(t, ctx, repo, "draconiros", true)
	seedServer(t, ctx, repo, "legacy", false)

	got, err := repo.GetServer(ctx, activeID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsActive)

	missing, err := repo.GetServer(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	active, err := repo.ListActiveServers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "draconiros", active[0].Slug)
}

func TestPriceRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	servers := NewServerRepository(pool)
	catalog := NewCatalogRepository(pool)
	repo := NewPriceRepository(pool)

	serverA := seedServer(t, ctx, servers, "server-a", true)
	serverB := seedServer(t, ctx, servers, "server-b", true)
	itemID, err := catalog.UpsertItem(ctx, &domain.Item{ExternalID: intPtr(1), Name: "Leather Strap"})
	require.NoError(t, err)

	submit := func(serverID int, price int64, status domain.PriceStatus) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		require.NoError(t, tx.UpsertPrice(ctx, &domain.Price{ItemID: itemID, ServerID: serverID, Price: price, Status: status, SubmittedBy: strPtr("tester")}))
		require.NoError(t, tx.InsertPriceHistory(ctx, &domain.PriceHistory{ItemID: itemID, ServerID: serverID, Price: price}))
		require.NoError(t, tx.Commit(ctx))
	}

	submit(serverA, 30, domain.PriceStatusApproved)
	submit(serverA, 25, domain.PriceStatusApproved)
	submit(serverB, 90, domain.PriceStatusPendingReview)

	t.Run("current price is latest approved", func(t *testing.T) {
		p, err := repo.GetCurrentPrice(ctx, itemID, serverA)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, int64(25), p.Price)
		assert.Equal(t, "tester", *p.SubmittedBy)
	})

	t.Run("pending price is invisible", func(t *testing.T) {
		p, err := repo.GetCurrentPrice(ctx, itemID, serverB)
		require.NoError(t, err)
		assert.Nil(t, p)

		list, err := repo.ListCurrentPrices(ctx, serverB)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("history keeps every submission", func(t *testing.T) {
		history, err := repo.GetPriceHistory(ctx, itemID, serverA, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, int64(25), history[0].Price)
		assert.Equal(t, int64(30), history[1].Price)
	})

	t.Run("rolled back transaction leaves no trace", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.UpsertPrice(ctx, &domain.Price{ItemID: itemID, ServerID: serverA, Price: 1}))
		repository.SafeRollback(ctx, tx)

		p, err := repo.GetCurrentPrice(ctx, itemID, serverA)
		require.NoError(t, err)
		assert.Equal(t, int64(25), p.Price)
	})

	t.Run("unknown item is invalid input", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		err = tx.UpsertPrice(ctx, &domain.Price{ItemID: 777777, ServerID: serverA, Price: 5})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
