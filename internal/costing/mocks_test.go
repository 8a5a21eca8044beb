package costing

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

const (
	serverA = 1
	serverB = 2
)

// fakeCatalog is an in-memory RecipeGraph that counts recipe lookups per item.
type fakeCatalog struct {
	mu          sync.Mutex
	items       map[int]*domain.Item
	byItem      map[int]*domain.Recipe
	byID        map[int]*domain.Recipe
	recipeCalls map[int]int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		items:       make(map[int]*domain.Item),
		byItem:      make(map[int]*domain.Recipe),
		byID:        make(map[int]*domain.Recipe),
		recipeCalls: make(map[int]int),
	}
}

func (c *fakeCatalog) addItem(id int, name string) *fakeCatalog {
	c.items[id] = &domain.Item{ID: id, Name: name}
	return c
}

func (c *fakeCatalog) addRecipe(recipeID, itemID, produced int, ingredients ...domain.Ingredient) *domain.Recipe {
	r := &domain.Recipe{
		ID:               recipeID,
		ItemID:           itemID,
		QuantityProduced: produced,
		Ingredients:      ingredients,
	}
	c.byItem[itemID] = r
	c.byID[recipeID] = r
	return r
}

func ing(itemID, quantity int) domain.Ingredient {
	return domain.Ingredient{ItemID: itemID, Quantity: quantity}
}

func (c *fakeCatalog) Item(_ context.Context, itemID int) (*domain.Item, error) {
	return c.items[itemID], nil
}

func (c *fakeCatalog) RecipeFor(_ context.Context, itemID int) (*domain.Recipe, error) {
	c.mu.Lock()
	c.recipeCalls[itemID]++
	c.mu.Unlock()
	return c.byItem[itemID], nil
}

func (c *fakeCatalog) RecipeByID(_ context.Context, recipeID int) (*domain.Recipe, error) {
	return c.byID[recipeID], nil
}

func (c *fakeCatalog) Recipes(_ context.Context) ([]*domain.Recipe, error) {
	out := make([]*domain.Recipe, 0, len(c.byID))
	for _, r := range c.byID {
		out = append(out, r)
	}
	return out, nil
}

func (c *fakeCatalog) recipeLookups(itemID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipeCalls[itemID]
}

// reloadingCatalog replaces its live graph with next after the first recipe lookup,
// the way a background reload can land in the middle of a walk.
type reloadingCatalog struct {
	mu   sync.Mutex
	live *fakeCatalog
	next *fakeCatalog
}

func (c *reloadingCatalog) current() *fakeCatalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

func (c *reloadingCatalog) reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.live = c.next
}

func (c *reloadingCatalog) Item(ctx context.Context, itemID int) (*domain.Item, error) {
	return c.current().Item(ctx, itemID)
}

func (c *reloadingCatalog) RecipeFor(ctx context.Context, itemID int) (*domain.Recipe, error) {
	r, err := c.current().RecipeFor(ctx, itemID)
	c.reload()
	return r, err
}

func (c *reloadingCatalog) RecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	return c.current().RecipeByID(ctx, recipeID)
}

func (c *reloadingCatalog) Recipes(ctx context.Context) ([]*domain.Recipe, error) {
	return c.current().Recipes(ctx)
}

func (c *reloadingCatalog) GraphSnapshot() RecipeGraph {
	return pinnedGraph{fakeCatalog: c.current(), onLookup: c.reload}
}

// pinnedGraph reads one fakeCatalog but still triggers the reload on recipe lookups.
type pinnedGraph struct {
	*fakeCatalog
	onLookup func()
}

func (g pinnedGraph) RecipeFor(ctx context.Context, itemID int) (*domain.Recipe, error) {
	r, err := g.fakeCatalog.RecipeFor(ctx, itemID)
	g.onLookup()
	return r, err
}

type priceKey struct {
	serverID int
	itemID   int
}

// fakePrices is an in-memory PriceSource that counts lookups per (server, item).
type fakePrices struct {
	mu     sync.Mutex
	prices map[priceKey]*domain.Price
	calls  map[priceKey]int
}

func newFakePrices() *fakePrices {
	return &fakePrices{
		prices: make(map[priceKey]*domain.Price),
		calls:  make(map[priceKey]int),
	}
}

func (p *fakePrices) set(serverID, itemID int, price int64) *fakePrices {
	return p.setWithStatus(serverID, itemID, price, domain.PriceStatusApproved)
}

func (p *fakePrices) setWithStatus(serverID, itemID int, price int64, status domain.PriceStatus) *fakePrices {
	p.prices[priceKey{serverID, itemID}] = &domain.Price{
		ItemID:   itemID,
		ServerID: serverID,
		Price:    price,
		Status:   status,
	}
	return p
}

func (p *fakePrices) CurrentPrice(_ context.Context, itemID, serverID int) (*domain.Price, error) {
	key := priceKey{serverID, itemID}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[key]++
	return p.prices[key], nil
}

func (p *fakePrices) lookups(serverID, itemID int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[priceKey{serverID, itemID}]
}

// snapshotPrices adds Snapshotter support to fakePrices.
type snapshotPrices struct {
	*fakePrices
	snapshots int
	err       error
}

func (s *snapshotPrices) Snapshot(_ context.Context, _ int) (PriceSource, error) {
	s.snapshots++
	if s.err != nil {
		return nil, s.err
	}
	return s.fakePrices, nil
}

// fakeServers returns an active server for every configured ID.
type fakeServers map[int]*domain.Server

func activeServers(ids ...int) fakeServers {
	s := make(fakeServers, len(ids))
	for _, id := range ids {
		s[id] = &domain.Server{ID: id, Name: "server", IsActive: true}
	}
	return s
}

func (s fakeServers) GetServer(_ context.Context, serverID int) (*domain.Server, error) {
	return s[serverID], nil
}

// MockPriceSource is a testify mock for failure paths.
type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) CurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error) {
	args := m.Called(ctx, itemID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

// MockServerLookup is a testify mock for server lookups.
type MockServerLookup struct {
	mock.Mock
}

func (m *MockServerLookup) GetServer(ctx context.Context, serverID int) (*domain.Server, error) {
	args := m.Called(ctx, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Server), args.Error(1)
}

func newTestService(cat *fakeCatalog, prices PriceSource, opts ...Option) Service {
	return NewService(cat, prices, activeServers(serverA, serverB), opts...)
}

// swordCatalog:
//
//	1 Iron Sword    = 2x Iron Ingot + 1x Leather Strap
//	2 Iron Ingot    = 3x Iron Ore
//	3 Leather Strap (no recipe)
//	4 Iron Ore      (no recipe)
func swordCatalog() *fakeCatalog {
	cat := newFakeCatalog().
		addItem(1, "Iron Sword").
		addItem(2, "Iron Ingot").
		addItem(3, "Leather Strap").
		addItem(4, "Iron Ore")
	cat.addRecipe(10, 1, 1, ing(2, 2), ing(3, 1))
	cat.addRecipe(20, 2, 1, ing(4, 3))
	return cat
}
