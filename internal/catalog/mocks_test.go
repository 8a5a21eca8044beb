package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockSource) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

// memoryRepo stores seeded rows and hands out sequential IDs
type memoryRepo struct {
	items   map[int]*domain.Item
	recipes map[int]*domain.Recipe
	servers map[string]*domain.Server
	nextID  int
	failOn  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		items:   make(map[int]*domain.Item),
		recipes: make(map[int]*domain.Recipe),
		servers: make(map[string]*domain.Server),
		nextID:  1000,
	}
}

func (r *memoryRepo) id() int {
	r.nextID++
	return r.nextID
}

func (r *memoryRepo) GetItemByID(_ context.Context, itemID int) (*domain.Item, error) {
	for _, item := range r.items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListItems(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memoryRepo) ListRecipes(_ context.Context) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *memoryRepo) UpsertItem(_ context.Context, item *domain.Item) (int, error) {
	if existing, ok := r.items[*item.ExternalID]; ok {
		item.ID = existing.ID
	} else {
		item.ID = r.id()
	}
	r.items[*item.ExternalID] = item
	return item.ID, nil
}

func (r *memoryRepo) UpsertRecipe(_ context.Context, recipe *domain.Recipe) (int, error) {
	if r.failOn != 0 && recipe.ItemID == r.failOn {
		return 0, domain.ErrDatabaseError
	}
	if existing, ok := r.recipes[recipe.ItemID]; ok {
		recipe.ID = existing.ID
	} else {
		recipe.ID = r.id()
	}
	r.recipes[recipe.ItemID] = recipe
	return recipe.ID, nil
}

func (r *memoryRepo) GetServer(_ context.Context, serverID int) (*domain.Server, error) {
	for _, s := range r.servers {
		if s.ID == serverID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListActiveServers(_ context.Context) ([]domain.Server, error) {
	var out []domain.Server
	for _, s := range r.servers {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memoryRepo) UpsertServer(_ context.Context, server *domain.Server) (int, error) {
	if existing, ok := r.servers[server.Slug]; ok {
		server.ID = existing.ID
	} else {
		server.ID = r.id()
	}
	r.servers[server.Slug] = server
	return server.ID, nil
}

type recordingNotifier struct {
	events []ReloadEvent
	err    error
}

func (n *recordingNotifier) ReloadFinished(_ context.Context, event ReloadEvent) error {
	n.events = append(n.events, event)
	return n.err
}
