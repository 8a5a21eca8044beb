package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// withParams attaches chi route parameters to a request
func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type MockCostingService struct {
	mock.Mock
}

func (m *MockCostingService) ResolveCraftCost(ctx context.Context, itemID, serverID int) (int64, bool, error) {
	args := m.Called(ctx, itemID, serverID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockCostingService) OptimalCost(ctx context.Context, itemID, serverID int) (int64, bool, error) {
	args := m.Called(ctx, itemID, serverID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockCostingService) Summarize(ctx context.Context, itemID, serverID int) (*domain.CostSummary, error) {
	args := m.Called(ctx, itemID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostSummary), args.Error(1)
}

func (m *MockCostingService) BuildCostBreakdown(ctx context.Context, itemID, serverID int) (*domain.CostBreakdown, error) {
	args := m.Called(ctx, itemID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostBreakdown), args.Error(1)
}

func (m *MockCostingService) EvaluateProfitability(ctx context.Context, recipe *domain.Recipe, serverID int) (*domain.Profitability, error) {
	args := m.Called(ctx, recipe, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profitability), args.Error(1)
}

func (m *MockCostingService) RecipeProfitability(ctx context.Context, recipeID, serverID int) (*domain.Profitability, error) {
	args := m.Called(ctx, recipeID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profitability), args.Error(1)
}

func (m *MockCostingService) RankRecipes(ctx context.Context, serverID int, filter domain.RankingFilter) ([]domain.RankedRecipe, error) {
	args := m.Called(ctx, serverID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedRecipe), args.Error(1)
}

func (m *MockCostingService) AnalyzeItem(ctx context.Context, itemID, serverID int) (*domain.Analysis, error) {
	args := m.Called(ctx, itemID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *MockCostingService) AnalyzeItems(ctx context.Context, itemIDs []int, serverID int) ([]domain.Analysis, error) {
	args := m.Called(ctx, itemIDs, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Analysis), args.Error(1)
}

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) SubmitPrice(ctx context.Context, itemID, serverID int, price int64, submittedBy string) (*domain.Price, error) {
	args := m.Called(ctx, itemID, serverID, price, submittedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *MockPricingService) SubmitPrices(ctx context.Context, serverID int, prices []domain.PriceSubmission, submittedBy string) ([]domain.Price, error) {
	args := m.Called(ctx, serverID, prices, submittedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Price), args.Error(1)
}

func (m *MockPricingService) GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error) {
	args := m.Called(ctx, itemID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *MockPricingService) GetHistory(ctx context.Context, itemID, serverID, limit int) ([]domain.PriceHistory, error) {
	args := m.Called(ctx, itemID, serverID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceHistory), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type readyFlag bool

func (f readyFlag) Loaded() bool { return bool(f) }

type fakeServers struct {
	servers []domain.Server
	err     error
}

func (f fakeServers) ListActiveServers(_ context.Context) ([]domain.Server, error) {
	return f.servers, f.err
}

type fakeProfessions []string

func (f fakeProfessions) Professions() []string { return f }
