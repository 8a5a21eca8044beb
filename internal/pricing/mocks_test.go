package pricing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/repository"
)

type MockPriceRepo struct {
	mock.Mock
}

func (m *MockPriceRepo) GetCurrentPrice(ctx context.Context, itemID, serverID int) (*domain.Price, error) {
	args := m.Called(ctx, itemID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *MockPriceRepo) ListCurrentPrices(ctx context.Context, serverID int) ([]domain.Price, error) {
	args := m.Called(ctx, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Price), args.Error(1)
}

func (m *MockPriceRepo) GetPriceHistory(ctx context.Context, itemID, serverID, limit int) ([]domain.PriceHistory, error) {
	args := m.Called(ctx, itemID, serverID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceHistory), args.Error(1)
}

func (m *MockPriceRepo) BeginTx(ctx context.Context) (repository.PriceTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PriceTx), args.Error(1)
}

type MockPriceTx struct {
	mock.Mock
}

func (m *MockPriceTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPriceTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPriceTx) UpsertPrice(ctx context.Context, price *domain.Price) error {
	return m.Called(ctx, price).Error(0)
}

func (m *MockPriceTx) InsertPriceHistory(ctx context.Context, history *domain.PriceHistory) error {
	return m.Called(ctx, history).Error(0)
}

type fakeItems map[int]*domain.Item

func (f fakeItems) GetItemByID(_ context.Context, itemID int) (*domain.Item, error) {
	return f[itemID], nil
}

type fakeServers map[int]*domain.Server

func (f fakeServers) GetServer(_ context.Context, serverID int) (*domain.Server, error) {
	return f[serverID], nil
}

type recordingInvalidator struct {
	keys []priceKey
}

func (r *recordingInvalidator) Invalidate(serverID, itemID int) {
	r.keys = append(r.keys, priceKey{serverID: serverID, itemID: itemID})
}
