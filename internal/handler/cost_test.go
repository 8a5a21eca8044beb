package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func i64(v int64) *int64 { return &v }

func TestHandleGetCost(t *testing.T) {
	tests := []struct {
		name           string
		serverID       string
		itemID         string
		setupMock      func(*MockCostingService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name:     "Success",
			serverID: "1",
			itemID:   "10",
			setupMock: func(m *MockCostingService) {
				m.On("Summarize", mock.Anything, 10, 1).Return(&domain.CostSummary{
					ItemID: 10, ServerID: 1, DirectPrice: i64(30), CraftCost: i64(25), OptimalCost: i64(25), Method: domain.MethodCraft,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var got domain.CostSummary
				require.NoError(t, json.Unmarshal([]byte(body), &got))
				assert.Equal(t, domain.MethodCraft, got.Method)
				assert.Equal(t, int64(25), *got.OptimalCost)
			},
		},
		{
			name:     "Unavailable item has null costs",
			serverID: "1",
			itemID:   "11",
			setupMock: func(m *MockCostingService) {
				m.On("Summarize", mock.Anything, 11, 1).Return(&domain.CostSummary{ItemID: 11, ServerID: 1, Method: domain.MethodUnavailable}, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"optimal_cost":null`)
				assert.Contains(t, body, `"method":"unavailable"`)
			},
		},
		{
			name:     "Unknown item",
			serverID: "1",
			itemID:   "404",
			setupMock: func(m *MockCostingService) {
				m.On("Summarize", mock.Anything, 404, 1).Return(nil, fmt.Errorf("%w: 404", domain.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgItemNotFoundError)
			},
		},
		{
			name:     "Inactive server",
			serverID: "3",
			itemID:   "10",
			setupMock: func(m *MockCostingService) {
				m.On("Summarize", mock.Anything, 10, 3).Return(nil, domain.ErrServerInactive)
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Invalid item ID",
			serverID:       "1",
			itemID:         "abc",
			setupMock:      func(m *MockCostingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Invalid itemID")
			},
		},
		{
			name:           "Non positive server ID",
			serverID:       "0",
			itemID:         "10",
			setupMock:      func(m *MockCostingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:     "Storage error is hidden",
			serverID: "1",
			itemID:   "10",
			setupMock: func(m *MockCostingService) {
				m.On("Summarize", mock.Anything, 10, 1).Return(nil, fmt.Errorf("%w: connection reset", domain.ErrDatabaseError))
			},
			expectedStatus: http.StatusInternalServerError,
			verifyBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCostingService{}
			tt.setupMock(svc)

			req := withParams(httptest.NewRequest("GET", "/cost", nil), ParamServerID, tt.serverID, ParamItemID, tt.itemID)
			rec := httptest.NewRecorder()
			HandleGetCost(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetBreakdown(t *testing.T) {
	svc := &MockCostingService{}
	tree := &domain.CostBreakdown{
		ItemID: 1, ItemName: "Iron Sword", CraftCost: i64(25), UnitCost: i64(25), Method: domain.MethodCraft,
		Ingredients: []*domain.CostBreakdown{
			{ItemID: 2, ItemName: "Iron Ingot", Quantity: 2, DirectPrice: i64(10), UnitCost: i64(10), TotalCost: i64(20), Method: domain.MethodBuy},
		},
	}
	svc.On("BuildCostBreakdown", mock.Anything, 1, 2).Return(tree, nil)

	req := withParams(httptest.NewRequest("GET", "/breakdown", nil), ParamServerID, "2", ParamItemID, "1")
	rec := httptest.NewRecorder()
	HandleGetBreakdown(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.CostBreakdown
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "Iron Ingot", got.Ingredients[0].ItemName)
	assert.Nil(t, got.Ingredients[0].Ingredients)
}

func TestHandleGetAnalysis(t *testing.T) {
	svc := &MockCostingService{}
	svc.On("AnalyzeItem", mock.Anything, 1, 1).Return(&domain.Analysis{
		ItemID: 1, ServerID: 1, DirectPrice: i64(30), CraftCost: i64(25), BestOption: domain.MethodCraft, Savings: 5,
	}, nil)

	req := withParams(httptest.NewRequest("GET", "/analysis", nil), ParamServerID, "1", ParamItemID, "1")
	rec := httptest.NewRecorder()
	HandleGetAnalysis(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"savings":5`)
	assert.Contains(t, rec.Body.String(), `"best_option":"craft"`)
}

func TestHandleAnalyzeItems(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockCostingService{}
		svc.On("AnalyzeItems", mock.Anything, []int{1, 2}, 1).Return([]domain.Analysis{{ItemID: 1, BestOption: domain.MethodBuy}}, nil)

		body := strings.NewReader(`{"item_ids":[1,2]}`)
		req := withParams(httptest.NewRequest("POST", "/analysis", body), ParamServerID, "1")
		rec := httptest.NewRecorder()
		HandleAnalyzeItems(svc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got AnalyzeItemsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.Items, 1)
	})

	t.Run("Nothing resolvable returns empty list", func(t *testing.T) {
		svc := &MockCostingService{}
		svc.On("AnalyzeItems", mock.Anything, []int{9}, 1).Return(nil, nil)

		req := withParams(httptest.NewRequest("POST", "/analysis", strings.NewReader(`{"item_ids":[9]}`)), ParamServerID, "1")
		rec := httptest.NewRecorder()
		HandleAnalyzeItems(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"items":[]`)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty list", `{"item_ids":[]}`},
		{"negative id", `{"item_ids":[-1]}`},
		{"malformed json", `{"item_ids":`},
		{"unknown field", `{"items":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCostingService{}
			req := withParams(httptest.NewRequest("POST", "/analysis", strings.NewReader(tt.body)), ParamServerID, "1")
			rec := httptest.NewRecorder()
			HandleAnalyzeItems(svc)(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "AnalyzeItems", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
