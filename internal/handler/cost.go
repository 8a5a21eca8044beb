package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// AnalyzeItemsRequest lists the items to analyse in one call
type AnalyzeItemsRequest struct {
	ItemIDs []int `json:"item_ids" validate:"required,min=1,max=200,dive,gt=0"`
}

// AnalyzeItemsResponse holds the analyses of every resolvable item
type AnalyzeItemsResponse struct {
	ServerID int               `json:"server_id"`
	Items    []domain.Analysis `json:"items"`
}

// serverAndItem reads both route IDs. If ok is false, the response has been written.
func serverAndItem(w http.ResponseWriter, r *http.Request) (serverID, itemID int, ok bool) {
	if serverID, ok = pathID(w, r, ParamServerID); !ok {
		return 0, 0, false
	}
	if itemID, ok = pathID(w, r, ParamItemID); !ok {
		return 0, 0, false
	}
	return serverID, itemID, true
}

// HandleGetCost returns the direct price, craft cost and optimal cost of an item
// @Summary Get item cost
// @Description Cheapest way to acquire one unit of an item on a server. Absent values are null.
// @Tags costing
// @Produce json
// @Param serverID path int true "Server ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.CostSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/items/{itemID}/cost [get]
func HandleGetCost(svc costing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, itemID, ok := serverAndItem(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summarize(r.Context(), itemID, serverID)
		if err != nil {
			respondServiceError(w, r, OpGetCost, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleGetBreakdown returns the explanation tree behind an item's optimal cost
// @Summary Get cost breakdown
// @Description Recursive tree of buy and craft decisions. Only crafted nodes list ingredients.
// @Tags costing
// @Produce json
// @Param serverID path int true "Server ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.CostBreakdown
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/items/{itemID}/breakdown [get]
func HandleGetBreakdown(svc costing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, itemID, ok := serverAndItem(w, r)
		if !ok {
			return
		}

		tree, err := svc.BuildCostBreakdown(r.Context(), itemID, serverID)
		if err != nil {
			respondServiceError(w, r, OpGetBreakdown, err)
			return
		}
		respondJSON(w, http.StatusOK, tree)
	}
}

// HandleGetAnalysis returns the buy-vs-craft summary of an item
// @Summary Analyze item
// @Tags costing
// @Produce json
// @Param serverID path int true "Server ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.Analysis
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/items/{itemID}/analysis [get]
func HandleGetAnalysis(svc costing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, itemID, ok := serverAndItem(w, r)
		if !ok {
			return
		}

		analysis, err := svc.AnalyzeItem(r.Context(), itemID, serverID)
		if err != nil {
			respondServiceError(w, r, OpGetAnalysis, err)
			return
		}
		respondJSON(w, http.StatusOK, analysis)
	}
}

// HandleAnalyzeItems analyses several items at once, skipping unavailable ones
// @Summary Analyze items
// @Tags costing
// @Accept json
// @Produce json
// @Param serverID path int true "Server ID"
// @Param request body AnalyzeItemsRequest true "Items to analyze"
// @Success 200 {object} AnalyzeItemsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/analysis [post]
func HandleAnalyzeItems(svc costing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, ok := pathID(w, r, ParamServerID)
		if !ok {
			return
		}

		var req AnalyzeItemsRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAnalyzeItems); err != nil {
			return
		}

		analyses, err := svc.AnalyzeItems(r.Context(), req.ItemIDs, serverID)
		if err != nil {
			respondServiceError(w, r, OpAnalyzeItems, err)
			return
		}
		if analyses == nil {
			analyses = []domain.Analysis{}
		}

		logger.FromContext(r.Context()).Debug("Items analyzed", "requested", len(req.ItemIDs), "resolved", len(analyses))
		respondJSON(w, http.StatusOK, AnalyzeItemsResponse{ServerID: serverID, Items: analyses})
	}
}
