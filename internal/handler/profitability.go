package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// ProfitabilityResponse wraps a recipe's profitability. Profitability is null when
// the item cannot be crafted or has no sale price.
type ProfitabilityResponse struct {
	RecipeID      int                   `json:"recipe_id"`
	ServerID      int                   `json:"server_id"`
	Profitability *domain.Profitability `json:"profitability"`
}

// RankingsResponse is a sorted, truncated profitability ranking
type RankingsResponse struct {
	ServerID   int                   `json:"server_id"`
	Profession string                `json:"profession"`
	SortBy     domain.SortMetric     `json:"sort_by"`
	Recipes    []domain.RankedRecipe `json:"recipes"`
}

// HandleGetProfitability evaluates one craft of a recipe
// @Summary Get recipe profitability
// @Tags profitability
// @Produce json
// @Param serverID path int true "Server ID"
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} ProfitabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/recipes/{recipeID}/profitability [get]
func HandleGetProfitability(svc costing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, ok := pathID(w, r, ParamServerID)
		if !ok {
			return
		}
		recipeID, ok := pathID(w, r, ParamRecipeID)
		if !ok {
			return
		}

		p, err := svc.RecipeProfitability(r.Context(), recipeID, serverID)
		if err != nil {
			respondServiceError(w, r, OpGetProfitability, err)
			return
		}
		respondJSON(w, http.StatusOK, ProfitabilityResponse{RecipeID: recipeID, ServerID: serverID, Profitability: p})
	}
}

// HandleGetRankings ranks the profitable recipes of a profession
// @Summary Rank recipes by profitability
// @Description Only recipes with a positive profit are listed. cost sorts ascending, every other metric descending.
// @Tags profitability
// @Produce json
// @Param serverID path int true "Server ID"
// @Param profession query string true "Profession"
// @Param min_level query int false "Minimum profession level"
// @Param max_level query int false "Maximum profession level"
// @Param sort_by query string false "profit, profit_margin, revenue or cost" default(profit)
// @Param limit query int false "Maximum rows (capped at 50)"
// @Success 200 {object} RankingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/rankings [get]
func HandleGetRankings(svc costing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, ok := pathID(w, r, ParamServerID)
		if !ok {
			return
		}
		minLevel, ok := optionalIntQuery(w, r, QueryMinLevel)
		if !ok {
			return
		}
		maxLevel, ok := optionalIntQuery(w, r, QueryMaxLevel)
		if !ok {
			return
		}
		limit, ok := optionalIntQuery(w, r, QueryLimit)
		if !ok {
			return
		}

		q := r.URL.Query()
		filter := domain.RankingFilter{
			Profession: q.Get(QueryProfession),
			MinLevel:   minLevel,
			MaxLevel:   maxLevel,
			SortBy:     domain.SortMetric(q.Get(QuerySortBy)),
		}
		if limit != nil {
			filter.Limit = *limit
		}

		ranked, err := svc.RankRecipes(r.Context(), serverID, filter)
		if err != nil {
			respondServiceError(w, r, OpGetRankings, err)
			return
		}
		if ranked == nil {
			ranked = []domain.RankedRecipe{}
		}

		sortBy := filter.SortBy
		if sortBy == "" {
			sortBy = domain.SortByProfit
		}
		respondJSON(w, http.StatusOK, RankingsResponse{
			ServerID:   serverID,
			Profession: filter.Profession,
			SortBy:     sortBy,
			Recipes:    ranked,
		})
	}
}
