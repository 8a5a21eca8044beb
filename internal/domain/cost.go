package domain

// Method is the acquisition channel chosen for an item
type Method string

const (
	MethodBuy         Method = "buy"
	MethodCraft       Method = "craft"
	MethodUnavailable Method = "unavailable"
)

// ChooseMethod picks the cheaper of a direct price and a craft cost.
// Either may be nil. Equal costs go to buy.
func ChooseMethod(direct, craft *int64) (Method, *int64) {
	switch {
	case direct != nil && craft != nil:
		if *craft < *direct {
			return MethodCraft, craft
		}
		return MethodBuy, direct
	case direct != nil:
		return MethodBuy, direct
	case craft != nil:
		return MethodCraft, craft
	default:
		return MethodUnavailable, nil
	}
}

// CostBreakdown is one node of the explanation tree for an optimal cost.
//
// Method is the node's tag: Ingredients is set only when Method is MethodCraft.
// Bought and unavailable nodes are leaves and carry no ingredients field. Quantity is zero on the root.
type CostBreakdown struct {
	ItemID      int              `json:"item_id"`
	ItemName    string           `json:"item_name"`
	Quantity    int              `json:"quantity,omitempty"`
	DirectPrice *int64           `json:"direct_price"`
	CraftCost   *int64           `json:"craft_cost"`
	UnitCost    *int64           `json:"unit_cost"`
	TotalCost   *int64           `json:"total_cost,omitempty"`
	Method      Method           `json:"method"`
	Ingredients []*CostBreakdown `json:"ingredients,omitempty"`
}

// IsCrafted reports whether the node expands into ingredients.
func (b *CostBreakdown) IsCrafted() bool {
	return b.Method == MethodCraft
}

// CostSummary is the scalar result of resolving one item
type CostSummary struct {
	ItemID      int    `json:"item_id"`
	ServerID    int    `json:"server_id"`
	DirectPrice *int64 `json:"direct_price"`
	CraftCost   *int64 `json:"craft_cost"`
	OptimalCost *int64 `json:"optimal_cost"`
	Method      Method `json:"method"`
}

// Profitability of one craft of a recipe.
// Cost is per craft action; Revenue covers every unit the craft produces.
type Profitability struct {
	RecipeID         int     `json:"recipe_id"`
	ItemID           int     `json:"item_id"`
	QuantityProduced int     `json:"quantity_produced"`
	Cost             int64   `json:"cost"`
	UnitPrice        int64   `json:"unit_price"`
	Revenue          int64   `json:"revenue"`
	Profit           int64   `json:"profit"`
	Margin           float64 `json:"profit_margin"`
}

// ProfitMargin returns profit as a percentage of cost, or 0 when cost is not positive.
func ProfitMargin(profit, cost int64) float64 {
	if cost <= 0 {
		return 0
	}
	return float64(profit) / float64(cost) * 100
}

// SortMetric selects the ranking order
type SortMetric string

const (
	SortByProfit  SortMetric = "profit"
	SortByMargin  SortMetric = "profit_margin"
	SortByRevenue SortMetric = "revenue"
	SortByCost    SortMetric = "cost" // ascending
)

// IsValid reports whether m names a known metric. The empty metric means profit.
func (m SortMetric) IsValid() bool {
	switch m {
	case "", SortByProfit, SortByMargin, SortByRevenue, SortByCost:
		return true
	}
	return false
}

// RankingFilter selects and orders recipes for batch profitability ranking
type RankingFilter struct {
	Profession string
	MinLevel   *int
	MaxLevel   *int
	SortBy     SortMetric
	Limit      int
}

// RankedRecipe is one row of a profitability ranking
type RankedRecipe struct {
	Recipe        *Recipe       `json:"recipe"`
	ItemName      string        `json:"item_name"`
	Profitability Profitability `json:"profitability"`
}

// Analysis summarises buy-vs-craft for a single item
type Analysis struct {
	ItemID      int            `json:"item_id"`
	ItemName    string         `json:"item_name"`
	ServerID    int            `json:"server_id"`
	DirectPrice *int64         `json:"direct_price"`
	CraftCost   *int64         `json:"craft_cost"`
	BestOption  Method         `json:"best_option"`
	Savings     int64          `json:"savings"`
	Breakdown   *CostBreakdown `json:"breakdown"`
}
