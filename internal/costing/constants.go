package costing

// Operation names used as metric labels
const (
	OpCraftCost     = "craft_cost"
	OpOptimalCost   = "optimal_cost"
	OpSummary       = "summary"
	OpBreakdown     = "breakdown"
	OpProfitability = "profitability"
	OpRanking       = "ranking"
	OpAnalysis      = "analysis"
)

// Ranking defaults
const (
	DefaultRankingLimit   = 50
	DefaultRankingWorkers = 8
)

// Log messages
const (
	LogMsgResolved        = "Cost resolved"
	LogMsgRankingComplete = "Profitability ranking complete"
)

// Error message formats
const (
	ErrMsgGetServerFmt   = "failed to get server %d: %w"
	ErrMsgGetItemFmt     = "failed to get item %d: %w"
	ErrMsgGetRecipeFmt   = "failed to get recipe for item %d: %w"
	ErrMsgGetPriceFmt    = "failed to get price for item %d: %w"
	ErrMsgListRecipesFmt = "failed to list recipes: %w"
	ErrMsgEvaluateFmt    = "failed to evaluate recipe %d: %w"
	ErrMsgSnapshotFmt    = "failed to load price snapshot for server %d: %w"
)
