package handler

// Generic HTTP error messages for client responses.
// Handlers and tests both reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParamFmt   = "Invalid %s"
	ErrMsgInvalidQueryParamFmt  = "Invalid %s query parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError      = "Something went wrong"
	ErrMsgUnknownError            = "Unknown error"
	ErrMsgInvalidRequestError     = "Invalid request. Please check your inputs."
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgRecipeNotFoundError     = "Recipe not found"
	ErrMsgServerNotFoundError     = "Server not found"
	ErrMsgServerInactiveError     = "Server is not active"
	ErrMsgProfessionRequiredError = "A profession is required"
	ErrMsgInvalidSortMetricError  = "sort_by must be one of profit, profit_margin, revenue, cost"
	ErrMsgInvalidLevelRangeError  = "min_level must not exceed max_level"
	ErrMsgInvalidPriceError       = "Price must be between 1 and 999999999"
)

// Operation names used in logs
const (
	OpGetCost          = "Get cost"
	OpGetBreakdown     = "Get breakdown"
	OpGetAnalysis      = "Get analysis"
	OpAnalyzeItems     = "Analyze items"
	OpGetProfitability = "Get profitability"
	OpGetRankings      = "Get rankings"
	OpGetPrice         = "Get price"
	OpGetPriceHistory  = "Get price history"
	OpSubmitPrices     = "Submit prices"
	OpListServers      = "List servers"
)

// Request parameter names
const (
	ParamServerID   = "serverID"
	ParamItemID     = "itemID"
	ParamRecipeID   = "recipeID"
	QueryProfession = "profession"
	QueryMinLevel   = "min_level"
	QueryMaxLevel   = "max_level"
	QuerySortBy     = "sort_by"
	QueryLimit      = "limit"
)
