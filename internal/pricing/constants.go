package pricing

// DefaultHistoryLimit bounds history queries without an explicit limit
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Log messages
const (
	LogMsgPriceSubmitted   = "Price submitted"
	LogMsgPricesSubmitted  = "Price batch submitted"
	LogMsgSnapshotLoaded   = "Price snapshot loaded"
	LogMsgCacheInvalidated = "Price cache invalidated"
)

// Error message formats
const (
	ErrMsgInvalidPriceFmt  = "%w: %d must be between %d and %d"
	ErrMsgGetPriceFmt      = "get price of item %d on server %d: %w"
	ErrMsgListPricesFmt    = "list prices on server %d: %w"
	ErrMsgGetServerFmt     = "get server %d: %w"
	ErrMsgGetItemFmt       = "get item %d: %w"
	ErrMsgBeginTxFmt       = "begin price transaction: %w"
	ErrMsgUpsertPriceFmt   = "upsert price of item %d: %w"
	ErrMsgInsertHistoryFmt = "insert history of item %d: %w"
	ErrMsgCommitFmt        = "commit prices: %w"
	ErrMsgEmptyBatch       = "no prices submitted"
)
