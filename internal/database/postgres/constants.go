package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced item or server is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetItem           = "failed to get item"
	ErrMsgFailedToListItems         = "failed to list items"
	ErrMsgFailedToUpsertItem        = "failed to upsert item"
	ErrMsgFailedToListRecipes       = "failed to list recipes"
	ErrMsgFailedToListIngredients   = "failed to list recipe ingredients"
	ErrMsgFailedToUpsertRecipe      = "failed to upsert recipe"
	ErrMsgFailedToClearIngredients  = "failed to clear recipe ingredients"
	ErrMsgFailedToInsertIngredients = "failed to insert recipe ingredients"
	ErrMsgFailedToScanRow           = "failed to scan row"
)

// Error Messages - Price Operations
const (
	ErrMsgFailedToGetPrice      = "failed to get current price"
	ErrMsgFailedToListPrices    = "failed to list current prices"
	ErrMsgFailedToUpsertPrice   = "failed to upsert price"
	ErrMsgFailedToInsertHistory = "failed to insert price history"
	ErrMsgFailedToGetHistory    = "failed to get price history"
)

// Error Messages - Server Operations
const (
	ErrMsgFailedToGetServer    = "failed to get server"
	ErrMsgFailedToListServers  = "failed to list servers"
	ErrMsgFailedToUpsertServer = "failed to upsert server"
)
