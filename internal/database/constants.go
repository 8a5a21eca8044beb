package database

import "time"

// Pool sizing
const (
	// MinConnections is kept open even when MaxConns is configured lower
	MinConnections = 2
	PingTimeout    = 5 * time.Second
)

// Embedded goose migrations
const (
	MigrationsDir     = "migrations"
	MigrationsDialect = "postgres"
)

// MarketTables lists every table the migrations create, children first.
var MarketTables = []string{"price_histories", "item_prices", "recipe_ingredients", "recipes", "items", "servers"}

// Error Messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToRollback        = "failed to roll back migration"
	ErrMsgFailedToGetStatus       = "failed to get migration status"
)

// Log Messages
const (
	LogMsgConnected         = "Connected to market database"
	LogMsgMigrationsApplied = "Database migrations applied"
)
