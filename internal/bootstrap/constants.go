package bootstrap

import "time"

// ApplicationName identifies this service's database sessions
const ApplicationName = "craft-market"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting CraftMarket"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// BackgroundWorkers is the number of workers serving scheduled jobs
	BackgroundWorkers = 2

	// BackgroundQueueSize bounds pending scheduled jobs
	BackgroundQueueSize = 16
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgSyncingSeed        = "Syncing catalog seed..."
	LogMsgSeedSynced         = "Catalog seed synced"
	LogMsgCatalogLoaded      = "Recipe catalog loaded"
	LogMsgNotifierDisabled   = "Discord webhook not configured, reload notifications disabled"
	LogMsgNotifierEnabled    = "Discord reload notifications enabled"
	LogMsgReloadScheduled    = "Catalog reload scheduled"
	LogMsgMigrationsSkipped  = "Migrations skipped by configuration"
	ErrMsgFailedLoadSeed     = "failed to load catalog seed"
	ErrMsgInvalidSeed        = "invalid catalog seed"
	ErrMsgFailedSyncSeed     = "failed to sync catalog seed to database"
	ErrMsgFailedLoadCatalog  = "failed to load recipe catalog"
	ErrMsgFailedMigrate      = "failed to run migrations"
	ErrMsgFailedCreateNotify = "failed to create discord notifier"
	ErrMsgFailedConnectDB    = "failed to connect to database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingBackground   = "Stopping background jobs..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 30 * time.Second
