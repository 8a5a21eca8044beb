package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, removes old session logs and installs the slog default.
// Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"price_cache_ttl", cfg.PriceCacheTTL,
		"catalog_reload_interval", cfg.CatalogReloadInterval)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs until keep remain.
// Session log names embed a sortable timestamp.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
