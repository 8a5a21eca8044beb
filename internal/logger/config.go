package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig is the fallback when nothing was configured
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev, false)
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns common attributes added to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
