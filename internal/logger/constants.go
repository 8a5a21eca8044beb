package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for records logged before configuration is loaded
const (
	DefaultServiceName = "craft-market"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyServerID    = "server_id"
)
