package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"

	LogMsgInvalidTrustedProxy = "Ignoring invalid trusted proxy entry"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRetryAfter     = "Retry-After"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Activity detector limits, per client IP and window
const (
	DetectorWindow       = 5 * time.Minute
	FailedAuthAlertCount = 5 // also the number of failures before auth is refused
	MaxRequestsPerWindow = 1000
	HighRateLogEveryNth  = 100
)

// HTTP server limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
	WriteTimeout        = 30 * time.Second
	IdleTimeout         = 2 * time.Minute
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
