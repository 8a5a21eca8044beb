package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	attrsKey     ctxKey = "attrs"
)

// InitLogger installs a default slog logger writing to stdout.
func InitLogger(cfg Config) *slog.Logger {
	return InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs a default slog logger writing to w.
// The handler format and level come from cfg and every record carries the base attributes.
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetRequestID returns the request ID or an empty string.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// WithAttrs returns a context whose FromContext logger also carries attrs.
// Attributes accumulate across nested calls.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev, _ := ctx.Value(attrsKey).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey, merged)
}

// WithServer tags every record logged under ctx with the game server ID.
func WithServer(ctx context.Context, serverID int) context.Context {
	return WithAttrs(ctx, slog.Int(AttrKeyServerID, serverID))
}

// FromContext returns the default logger with the request_id and any WithAttrs attributes of ctx.
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		l = l.With(AttrKeyRequestID, id)
	}
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok && len(attrs) > 0 {
		args := make([]any, len(attrs))
		for i, a := range attrs {
			args[i] = a
		}
		l = l.With(args...)
	}
	return l
}
