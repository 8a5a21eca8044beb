package server

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// AuthMiddleware guards price writes with an API key. An empty key leaves them open.
// A client that keeps failing is refused until the detector window rolls over.
func AuthMiddleware(apiKey string, proxies ProxyMatcher, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.clientIP(r)
			if blocked, retry := detector.AuthBlocked(ip); blocked {
				tooManyRequests(w, retry)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts requests and failed authentications per IP
// over a fixed window.
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
	window           time.Duration
	maxRequests      int
	maxFailedAuth    int
	now              func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		windowStart:      time.Now(),
		window:           DetectorWindow,
		maxRequests:      MaxRequestsPerWindow,
		maxFailedAuth:    FailedAuthAlertCount,
		now:              time.Now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] == s.maxFailedAuth {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", s.failedAuthByIP[ip])
	}
}

// AuthBlocked reports whether ip has used up its failed attempts, and how long until the window resets.
func (s *SuspiciousActivityDetector) AuthBlocked(ip string) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	if s.failedAuthByIP[ip] < s.maxFailedAuth {
		return false, 0
	}
	return true, s.remaining()
}

// RecordRequest records a request. Once the IP is over its budget it returns false
// and the time left in the window.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.requestCountByIP[ip]++

	count := s.requestCountByIP[ip]
	if count <= s.maxRequests {
		return true, 0
	}
	if count%HighRateLogEveryNth == 0 {
		slog.Warn(SecurityAlertHighRate,
			"ip", ip,
			"count_in_window", count)
	}
	return false, s.remaining()
}

// rollWindow clears the counters once the window has passed. Caller must hold the mutex.
func (s *SuspiciousActivityDetector) rollWindow() {
	if now := s.now(); now.Sub(s.windowStart) > s.window {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.windowStart = now
	}
}

func (s *SuspiciousActivityDetector) remaining() time.Duration {
	return max(s.window-s.now().Sub(s.windowStart), 0)
}

// RateLimitMiddleware rejects clients that exceed the detector's request budget
func RateLimitMiddleware(proxies ProxyMatcher, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ok, retry := detector.RecordRequest(proxies.clientIP(r)); !ok {
				tooManyRequests(w, retry)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// tooManyRequests writes a 429 with Retry-After rounded up to whole seconds
func tooManyRequests(w http.ResponseWriter, retry time.Duration) {
	secs := int(math.Ceil(retry.Seconds()))
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(secs, 1)))
	http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
