package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CraftMarket_Go/internal/costing"
	"github.com/osse101/CraftMarket_Go/internal/database"
	"github.com/osse101/CraftMarket_Go/internal/handler"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
)

// Catalog is the part of the recipe catalog the HTTP layer reads directly
type Catalog interface {
	handler.ReadyChecker
	handler.ProfessionLister
}

// Options configures the listener and access control
type Options struct {
	Port           int
	Version        string
	APIKey         string
	TrustedProxies []string
}

// Dependencies are the services the routes expose
type Dependencies struct {
	DB      database.Pool
	Catalog Catalog
	Servers handler.ServerLister
	Costing costing.Service
	Pricing pricing.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests.
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	proxies := NewProxyMatcher(opts.TrustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DB, deps.Catalog))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/professions", handler.HandleListProfessions(deps.Catalog))

		r.Route("/servers", func(r chi.Router) {
			r.Get("/", handler.HandleListServers(deps.Servers))

			r.Route("/{serverID}", func(r chi.Router) {
				r.Use(serverContext)

				r.Route("/items/{itemID}", func(r chi.Router) {
					r.Get("/cost", handler.HandleGetCost(deps.Costing))
					r.Get("/breakdown", handler.HandleGetBreakdown(deps.Costing))
					r.Get("/analysis", handler.HandleGetAnalysis(deps.Costing))
					r.Get("/price", handler.HandleGetPrice(deps.Pricing))
					r.Get("/price/history", handler.HandleGetPriceHistory(deps.Pricing))
				})

				r.Post("/analysis", handler.HandleAnalyzeItems(deps.Costing))
				r.Get("/recipes/{recipeID}/profitability", handler.HandleGetProfitability(deps.Costing))
				r.Get("/rankings", handler.HandleGetRankings(deps.Costing))

				r.With(AuthMiddleware(opts.APIKey, proxies, detector)).
					Post("/prices", handler.HandleSubmitPrices(deps.Pricing))
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// serverContext tags request logs with the server ID from the path
func serverContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, err := strconv.Atoi(chi.URLParam(r, handler.ParamServerID)); err == nil {
			r = r.WithContext(logger.WithServer(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
