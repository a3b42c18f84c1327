// Package api serves the dictionary over a read-only JSON HTTP API.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/http/response"
	"github.com/slovar-dev/slovar/internal/logger"
	"github.com/slovar-dev/slovar/internal/ratelimit"
	"github.com/slovar-dev/slovar/internal/search"
)

// Options configures the HTTP surface.
type Options struct {
	Version     string
	CORSOrigins []string
	// TrustProxy rewrites the client address from X-Forwarded-For / X-Real-IP.
	// Leave off unless a reverse proxy in front sets those headers.
	TrustProxy bool
	// Limiter throttles requests per client IP. Nil disables rate limiting.
	Limiter *ratelimit.KeyedRateLimiter
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog *catalog.Catalog
	search  *search.SearchIndex
	limiter *ratelimit.KeyedRateLimiter
	router  *chi.Mux
	api     huma.API
	logger  *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// idx may be nil, in which case search requests fail and health reports degraded.
func NewServer(cat *catalog.Catalog, idx *search.SearchIndex, opts Options, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	s := &Server{
		catalog: cat,
		search:  idx,
		limiter: opts.Limiter,
		router:  chi.NewRouter(),
		logger:  log,
	}

	s.setupMiddleware(opts.CORSOrigins, opts.TrustProxy)

	humaConfig := huma.DefaultConfig("Slovar API", opts.Version)
	humaConfig.Info.Description = "Read-only reference dictionary of literary terms"
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, mainly for OpenAPI export.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(origins []string, trustProxy bool) {
	s.router.Use(middleware.RequestID)
	if trustProxy {
		s.router.Use(middleware.RealIP)
	}
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	}))
	if s.limiter != nil {
		s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route "+r.URL.Path+" not found", s.logger.Logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.Method+" is not allowed; the dictionary is read-only", s.logger.Logger)
	})
}

// registerRoutes configures all HTTP routes.
func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerTermRoutes()
	s.registerReferenceRoutes()
	s.registerSearchRoutes()
}

// requestLogger logs one line per request through the application logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error("HTTP request", attrs...)
			return
		}
		s.logger.Debug("HTTP request", attrs...)
	})
}

// retryAfterSeconds rounds a token refill interval up to whole seconds.
func retryAfterSeconds(rps float64) string {
	if rps <= 0 {
		return ""
	}
	secs := int(1/rps + 0.999)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
