package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wfm-tools/wfmarket-data/internal/tool"
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string // CORS origins; empty disables CORS headers
}

// NewRouter builds the HTTP handler over a Tool.
func NewRouter(t *tool.Tool, logger *slog.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &handlers{tool: t, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.health)

	r.Route("/wfmarket", func(r chi.Router) {
		r.Get("/items/{item_name}/floor-prices", h.floorPrices)
		r.Get("/profile/{username}/orders", h.profileOrders)
		r.Get("/profile/{username}/check", h.verifyProfile)
	})

	return r
}
