package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"route-service-fleetsync/internal/http/handlers"
)

// requestTimeout bounds a whole request, including collaborator calls and
// compensation.
const requestTimeout = 30 * time.Second

// Middlewares are applied in order: Observability wraps every route, Auth
// then RateLimit guard /api only. Nil entries are skipped.
type Middlewares struct {
	Observability func(http.Handler) http.Handler
	Auth          func(http.Handler) http.Handler
	RateLimit     func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, routes *handlers.RouteHandler, mw Middlewares) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if mw.Observability != nil {
		r.Use(mw.Observability)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/routes", func(r chi.Router) {
		if mw.Auth != nil {
			r.Use(mw.Auth)
		}
		if mw.RateLimit != nil {
			r.Use(mw.RateLimit)
		}
		r.Get("/", routes.List)
		r.Post("/", routes.Create)
		r.Get("/active", routes.ListActive)
		r.Get("/{id}", routes.GetByID)
		r.Put("/{id}", routes.Update)
		r.Delete("/{id}", routes.Delete)
		r.Put("/{id}/status", routes.UpdateStatus)
		r.Post("/{id}/status", routes.UpdateStatus)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
