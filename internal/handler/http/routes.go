package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if len(h.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{authorizationHeader, traceIDHeader, updateResultHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// service routes
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())
	router.Get("/locations", h.locations)

	// auth
	router.With(h.loginLimiter()).Post("/login", h.login)
	if _, ok := h.services.Authenticator.(service.Revoker); ok {
		router.With(h.auth).Post("/logout", h.logout)
	}

	router.Route("/usuarios", func(r chi.Router) {
		r.Post("/", h.register)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.Route("/locais", func(r chi.Router) {
		r.Get("/", h.listPlaces)
		r.Post("/", h.createPlace)
		r.Get("/{id}", h.getPlace)
		r.Put("/{id}", h.updatePlace)
		r.Delete("/{id}", h.deletePlace)
	})

	router.Route("/favoritos", func(r chi.Router) {
		r.Post("/", h.addFavorite)
		r.Get("/{usuario_id}", h.listFavorites)
		r.Delete("/{usuario_id}/{local_id}", h.deleteFavorite)
	})

	return router
}

// loginLimiter throttles POST /login per client IP.
func (h *Handler) loginLimiter() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.loginRateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			h.metrics.rateLimited.WithLabelValues("/login").Inc()
			writeError(w, r, ErrTooManyRequests)
		}),
	)
}
