package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"restaurant-dashboard/internal/auth"
	"restaurant-dashboard/internal/config"
	"restaurant-dashboard/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	handler http.Handler
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Post("/api/login", h.HandleLogin)
	r.Post("/api/logout", h.HandleLogout)

	authMiddleware := &auth.AuthenticateMiddleware{Secret: conf.Secret}

	r.Group(func(r chi.Router) {

		r.Use(authMiddleware.Handle)
		r.Get("/api/orders", h.HandleGetOrders)
		r.Patch("/api/orders/{id}/status", h.HandleUpdateOrderStatus)
		r.Get("/api/dashboard", h.HandleGetDashboard)
		r.Get("/api/notifications", h.HandleGetNotifications)
		r.Delete("/api/notifications/{id}", h.HandleDeleteNotification)
		r.Delete("/api/notifications", h.HandleClearNotifications)
	})

	// The browser SPA is served from its own origin.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{conf.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return &Router{handler: c.Handler(r), address: conf.RunAddress}
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.handler)
	return err
}
