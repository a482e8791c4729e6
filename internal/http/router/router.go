package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parcelpoint/internal/http/handlers"
	"parcelpoint/internal/http/middleware"
	"parcelpoint/internal/http/middleware/ratelimit"
	"parcelpoint/internal/http/pprofserver"
	"parcelpoint/internal/logx"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Pickups   *handlers.PickupHandler
	Shipments *handlers.ShipmentHandler
	Auth      *handlers.AuthHandler
	Gate      interface{ IsAdmin(string) bool }
	RateLimit *ratelimit.Middleware
	Pprof     pprofserver.Config
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observability(d.Logger))
	r.Use(chimw.Timeout(15 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Mount("/debug/pprof", pprofserver.Handler(d.Pprof))

	// public surface, rate limited
	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler)
		}
		r.Post("/api/pickup", d.Pickups.Submit)
		r.Post("/api/track", d.Shipments.Track)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", d.Auth.Login)
		r.Post("/logout", d.Auth.Logout)
		r.Get("/session", d.Auth.Session)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly(d.Logger, d.Gate))

			r.Post("/create-shipment", d.Shipments.Create)
			r.Post("/add-event", d.Shipments.AppendStatus)
			r.Get("/list-shipments", d.Shipments.List)

			r.Post("/convert-pickup", d.Pickups.Convert)
			r.Get("/list-pickups", d.Pickups.List)
			r.Post("/update-pickup-status", d.Pickups.UpdateStatus)
		})
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
