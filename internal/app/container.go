package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcelpoint/internal/auth"
	"parcelpoint/internal/config"
	"parcelpoint/internal/http/handlers"
	"parcelpoint/internal/http/middleware/ratelimit"
	"parcelpoint/internal/http/pprofserver"
	"parcelpoint/internal/http/router"
	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
	"parcelpoint/internal/repository"
	pickupsvc "parcelpoint/internal/service/pickup"
	shipmentsvc "parcelpoint/internal/service/shipment"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
		newMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type shipmentServiceIn struct {
	dig.In
	Repo         *repository.ShipmentRepo
	Dispatcher   notify.Dispatcher
	Logger       logx.Logger
	AllocRetries prometheus.Counter `name:"tracking_allocation_retries_total"`
	Timeout      time.Duration
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewPickupRepo,
		repository.NewShipmentRepo,
		func() time.Duration { return 3 * time.Second },
		func(cfg *config.Config) *auth.Gate {
			return auth.NewGate(cfg.Admin.Password, cfg.Admin.SessionTTL)
		},
		newDispatcher,
		func(in shipmentServiceIn) *shipmentsvc.Service {
			return shipmentsvc.NewService(in.Repo, in.Dispatcher, in.Logger, in.AllocRetries, in.Timeout)
		},
		func(
			repo *repository.PickupRepo,
			shipments *shipmentsvc.Service,
			dispatcher notify.Dispatcher,
			logger logx.Logger,
			timeout time.Duration,
		) *pickupsvc.Service {
			return pickupsvc.NewService(repo, shipments, dispatcher, logger, timeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	routerProvider := func(
		logger logx.Logger,
		cfg *config.Config,
		base *handlers.Handlers,
		pickups *handlers.PickupHandler,
		shipments *handlers.ShipmentHandler,
		authH *handlers.AuthHandler,
		gate *auth.Gate,
		rl *ratelimit.Middleware,
	) http.Handler {
		return router.New(router.Deps{
			Logger:    logger,
			Base:      base,
			Pickups:   pickups,
			Shipments: shipments,
			Auth:      authH,
			Gate:      gate,
			RateLimit: rl,
			Pprof:     pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass},
		})
	}
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewPickupUsecase,
		handlers.NewPickupHandler,
		handlers.NewShipmentUsecase,
		handlers.NewShipmentHandler,
		func(logger logx.Logger, gate *auth.Gate, cfg *config.Config) *handlers.AuthHandler {
			return handlers.NewAuthHandler(logger, gate, cfg.Admin.SessionTTL)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}
