package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"route-service-fleetsync/internal/cache/routecache"
	"route-service-fleetsync/internal/config"
	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/gateway/party"
	"route-service-fleetsync/internal/http/handlers"
	"route-service-fleetsync/internal/http/middleware"
	"route-service-fleetsync/internal/http/middleware/ratelimit"
	"route-service-fleetsync/internal/http/router"
	"route-service-fleetsync/internal/logx"
	"route-service-fleetsync/internal/repository"
	"route-service-fleetsync/internal/service/route"
	"route-service-fleetsync/internal/transport/kafka"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
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
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
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
	if err := registerDomainServices(container); err != nil {
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
		config.Load,
		func(cfg *config.Config) logx.Logger { return NewLogger(cfg.LogLevel) },
		provideMetrics,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := ensureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

// ensureSchema is replaced in tests that run without a database.
var ensureSchema = repository.EnsureSchema

// optional redis client: nil when REDIS_ADDR is empty
func provideRedis(ctx context.Context, cfg *config.Config, logger logx.Logger) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	client, err := routecache.Connect(pingCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("route cache enabled", logx.String("addr", cfg.Redis.Addr))
	return client, nil
}

type routeCacheIn struct {
	dig.In
	Repo    *repository.RouteRepo
	Client  *redis.Client `optional:"true"`
	Config  *config.Config
	Logger  logx.Logger
	Lookups *prometheus.CounterVec `name:"route_cache_lookups_total"`
}

func newRouteCache(in routeCacheIn) *routecache.Repo {
	return routecache.New(in.Repo, in.Client, in.Config.Redis.TTL, in.Logger, in.Lookups)
}

type partiesIn struct {
	dig.In
	Config   *config.Config
	Logger   logx.Logger
	Requests *prometheus.CounterVec `name:"party_requests_total"`
	Retries  prometheus.Counter     `name:"gateway_retries_total"`
}

func retryConfig(p config.Parties) party.RetryConfig {
	return party.RetryConfig{MaxAttempts: p.MaxAttempts, BaseDelay: p.BaseDelay, MaxDelay: p.MaxDelay}
}

func newDriverGateway(in partiesIn) *party.RetryingGateway[domain.Driver] {
	p := in.Config.Parties
	client := party.NewDriverClient(party.Config{BaseURL: p.DriverURL, Timeout: p.Timeout}, in.Logger, in.Requests)
	return party.NewRetryingGateway[domain.Driver](client, in.Logger, in.Retries, retryConfig(p))
}

func newVehicleGateway(in partiesIn) *party.RetryingGateway[domain.Vehicle] {
	p := in.Config.Parties
	client := party.NewVehicleClient(party.Config{BaseURL: p.VehicleURL, Timeout: p.Timeout}, in.Logger, in.Requests)
	return party.NewRetryingGateway[domain.Vehicle](client, in.Logger, in.Retries, retryConfig(p))
}

type publisherIn struct {
	dig.In
	Config   *config.Config
	Logger   logx.Logger
	Failures prometheus.Counter `name:"route_event_publish_failures_total"`
}

func newPublisher(in publisherIn) (*kafka.Publisher, error) {
	return kafka.NewPublisher(in.Logger, in.Config.Kafka.Brokers, in.Config.Kafka.Topic, in.Failures)
}

type routeServiceIn struct {
	dig.In
	Config        *config.Config
	Logger        logx.Logger
	Repo          *routecache.Repo
	Drivers       *party.RetryingGateway[domain.Driver]
	Vehicles      *party.RetryingGateway[domain.Vehicle]
	Publisher     *kafka.Publisher       `optional:"true"`
	Compensations *prometheus.CounterVec `name:"route_compensations_total"`
}

func newRouteService(in routeServiceIn) *route.Service {
	opts := route.Options{
		OperationTimeout:          in.Config.Route.OperationTimeout,
		RevertDriverOnSyncFailure: in.Config.Route.RevertDriverOnSyncFailure,
		EnrichReads:               in.Config.Route.EnrichReads,
		Compensations:             in.Compensations,
	}
	if in.Publisher != nil {
		opts.Events = in.Publisher
	}
	return route.NewService(in.Repo, in.Drivers, in.Vehicles, in.Logger, opts)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewRouteRepo,
		provideRedis,
		newRouteCache,
		newDriverGateway,
		newVehicleGateway,
		newPublisher,
		newRouteService,
	)
}

type middlewaresIn struct {
	dig.In
	Config    *config.Config
	Logger    logx.Logger
	RateLimit *ratelimit.Middleware
}

func newMiddlewares(in middlewaresIn) router.Middlewares {
	mw := router.Middlewares{
		Observability: middleware.Observability(in.Logger),
		Auth:          middleware.Auth(in.Logger, in.Config.Auth.JWTSecret),
	}
	if in.Config.RateLimit.Enabled {
		mw.RateLimit = in.RateLimit.Handler()
	}
	return mw
}

func newRouteHandler(cfg *config.Config, logger logx.Logger, svc *route.Service) *handlers.RouteHandler {
	return handlers.NewRouteHandler(logger, handlers.NewRouteUsecase(svc), cfg.Route.DisplayOffset)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      45 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		newRouteHandler,
		newRateLimiter,
		newRateLimitMiddleware,
		newMiddlewares,
		newPprofServer,
		router.New,
		serverProvider,
	)
}
