package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"route-service-fleetsync/internal/logx"
	"route-service-fleetsync/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the application from a built container.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner that serves HTTP until the container context ends.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	var logger logx.Logger = logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

type runIn struct {
	dig.In
	Ctx       context.Context
	Server    *http.Server
	Pool      *pgxpool.Pool
	Logger    logx.Logger
	Pprof     *http.Server     `name:"pprof_server" optional:"true"`
	Publisher *kafka.Publisher `optional:"true"`
	Redis     *redis.Client    `optional:"true"`
}

func run(container *dig.Container) error {
	var runErr error
	err := container.Invoke(func(in runIn) {
		startServer("route-service", in.Server, in.Logger)
		if in.Pprof != nil {
			startServer("pprof", in.Pprof, in.Logger)
		}
		waitForShutdown(in.Ctx, in.Logger)
		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
		}
		closeResources(in)
		runErr = in.Ctx.Err()
	})
	if err != nil {
		return err
	}
	return runErr
}

func startServer(name string, server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info(name+" listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("%s listen error: %v", name, err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down route-service")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(in runIn) {
	if err := in.Publisher.Close(); err != nil {
		in.Logger.Warn("kafka producer close error", logx.Err(err))
	}
	if in.Redis != nil {
		if err := in.Redis.Close(); err != nil {
			in.Logger.Warn("redis close error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
}
