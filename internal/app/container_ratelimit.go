package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"route-service-fleetsync/internal/config"
	"route-service-fleetsync/internal/http/middleware/ratelimit"
	"route-service-fleetsync/internal/http/pprofserver"
	"route-service-fleetsync/internal/logx"
)

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucket(ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	}, nil)
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

// newPprofServer yields a nil server when profiling is off.
func newPprofServer(cfg *config.Config) pprofOut {
	p := cfg.Pprof
	if !p.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: pprofserver.New(pprofserver.Config{Addr: p.Addr, User: p.User, Pass: p.Pass})}
}
