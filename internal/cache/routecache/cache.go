// Package routecache keeps recently read routes in Redis in front of the
// route store.
package routecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/logx"
)

const (
	keyPrefix  = "routes:route:"
	genPrefix  = "routes:gen:"
	defaultTTL = time.Minute
)

// Lookup results reported to the lookups counter.
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

type routeStore interface {
	Create(ctx context.Context, r *domain.Route) error
	Get(ctx context.Context, id int64) (*domain.Route, error)
	ListByStatuses(ctx context.Context, statuses []domain.RouteStatus) ([]domain.Route, error)
	Update(ctx context.Context, u domain.RouteUpdate) (*domain.Route, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repo is a read-through cache over a route store. Writes go to the store
// first and then drop the cached copy.
type Repo struct {
	next    routeStore
	client  *redis.Client
	ttl     time.Duration
	logger  logx.Logger
	lookups *prometheus.CounterVec
}

// New wraps next. A nil client disables caching.
func New(next routeStore, client *redis.Client, ttl time.Duration, logger logx.Logger, lookups *prometheus.CounterVec) *Repo {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Repo{next: next, client: client, ttl: ttl, logger: logger, lookups: lookups}
}

// Connect opens a Redis client and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

func genKey(id int64) string {
	return genPrefix + strconv.FormatInt(id, 10)
}

func (c *Repo) Create(ctx context.Context, r *domain.Route) error {
	return c.next.Create(ctx, r)
}

func (c *Repo) ListByStatuses(ctx context.Context, statuses []domain.RouteStatus) ([]domain.Route, error) {
	return c.next.ListByStatuses(ctx, statuses)
}

// Get serves a route from Redis, loading it from the store on a miss.
// Missing routes are not cached.
func (c *Repo) Get(ctx context.Context, id int64) (*domain.Route, error) {
	if c.client == nil {
		return c.next.Get(ctx, id)
	}

	data, err := c.client.Get(ctx, key(id)).Bytes()
	switch {
	case err == nil:
		var r domain.Route
		if uerr := json.Unmarshal(data, &r); uerr == nil {
			c.observe(resultHit)
			return &r, nil
		}
		c.observe(resultError)
		c.logger.Warn("route cache entry corrupt", logx.Int64("route_id", id))
	case errors.Is(err, redis.Nil):
		c.observe(resultMiss)
	default:
		c.observe(resultError)
		c.logger.Warn("route cache read failed", logx.Int64("route_id", id), logx.Err(err))
	}

	return c.load(ctx, id)
}

// GetFresh reads the route from the store without touching Redis. Callers
// that write back based on the row's version use it.
func (c *Repo) GetFresh(ctx context.Context, id int64) (*domain.Route, error) {
	return c.next.Get(ctx, id)
}

// load reads the route from the store and caches it. The cache write is a
// transaction watching the route's generation key, so a write that
// invalidated the route after the store read drops the fill instead of
// caching the older row.
func (c *Repo) load(ctx context.Context, id int64) (*domain.Route, error) {
	var (
		r       *domain.Route
		loadErr error
		loaded  bool
	)
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		loaded = true
		r, loadErr = c.next.Get(ctx, id)
		if loadErr != nil || r == nil {
			return nil
		}
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key(id), data, c.ttl)
			return nil
		})
		return err
	}, genKey(id))

	switch {
	case !loaded:
		c.logger.Warn("route cache write failed", logx.Int64("route_id", id), logx.Err(err))
		return c.next.Get(ctx, id)
	case errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("route cache fill skipped, route changed", logx.Int64("route_id", id))
	case err != nil:
		c.logger.Warn("route cache write failed", logx.Int64("route_id", id), logx.Err(err))
	}
	return r, loadErr
}

func (c *Repo) Update(ctx context.Context, u domain.RouteUpdate) (*domain.Route, error) {
	r, err := c.next.Update(ctx, u)
	c.invalidate(ctx, u.ID)
	return r, err
}

func (c *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := c.next.Delete(ctx, id)
	c.invalidate(ctx, id)
	return ok, err
}

// invalidate bumps the generation key, aborting in-flight fills, and drops
// the cached row.
func (c *Repo) invalidate(ctx context.Context, id int64) {
	if c.client == nil {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey(id))
		p.Expire(ctx, genKey(id), c.ttl)
		p.Del(ctx, key(id))
		return nil
	})
	if err != nil {
		c.logger.Warn("route cache invalidation failed", logx.Int64("route_id", id), logx.Err(err))
	}
}

func (c *Repo) observe(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}
