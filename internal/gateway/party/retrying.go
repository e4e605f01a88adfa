package party

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"route-service-fleetsync/internal/logx"
)

type gateway[T any] interface {
	GetByID(context.Context, int64) (*T, error)
	Update(context.Context, int64, T) error
}

type counter interface {
	Inc()
}

// RetryConfig describes how RetryingGateway retries.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries transient collaborator failures with capped exponential backoff.
type RetryingGateway[T any] struct {
	next    gateway[T]
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway wraps next. It returns nil when next is nil.
func NewRetryingGateway[T any](next gateway[T], logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway[T] {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingGateway[T]{next: next, logger: logger, retries: retries, cfg: cfg}
}

// GetByID fetches a record, retrying transient failures.
func (g *RetryingGateway[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out *T
	err := g.retry(ctx, "GetByID", id, func() error {
		var err error
		out, err = g.next.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces a record, retrying transient failures. Full-record PUTs are idempotent.
func (g *RetryingGateway[T]) Update(ctx context.Context, id int64, rec T) error {
	return g.retry(ctx, "Update", id, func() error {
		return g.next.Update(ctx, id, rec)
	})
}

func (g *RetryingGateway[T]) retry(ctx context.Context, method string, id int64, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err
		// stop on cancellation, the last attempt or a permanent error
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("party gateway retry",
			logx.String("method", method),
			logx.Int64("id", id),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable reports whether another attempt may succeed.
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// backoff returns the capped exponential delay before the next attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
