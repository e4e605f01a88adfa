package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewPartyRequestsTotal counts driver/vehicle service calls by party, method and outcome.
func NewPartyRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "party_requests_total",
		Help: "Total number of requests sent to the driver and vehicle services",
	}, []string{"party", "method", "outcome"})
}

// NewRouteCompensationsTotal counts route deletions made to undo a failed create, by stage.
func NewRouteCompensationsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_compensations_total",
		Help: "Total number of compensating route deletions after a failed status sync",
	}, []string{"stage", "outcome"})
}

// NewEventPublishFailuresTotal returns a counter of route events that could not be published
func NewEventPublishFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_event_publish_failures_total",
		Help: "Total number of route events that failed to publish",
	})
}

// NewRouteCacheLookupsTotal counts route cache lookups by result (hit, miss, error).
func NewRouteCacheLookupsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_cache_lookups_total",
		Help: "Total number of route cache lookups",
	}, []string{"result"})
}

// NewRateLimitExceededTotal counts requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of requests rejected with 429 by the rate limiter",
	})
}

// Register registers c with reg. If an equal collector is already
// registered, the existing one is returned instead.
func Register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}
