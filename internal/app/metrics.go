package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"route-service-fleetsync/internal/metrics"
)

type metricsOut struct {
	dig.Out

	GatewayRetriesTotal       prometheus.Counter     `name:"gateway_retries_total"`
	PartyRequestsTotal        *prometheus.CounterVec `name:"party_requests_total"`
	RouteCompensationsTotal   *prometheus.CounterVec `name:"route_compensations_total"`
	RouteCacheLookupsTotal    *prometheus.CounterVec `name:"route_cache_lookups_total"`
	EventPublishFailuresTotal prometheus.Counter     `name:"route_event_publish_failures_total"`
	RateLimitExceededTotal    prometheus.Counter     `name:"rate_limit_exceeded_total"`
}

// provideMetrics registers the service collectors on the default registry.
// Collectors registered earlier are reused.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer
	var (
		out metricsOut
		err error
	)
	if out.GatewayRetriesTotal, err = metrics.Register(reg, metrics.NewGatewayRetriesTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register gateway_retries_total: %w", err)
	}
	if out.PartyRequestsTotal, err = metrics.Register(reg, metrics.NewPartyRequestsTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register party_requests_total: %w", err)
	}
	if out.RouteCompensationsTotal, err = metrics.Register(reg, metrics.NewRouteCompensationsTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register route_compensations_total: %w", err)
	}
	if out.RouteCacheLookupsTotal, err = metrics.Register(reg, metrics.NewRouteCacheLookupsTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register route_cache_lookups_total: %w", err)
	}
	if out.EventPublishFailuresTotal, err = metrics.Register(reg, metrics.NewEventPublishFailuresTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register route_event_publish_failures_total: %w", err)
	}
	if out.RateLimitExceededTotal, err = metrics.Register(reg, metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
	}
	return out, nil
}
