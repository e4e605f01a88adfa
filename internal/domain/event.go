package domain

import "time"

// RouteEventType names a change to a route.
type RouteEventType string

// List of route event types
const (
	EventRouteCreated       RouteEventType = "route.created"
	EventRouteUpdated       RouteEventType = "route.updated"
	EventRouteStatusChanged RouteEventType = "route.status_changed"
	EventRouteDeleted       RouteEventType = "route.deleted"
)

// RouteEvent is emitted after a route change has been persisted.
type RouteEvent struct {
	Type       RouteEventType
	Route      Route
	OccurredAt time.Time
}
