package domain

// RouteStatus is the lifecycle state of a route.
type RouteStatus string

// List of route statuses
const (
	RouteScheduled  RouteStatus = "Scheduled"
	RouteInProgress RouteStatus = "InProgress"
	RouteCompleted  RouteStatus = "Completed"
	RouteCancelled  RouteStatus = "Cancelled"
)

var allowedRouteStatuses = [...]RouteStatus{
	RouteScheduled, RouteInProgress, RouteCompleted, RouteCancelled,
}

// transitions lists the targets reachable from each status. Re-applying the
// current status is allowed for non-terminal routes.
var transitions = map[RouteStatus][]RouteStatus{
	RouteScheduled:  {RouteScheduled, RouteInProgress, RouteCompleted, RouteCancelled},
	RouteInProgress: {RouteInProgress, RouteCompleted, RouteCancelled},
}

// Valid checks if the RouteStatus is one of the known values.
func (s RouteStatus) Valid() bool {
	for _, v := range allowedRouteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the route has finished.
func (s RouteStatus) Terminal() bool {
	return s == RouteCompleted || s == RouteCancelled
}

// Active reports whether the route is still scheduled or running.
func (s RouteStatus) Active() bool {
	return s == RouteScheduled || s == RouteInProgress
}

// ReleasesParties reports whether entering s frees the driver and vehicle.
func (s RouteStatus) ReleasesParties() bool {
	return s.Terminal()
}

// CanTransition reports whether a route in status s may move to next.
func (s RouteStatus) CanTransition(next RouteStatus) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// ActiveStatuses returns the statuses of routes that are not finished.
func ActiveStatuses() []RouteStatus {
	return []RouteStatus{RouteScheduled, RouteInProgress}
}
