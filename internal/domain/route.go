package domain

import "time"

// MaxLocationLen is the longest accepted location name, in characters.
const MaxLocationLen = 255

// Route is a trip between two locations assigned to one driver and one vehicle.
type Route struct {
	ID            int64
	DriverID      int64
	VehicleID     int64
	StartLocation string
	EndLocation   string
	Status        RouteStatus
	StartTime     time.Time
	EndTime       *time.Time
	Notes         *string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Driver and Vehicle are the collaborator records as last seen by the
	// operation that returned the route. They are never stored or cached.
	Driver  *Driver  `json:"-"`
	Vehicle *Vehicle `json:"-"`
}

// NewRoute carries the caller supplied fields of a route to be created.
type NewRoute struct {
	DriverID      int64
	VehicleID     int64
	StartLocation string
	EndLocation   string
	StartTime     time.Time
	Notes         *string
}

// PartialRouteUpdate carries optional descriptive fields to update.
// A nil field means “do not change” that attribute. ClearNotes removes the
// notes and wins over Notes. A non-zero Version must match the stored
// revision.
type PartialRouteUpdate struct {
	ID            int64
	Version       int64
	StartLocation *string
	EndLocation   *string
	StartTime     *time.Time
	Notes         *string
	ClearNotes    bool
}

// Empty reports whether no field is set.
func (u PartialRouteUpdate) Empty() bool {
	return u.StartLocation == nil && u.EndLocation == nil && u.StartTime == nil && u.Notes == nil && !u.ClearNotes
}

// RouteUpdate is the storage level write of a route.
// Version, when non-zero, must match the stored revision.
// EndTime is written only together with Status.
type RouteUpdate struct {
	ID            int64
	Version       int64
	StartLocation *string
	EndLocation   *string
	StartTime     *time.Time
	Notes         *string
	ClearNotes    bool
	Status        *RouteStatus
	EndTime       *time.Time
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID int64
	Role   string
}

// RoleDriver is the role of callers restricted to their own routes.
const RoleDriver = "DRIVER"

// Anonymous is the principal used when authentication is disabled.
var Anonymous = Principal{}

// CanView reports whether p may read route r.
func (p Principal) CanView(r *Route) bool {
	if p.Role != RoleDriver {
		return true
	}
	return r != nil && r.DriverID == p.UserID
}
