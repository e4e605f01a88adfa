package route

import "route-service-fleetsync/internal/apperr"

// Create failures.
var (
	ErrDriverNotFound            = apperr.New(apperr.ErrNotFound, "Driver not found")
	ErrDriverUnavailable         = apperr.New(apperr.ErrConflict, "Driver not available or not found")
	ErrVehicleNotFound           = apperr.New(apperr.ErrNotFound, "Vehicle not found")
	ErrVehicleServiceUnavailable = apperr.New(apperr.ErrUnavailable, "Vehicle service unavailable")
	ErrVehicleUnavailable        = apperr.New(apperr.ErrConflict, "Vehicle is not available")
	ErrStatusSyncFailed          = apperr.New(apperr.ErrUpstream, "Failed to update driver or vehicle status")
)

// Status transition failures.
var (
	ErrInvalidStatus       = apperr.New(apperr.ErrInvalid, "Invalid status")
	ErrInvalidTransition   = apperr.New(apperr.ErrInvalid, "Status transition not allowed")
	ErrDriverFetchFailed   = apperr.New(apperr.ErrUpstream, "Failed to fetch driver")
	ErrVehicleFetchFailed  = apperr.New(apperr.ErrUpstream, "Failed to fetch vehicle")
	ErrDriverUpdateFailed  = apperr.New(apperr.ErrUpstream, "Failed to update driver status")
	ErrVehicleUpdateFailed = apperr.New(apperr.ErrUpstream, "Failed to update vehicle status")
)

var (
	ErrRouteNotFound   = apperr.New(apperr.ErrNotFound, "Route not found")
	ErrForbidden       = apperr.New(apperr.ErrForbidden, "Unauthorized access")
	ErrStaleRoute      = apperr.New(apperr.ErrStale, "Route was modified concurrently, retry")
	ErrNothingToUpdate = apperr.New(apperr.ErrInvalid, "No fields to update")
)

func invalid(msg string) error {
	return apperr.New(apperr.ErrInvalid, msg)
}
