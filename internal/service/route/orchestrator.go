package route

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"route-service-fleetsync/internal/apperr"
	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/logx"
)

const compensationTimeout = 5 * time.Second

// Sync stages reported in logs and the compensation metric.
const (
	stageDriverUpdate  = "driver_update"
	stageVehicleUpdate = "vehicle_update"
)

// Create checks that the driver and the vehicle are available, stores a
// Scheduled route and marks both parties as taken. If marking fails the
// route is deleted again.
func (s *Service) Create(ctx context.Context, in domain.NewRoute) (*domain.Route, error) {
	if err := validateCreate(&in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	log := s.logger.With(logx.Int64("driver_id", in.DriverID), logx.Int64("vehicle_id", in.VehicleID))

	driver, err := s.drivers.GetByID(ctx, in.DriverID)
	if err != nil {
		log.Warn("driver lookup failed", logx.String("stage", "driver_lookup"), logx.Err(err))
		return nil, apperr.Wrap(ErrDriverNotFound, err)
	}
	if driver == nil || driver.ID == 0 {
		return nil, ErrDriverNotFound
	}
	if !driver.Available() {
		return nil, ErrDriverUnavailable
	}

	vehicle, err := s.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		log.Warn("vehicle lookup failed", logx.String("stage", "vehicle_lookup"), logx.Err(err))
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Wrap(ErrVehicleNotFound, err)
		}
		return nil, apperr.Wrap(ErrVehicleServiceUnavailable, err)
	}
	if vehicle == nil || vehicle.ID == 0 {
		return nil, ErrVehicleNotFound
	}
	if !vehicle.Available() {
		return nil, ErrVehicleUnavailable
	}

	r := &domain.Route{
		DriverID:      in.DriverID,
		VehicleID:     in.VehicleID,
		StartLocation: in.StartLocation,
		EndLocation:   in.EndLocation,
		Status:        domain.RouteScheduled,
		StartTime:     in.StartTime,
		Notes:         in.Notes,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	if err := s.assign(ctx, r, *driver, *vehicle); err != nil {
		return nil, err
	}

	log.Info("route created", logx.Int64("route_id", r.ID))
	s.publish(ctx, domain.EventRouteCreated, r)
	return r, nil
}

// assign marks the driver on duty and the vehicle in use, in that order.
func (s *Service) assign(ctx context.Context, r *domain.Route, driver domain.Driver, vehicle domain.Vehicle) error {
	onDuty := driver
	onDuty.Status = domain.DriverOnDuty
	assigned := strconv.FormatInt(vehicle.ID, 10)
	onDuty.AssignedVehicle = &assigned
	if err := s.drivers.Update(ctx, driver.ID, onDuty); err != nil {
		s.compensate(ctx, r, stageDriverUpdate, err, nil)
		return apperr.Wrap(ErrStatusSyncFailed, err)
	}

	inUse := vehicle
	inUse.Status = domain.VehicleInUse
	if err := s.vehicles.Update(ctx, vehicle.ID, inUse); err != nil {
		var revert *domain.Driver
		if s.revertDriver {
			revert = &driver
		}
		s.compensate(ctx, r, stageVehicleUpdate, err, revert)
		return apperr.Wrap(ErrStatusSyncFailed, err)
	}
	r.Driver, r.Vehicle = &onDuty, &inUse
	return nil
}

// compensate deletes a route whose parties could not be marked. It runs on
// a context detached from the caller so an aborted request cannot skip it.
func (s *Service) compensate(ctx context.Context, r *domain.Route, stage string, cause error, revert *domain.Driver) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	log := s.logger.With(
		logx.Int64("route_id", r.ID),
		logx.Int64("driver_id", r.DriverID),
		logx.Int64("vehicle_id", r.VehicleID),
		logx.String("stage", stage),
	)
	log.Error("route status sync failed, compensating", logx.Err(cause))

	if revert != nil {
		if err := s.drivers.Update(ctx, revert.ID, *revert); err != nil {
			log.Error("driver revert failed", logx.Err(err))
		}
	}

	outcome := "deleted"
	ok, err := s.repo.Delete(ctx, r.ID)
	switch {
	case err != nil:
		outcome = "failed"
		log.Error("route compensation failed", logx.Err(err))
	case !ok:
		outcome = "missing"
		log.Warn("route already gone during compensation")
	}
	if s.compensations != nil {
		s.compensations.WithLabelValues(stage, outcome).Inc()
	}
}

// UpdateStatus moves a route to status. Completing or cancelling a route
// first frees its driver and vehicle; any failure there leaves the route
// unchanged.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.RouteStatus) (*domain.Route, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.getFresh(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRouteNotFound
	}
	if !r.Status.CanTransition(status) {
		return nil, ErrInvalidTransition
	}

	var (
		driver  *domain.Driver
		vehicle *domain.Vehicle
	)
	if status.ReleasesParties() {
		if driver, vehicle, err = s.release(ctx, r); err != nil {
			return nil, err
		}
	}

	u := domain.RouteUpdate{ID: r.ID, Version: r.Version, Status: &status}
	if status == domain.RouteCompleted {
		now := s.now()
		u.EndTime = &now
	}
	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		if errors.Is(err, apperr.ErrStale) {
			return nil, apperr.Wrap(ErrStaleRoute, err)
		}
		return nil, err
	}
	if updated == nil {
		return nil, ErrRouteNotFound
	}
	if driver != nil {
		updated.Driver, updated.Vehicle = driver, vehicle
	} else {
		s.enrich(ctx, updated)
	}

	s.logger.Info("route status changed",
		logx.Int64("route_id", updated.ID),
		logx.String("from", string(r.Status)),
		logx.String("to", string(updated.Status)),
	)
	s.publish(ctx, domain.EventRouteStatusChanged, updated)
	return updated, nil
}

// release marks the route's driver and vehicle available again and returns
// the records as written.
func (s *Service) release(ctx context.Context, r *domain.Route) (*domain.Driver, *domain.Vehicle, error) {
	log := s.logger.With(
		logx.Int64("route_id", r.ID),
		logx.Int64("driver_id", r.DriverID),
		logx.Int64("vehicle_id", r.VehicleID),
	)

	driver, err := s.drivers.GetByID(ctx, r.DriverID)
	if err == nil && driver == nil {
		err = errors.New("empty driver record")
	}
	if err != nil {
		log.Error("release failed", logx.String("stage", "driver_fetch"), logx.Err(err))
		return nil, nil, apperr.Wrap(ErrDriverFetchFailed, err)
	}

	vehicle, err := s.vehicles.GetByID(ctx, r.VehicleID)
	if err == nil && vehicle == nil {
		err = errors.New("empty vehicle record")
	}
	if err != nil {
		log.Error("release failed", logx.String("stage", "vehicle_fetch"), logx.Err(err))
		return nil, nil, apperr.Wrap(ErrVehicleFetchFailed, err)
	}

	free := *driver
	free.Status = domain.DriverAvailable
	free.AssignedVehicle = nil
	if err := s.drivers.Update(ctx, r.DriverID, free); err != nil {
		log.Error("release failed", logx.String("stage", stageDriverUpdate), logx.Err(err))
		return nil, nil, apperr.Wrap(ErrDriverUpdateFailed, err)
	}

	idle := *vehicle
	idle.Status = domain.VehicleAvailable
	if err := s.vehicles.Update(ctx, r.VehicleID, idle); err != nil {
		log.Error("release failed", logx.String("stage", stageVehicleUpdate), logx.Err(err))
		return nil, nil, apperr.Wrap(ErrVehicleUpdateFailed, err)
	}
	return &free, &idle, nil
}

// enrich attaches the current driver and vehicle records when read
// enrichment is on. Lookup failures leave the field nil.
func (s *Service) enrich(ctx context.Context, r *domain.Route) {
	if !s.enrichReads || r == nil {
		return
	}
	if d, err := s.drivers.GetByID(ctx, r.DriverID); err == nil {
		r.Driver = d
	} else {
		s.logger.Debug("route driver enrichment failed", logx.Int64("route_id", r.ID), logx.Err(err))
	}
	if v, err := s.vehicles.GetByID(ctx, r.VehicleID); err == nil {
		r.Vehicle = v
	} else {
		s.logger.Debug("route vehicle enrichment failed", logx.Int64("route_id", r.ID), logx.Err(err))
	}
}
