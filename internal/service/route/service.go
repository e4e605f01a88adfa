package route

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"route-service-fleetsync/internal/apperr"
	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/logx"
)

const defaultOperationTimeout = 15 * time.Second

// Options tunes the route service. Events and Compensations may be nil.
type Options struct {
	OperationTimeout          time.Duration
	RevertDriverOnSyncFailure bool
	// EnrichReads attaches current driver and vehicle records to routes
	// returned by Get and by status changes that do not release them.
	EnrichReads   bool
	Events        eventPublisher
	Compensations counterVec
}

// Service coordinates route business logic, the driver and vehicle
// services, and the route store.
type Service struct {
	repo             routeRepository
	drivers          driverGateway
	vehicles         vehicleGateway
	events           eventPublisher
	compensations    counterVec
	logger           logx.Logger
	operationTimeout time.Duration
	revertDriver     bool
	enrichReads      bool
	now              func() time.Time
}

// NewService creates and configures a route Service.
func NewService(
	repo routeRepository,
	drivers driverGateway,
	vehicles vehicleGateway,
	logger logx.Logger,
	opts Options,
) *Service {
	if opts.OperationTimeout <= 0 {
		opts.OperationTimeout = defaultOperationTimeout
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		drivers:          drivers,
		vehicles:         vehicles,
		events:           opts.Events,
		compensations:    opts.Compensations,
		logger:           logger,
		operationTimeout: opts.OperationTimeout,
		revertDriver:     opts.RevertDriverOnSyncFailure,
		enrichReads:      opts.EnrichReads,
		now:              func() time.Time { return domain.WallClock(time.Now().UTC()) },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get returns a route the principal is allowed to see.
func (s *Service) Get(ctx context.Context, id int64, p domain.Principal) (*domain.Route, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRouteNotFound
	}
	if !p.CanView(r) {
		return nil, ErrForbidden
	}
	s.enrich(ctx, r)
	return r, nil
}

// getFresh reads the stored row, bypassing a read cache when the store has one.
func (s *Service) getFresh(ctx context.Context, id int64) (*domain.Route, error) {
	if f, ok := s.repo.(freshReader); ok {
		return f.GetFresh(ctx, id)
	}
	return s.repo.Get(ctx, id)
}

// List returns every route ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.Route, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByStatuses(ctx, nil)
}

// ListActive returns routes that are scheduled or in progress.
func (s *Service) ListActive(ctx context.Context) ([]domain.Route, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByStatuses(ctx, domain.ActiveStatuses())
}

// Update changes the descriptive fields of a route. Status is changed only
// through UpdateStatus.
func (s *Service) Update(ctx context.Context, u domain.PartialRouteUpdate) (*domain.Route, error) {
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.repo.Update(ctx, domain.RouteUpdate{
		ID:            u.ID,
		Version:       u.Version,
		StartLocation: u.StartLocation,
		EndLocation:   u.EndLocation,
		StartTime:     u.StartTime,
		Notes:         u.Notes,
		ClearNotes:    u.ClearNotes,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrStale) {
			return nil, apperr.Wrap(ErrStaleRoute, err)
		}
		return nil, err
	}
	if r == nil {
		return nil, ErrRouteNotFound
	}
	s.publish(ctx, domain.EventRouteUpdated, r)
	return r, nil
}

// Delete removes a route. Driver and vehicle records are left untouched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.getFresh(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return ErrRouteNotFound
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRouteNotFound
	}
	s.publish(ctx, domain.EventRouteDeleted, r)
	return nil
}

func (s *Service) publish(ctx context.Context, typ domain.RouteEventType, r *domain.Route) {
	if s.events == nil {
		return
	}
	ev := domain.RouteEvent{Type: typ, Route: *r, OccurredAt: time.Now().UTC()}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("route event not published",
			logx.String("event", string(typ)),
			logx.Int64("route_id", r.ID),
			logx.Err(err),
		)
	}
}

func validateLocation(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", invalid(field + " is required")
	}
	if utf8.RuneCountInString(v) > domain.MaxLocationLen {
		return "", invalid(fmt.Sprintf("%s must be at most %d characters", field, domain.MaxLocationLen))
	}
	return v, nil
}

func validateCreate(in *domain.NewRoute) error {
	if in.DriverID <= 0 {
		return invalid("driver_id is required")
	}
	if in.VehicleID <= 0 {
		return invalid("vehicle_id is required")
	}
	var err error
	if in.StartLocation, err = validateLocation("start_location", in.StartLocation); err != nil {
		return err
	}
	if in.EndLocation, err = validateLocation("end_location", in.EndLocation); err != nil {
		return err
	}
	if in.StartTime.IsZero() {
		return invalid("start_time is required")
	}
	return nil
}

func validateUpdate(u *domain.PartialRouteUpdate) error {
	if u.ID <= 0 {
		return invalid("invalid id")
	}
	if u.Empty() {
		return ErrNothingToUpdate
	}
	if u.StartLocation != nil {
		v, err := validateLocation("start_location", *u.StartLocation)
		if err != nil {
			return err
		}
		u.StartLocation = &v
	}
	if u.EndLocation != nil {
		v, err := validateLocation("end_location", *u.EndLocation)
		if err != nil {
			return err
		}
		u.EndLocation = &v
	}
	if u.StartTime != nil && u.StartTime.IsZero() {
		return invalid("start_time is required")
	}
	if u.ClearNotes {
		u.Notes = nil
	}
	return nil
}
