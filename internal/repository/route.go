package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"route-service-fleetsync/internal/apperr"
	"route-service-fleetsync/internal/domain"
)

const routeColumns = `id, driver_id, vehicle_id, start_location, end_location, status,
	start_time, end_time, notes, version, created_at, updated_at`

// RouteRepo stores routes in Postgres.
type RouteRepo struct{ db *pgxpool.Pool }

// NewRouteRepo creates a new RouteRepo.
func NewRouteRepo(db *pgxpool.Pool) *RouteRepo { return &RouteRepo{db: db} }

func scanRoute(row pgx.Row) (*domain.Route, error) {
	var r domain.Route
	err := row.Scan(
		&r.ID, &r.DriverID, &r.VehicleID, &r.StartLocation, &r.EndLocation, &r.Status,
		&r.StartTime, &r.EndTime, &r.Notes, &r.Version, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a route and fills its id, version and timestamps.
func (r *RouteRepo) Create(ctx context.Context, rt *domain.Route) error {
	status := rt.Status
	if status == "" {
		status = domain.RouteScheduled
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO routes (driver_id, vehicle_id, start_location, end_location, status, start_time, end_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, version, created_at, updated_at`,
		rt.DriverID, rt.VehicleID, rt.StartLocation, rt.EndLocation, status, rt.StartTime, rt.EndTime, rt.Notes,
	).Scan(&rt.ID, &rt.Status, &rt.Version, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create route: %w", err)
	}
	return nil
}

// Get returns a route by id, or nil when it does not exist.
func (r *RouteRepo) Get(ctx context.Context, id int64) (*domain.Route, error) {
	rt, err := scanRoute(r.db.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}
	return rt, nil
}

// ListByStatuses returns routes ordered by id. An empty set returns every route.
func (r *RouteRepo) ListByStatuses(ctx context.Context, statuses []domain.RouteStatus) ([]domain.Route, error) {
	q := `SELECT ` + routeColumns + ` FROM routes`
	args := make([]any, 0, 1)
	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, string(s))
		}
		q += ` WHERE status = ANY($1)`
		args = append(args, names)
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		out = append(out, *rt)
	}
	return out, rows.Err()
}

// Update applies u and bumps the route version. It returns nil when the
// route does not exist and apperr.ErrStale when u.Version no longer matches.
func (r *RouteRepo) Update(ctx context.Context, u domain.RouteUpdate) (*domain.Route, error) {
	var status *string
	if u.Status != nil {
		s := string(*u.Status)
		status = &s
	}
	rt, err := scanRoute(r.db.QueryRow(ctx, `
		UPDATE routes
		SET
			start_location = COALESCE($3, start_location),
			end_location   = COALESCE($4, end_location),
			start_time     = COALESCE($5, start_time),
			notes          = CASE WHEN $9::boolean THEN NULL ELSE COALESCE($6, notes) END,
			status         = COALESCE($7::text, status),
			end_time       = CASE WHEN $7::text IS NULL THEN end_time ELSE $8 END,
			version        = version + 1,
			updated_at     = now()
		WHERE id = $1 AND ($2::bigint = 0 OR version = $2::bigint)
		RETURNING `+routeColumns,
		u.ID, u.Version, u.StartLocation, u.EndLocation, u.StartTime, u.Notes, status, u.EndTime, u.ClearNotes,
	))
	if err == nil {
		return rt, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("update route %d: %w", u.ID, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM routes WHERE id = $1)`, u.ID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check route %d: %w", u.ID, err)
	}
	if exists {
		return nil, apperr.ErrStale
	}
	return nil, nil
}

// Delete removes a route and reports whether a row was deleted.
func (r *RouteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete route %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
