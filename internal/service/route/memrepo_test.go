package route

import (
	"context"
	"sort"
	"sync"
	"time"

	"route-service-fleetsync/internal/apperr"
	"route-service-fleetsync/internal/domain"
)

// memRepo is an in-memory routeRepository with the same version semantics
// as the Postgres store. Every call fails once ctx is done.
type memRepo struct {
	mu        sync.Mutex
	seq       int64
	routes    map[int64]domain.Route
	deleteErr error
	deletes   int
}

func newMemRepo() *memRepo {
	return &memRepo{routes: map[int64]domain.Route{}}
}

func (m *memRepo) Create(ctx context.Context, r *domain.Route) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	r.ID = m.seq
	r.Version = 1
	r.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	m.routes[r.ID] = *r
	return nil
}

func (m *memRepo) Get(ctx context.Context, id int64) (*domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.routes[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memRepo) ListByStatuses(ctx context.Context, statuses []domain.RouteStatus) ([]domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Route, 0, len(m.routes))
	for _, r := range m.routes {
		if len(statuses) == 0 || containsStatus(statuses, r.Status) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func containsStatus(list []domain.RouteStatus, s domain.RouteStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (m *memRepo) Update(ctx context.Context, u domain.RouteUpdate) (*domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.routes[u.ID]
	if !ok {
		return nil, nil
	}
	if u.Version != 0 && u.Version != r.Version {
		return nil, apperr.ErrStale
	}
	if u.StartLocation != nil {
		r.StartLocation = *u.StartLocation
	}
	if u.EndLocation != nil {
		r.EndLocation = *u.EndLocation
	}
	if u.StartTime != nil {
		r.StartTime = *u.StartTime
	}
	if u.ClearNotes {
		r.Notes = nil
	} else if u.Notes != nil {
		r.Notes = u.Notes
	}
	if u.Status != nil {
		r.Status = *u.Status
		r.EndTime = u.EndTime
	}
	r.Version++
	m.routes[r.ID] = r
	return &r, nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	if _, ok := m.routes[id]; !ok {
		return false, nil
	}
	delete(m.routes, id)
	return true, nil
}

func (m *memRepo) put(r domain.Route) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.Version == 0 {
		r.Version = 1
	}
	m.routes[r.ID] = r
	if r.ID > m.seq {
		m.seq = r.ID
	}
}

func (m *memRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.routes)
}

var _ routeRepository = (*memRepo)(nil)
