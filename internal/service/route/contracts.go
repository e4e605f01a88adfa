//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=route

package route

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"route-service-fleetsync/internal/domain"
)

// routeRepository defines storage operations required by the route service.
type routeRepository interface {
	Create(ctx context.Context, r *domain.Route) error
	Get(ctx context.Context, id int64) (*domain.Route, error)
	ListByStatuses(ctx context.Context, statuses []domain.RouteStatus) ([]domain.Route, error)
	Update(ctx context.Context, u domain.RouteUpdate) (*domain.Route, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// freshReader is implemented by stores that cache reads. GetFresh skips the
// cache for read-modify-write paths.
type freshReader interface {
	GetFresh(ctx context.Context, id int64) (*domain.Route, error)
}

type driverGateway interface {
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	Update(ctx context.Context, id int64, d domain.Driver) error
}

type vehicleGateway interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, v domain.Vehicle) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.RouteEvent) error
}

type counterVec interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
