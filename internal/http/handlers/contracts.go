package handlers

import (
	"context"

	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/service/route"
)

type routeUsecase interface {
	List(ctx context.Context) ([]domain.Route, error)
	ListActive(ctx context.Context) ([]domain.Route, error)
	Get(ctx context.Context, id int64, p domain.Principal) (*domain.Route, error)
	Create(ctx context.Context, in domain.NewRoute) (*domain.Route, error)
	Update(ctx context.Context, u domain.PartialRouteUpdate) (*domain.Route, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RouteStatus) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}

// NewRouteUsecase wires a route Service into a routeUsecase.
func NewRouteUsecase(svc *route.Service) routeUsecase {
	return svc
}
