package kafka

import (
	"time"

	"route-service-fleetsync/internal/domain"
)

// EventDTO is the wire form of a domain.RouteEvent
type EventDTO struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RouteID    int64     `json:"route_id"`
	DriverID   int64     `json:"driver_id"`
	VehicleID  int64     `json:"vehicle_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FromDomain converts a domain.RouteEvent to EventDTO
func FromDomain(id string, ev domain.RouteEvent) EventDTO {
	return EventDTO{
		EventID:    id,
		Type:       string(ev.Type),
		RouteID:    ev.Route.ID,
		DriverID:   ev.Route.DriverID,
		VehicleID:  ev.Route.VehicleID,
		Status:     string(ev.Route.Status),
		OccurredAt: ev.OccurredAt.UTC(),
	}
}
