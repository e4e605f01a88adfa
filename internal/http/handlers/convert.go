package handlers

import (
	"strings"
	"time"

	"route-service-fleetsync/internal/apperr"
	"route-service-fleetsync/internal/domain"
)

var errBadStartTime = apperr.New(apperr.ErrInvalid, "start_time must be a valid timestamp")

func parseStartTime(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := domain.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, errBadStartTime
	}
	return t, nil
}

func (r createRouteRequest) toModel() (domain.NewRoute, error) {
	start, err := parseStartTime(r.StartTime)
	if err != nil {
		return domain.NewRoute{}, err
	}
	return domain.NewRoute{
		DriverID:      r.DriverID,
		VehicleID:     r.VehicleID,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		StartTime:     start,
		Notes:         r.Notes,
	}, nil
}

func (r updateRouteRequest) toModel(id int64) (domain.PartialRouteUpdate, error) {
	u := domain.PartialRouteUpdate{
		ID:            id,
		Version:       r.Version,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Notes:         r.Notes.Value,
		ClearNotes:    r.Notes.Set && r.Notes.Value == nil,
	}
	if r.StartTime != nil {
		if strings.TrimSpace(*r.StartTime) == "" {
			return u, errBadStartTime
		}
		start, err := parseStartTime(*r.StartTime)
		if err != nil {
			return u, err
		}
		u.StartTime = &start
	}
	return u, nil
}

// presenter renders routes for API responses. Audit timestamps are shifted
// by offset; start and end times are emitted as stored.
type presenter struct {
	offset time.Duration
}

func (p presenter) route(r domain.Route) routeDTO {
	dto := routeDTO{
		ID:            r.ID,
		DriverID:      r.DriverID,
		VehicleID:     r.VehicleID,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Status:        string(r.Status),
		StartTime:     domain.FormatTimestamp(r.StartTime),
		Notes:         r.Notes,
		Version:       r.Version,
		CreatedAt:     domain.FormatTimestamp(r.CreatedAt.Add(p.offset)),
		UpdatedAt:     domain.FormatTimestamp(r.UpdatedAt.Add(p.offset)),
	}
	if r.EndTime != nil {
		end := domain.FormatTimestamp(*r.EndTime)
		dto.EndTime = &end
	}
	if d := r.Driver; d != nil {
		dto.Driver = &driverDTO{ID: d.ID, LicenseNumber: d.LicenseNumber, Name: d.Name, Email: d.Email, Status: d.Status}
	}
	if v := r.Vehicle; v != nil {
		dto.Vehicle = &vehicleDTO{ID: v.ID, Type: v.Type, PlateNumber: v.PlateNumber, Status: v.Status}
	}
	return dto
}

func (p presenter) routes(list []domain.Route) []routeDTO {
	out := make([]routeDTO, 0, len(list))
	for _, r := range list {
		out = append(out, p.route(r))
	}
	return out
}
