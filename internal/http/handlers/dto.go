package handlers

import (
	"bytes"
	"encoding/json"
)

type routeDTO struct {
	ID            int64   `json:"id"`
	DriverID      int64   `json:"driver_id"`
	VehicleID     int64   `json:"vehicle_id"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	Status        string  `json:"status"`
	StartTime     string  `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Notes         *string `json:"notes"`
	Version       int64   `json:"version"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`

	Driver  *driverDTO  `json:"driver"`
	Vehicle *vehicleDTO `json:"vehicle"`
}

type driverDTO struct {
	ID            int64  `json:"id"`
	LicenseNumber string `json:"license_number"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
}

type vehicleDTO struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	PlateNumber string `json:"plate_number"`
	Status      string `json:"status"`
}

type createRouteRequest struct {
	DriverID      int64   `json:"driver_id"`
	VehicleID     int64   `json:"vehicle_id"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	StartTime     string  `json:"start_time"`
	Notes         *string `json:"notes,omitempty"`
}

// updateRouteRequest holds the descriptive fields of a route. Absent fields
// keep their stored value; "notes": null clears the notes. A non-zero
// version must match the stored one.
type updateRouteRequest struct {
	StartLocation *string        `json:"start_location,omitempty"`
	EndLocation   *string        `json:"end_location,omitempty"`
	StartTime     *string        `json:"start_time,omitempty"`
	Notes         nullableString `json:"notes"`
	Version       int64          `json:"version,omitempty"`
}

// nullableString tells an absent field from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}
