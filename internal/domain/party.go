package domain

import "strings"

// Driver statuses understood by the driver service.
const (
	DriverAvailable = "available"
	DriverOnDuty    = "on_duty"
)

// Vehicle statuses understood by the vehicle service.
const (
	VehicleAvailable = "Available"
	VehicleInUse     = "InUse"
)

// Driver is the driver service record. Updates always send the whole record.
type Driver struct {
	ID              int64   `json:"id"`
	LicenseNumber   string  `json:"license_number"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Status          string  `json:"status"`
	AssignedVehicle *string `json:"assigned_vehicle"`
}

// Vehicle is the vehicle service record. Updates always send the whole record.
type Vehicle struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	PlateNumber string `json:"plate_number"`
	Status      string `json:"status"`
}

// Available reports whether the driver can take a route.
func (d *Driver) Available() bool {
	return d != nil && isAvailable(d.Status)
}

// Available reports whether the vehicle can take a route.
func (v *Vehicle) Available() bool {
	return v != nil && isAvailable(v.Status)
}

func isAvailable(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), DriverAvailable)
}
