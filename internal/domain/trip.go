package domain

import "time"

type TripStatus string

const (
	TripStatusPending   TripStatus = "PENDING"
	TripStatusActive    TripStatus = "ACTIVE"
	TripStatusCompleted TripStatus = "COMPLETED"
)

type Trip struct {
	ID            int32      `json:"id"`
	AgencyID      int32      `json:"agency_id"`
	PlantID       *int32     `json:"plant_id,omitempty"`
	VehicleID     int32      `json:"vehicle_id"`
	VehicleNumber string     `json:"vehicle_number"`
	// Tone is the vehicle capacity as entered in master data. It is free
	// text at the store level, so rate lookups compare it numerically.
	Tone          string     `json:"tone"`
	SupplierID    *int32     `json:"supplier_id,omitempty"`
	SupplierName  string     `json:"supplier_name"`
	DriverID      int32      `json:"driver_id"`
	DriverName    string     `json:"driver_name"`
	DriverPhone   string     `json:"driver_phone"`
	StartTime     time.Time  `json:"start_time"`
	StartLat      float64    `json:"start_lat"`
	StartLng      float64    `json:"start_lng"`
	StartAddress  string     `json:"start_address"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	EndLat        *float64   `json:"end_lat,omitempty"`
	EndLng        *float64   `json:"end_lng,omitempty"`
	EndAddress    string     `json:"end_address"`
	DistanceKM    *float64   `json:"distance_km,omitempty"`
	Status        TripStatus `json:"status"`
	Agency        *Agency    `json:"agency,omitempty"` // Populated when needed
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Billable reports whether the trip can enter the billing ledger.
func (t *Trip) Billable() bool {
	return t.Status == TripStatusCompleted
}
