package domain

import "time"

// Agency is a transporter. Trips and vehicles belong to an agency, and an
// agency is bound to exactly one plant.
type Agency struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	PlantID   int32     `json:"plant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Plant struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
