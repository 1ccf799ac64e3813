package domain

import "time"

type Vehicle struct {
	ID       int32  `json:"id"`
	AgencyID int32  `json:"agency_id"`
	Number   string `json:"number"`
	// Tone is the capacity classification used as a rate-lookup dimension.
	// Stored as entered, e.g. "5" or "7.5".
	Tone      string    `json:"tone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Supplier struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
