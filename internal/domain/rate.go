package domain

import "time"

type RateType string

const (
	RateTypeTrip      RateType = "Trip"
	RateTypeKilometer RateType = "Kilometer"
)

// Rate is one tariff rule in the shipment rate table. For Trip-type rates
// the [MinKM, MaxKM] window bounds the trip distance (inclusive on both
// ends, nil meaning 0 / unbounded); Kilometer-type rates ignore both.
type Rate struct {
	ID        int32     `json:"id"`
	AgencyID  int32     `json:"agency_id"`
	Tone      float64   `json:"tone"`
	Type      RateType  `json:"type"`
	MinKM     *float64  `json:"min_km,omitempty"`
	MaxKM     *float64  `json:"max_km,omitempty"`
	Rate      float64   `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
