package billing

import (
	"strconv"
	"strings"

	"fleetbill-backend/internal/domain"
)

// Basis selects how a trip is billed: a flat amount per trip, or a unit
// rate multiplied by distance. The zero value means no basis has been
// selected yet.
type Basis string

const (
	BasisUnset     Basis = ""
	BasisTrip      Basis = Basis(domain.RateTypeTrip)
	BasisKilometer Basis = Basis(domain.RateTypeKilometer)
)

// Label is the display name shown in the ledger.
func (b Basis) Label() string {
	switch b {
	case BasisTrip:
		return "Trip Basis"
	case BasisKilometer:
		return "Kilometer Basis"
	}
	return ""
}

// ResolveRate finds the tariff for a trip in the rate table and computes
// the billed amount.
//
// A zero result is a defined state, not an error: it means either no basis
// is selected or no matching rate is configured. Rates match on agency,
// numeric tonnage equality and basis type; Trip-basis rates additionally
// require the trip distance to fall inside [min_km, max_km], inclusive on
// both ends, where a missing min is 0 and a missing max is unbounded.
// When several Trip-basis windows overlap, the first match in table order
// wins; the rate store returns rows in id order, so the pick is stable.
func ResolveRate(trip *domain.Trip, basis Basis, rates []domain.Rate) float64 {
	if basis == BasisUnset {
		return 0
	}

	tone, ok := parseTone(trip.Tone)
	if !ok {
		return 0
	}

	var distance float64
	if trip.DistanceKM != nil {
		distance = *trip.DistanceKM
	}

	for i := range rates {
		r := &rates[i]
		if r.AgencyID != trip.AgencyID || r.Tone != tone || r.Type != domain.RateType(basis) {
			continue
		}

		if basis == BasisTrip {
			min := 0.0
			if r.MinKM != nil {
				min = *r.MinKM
			}
			if distance < min {
				continue
			}
			if r.MaxKM != nil && distance > *r.MaxKM {
				continue
			}
			return r.Rate
		}

		return r.Rate * distance
	}

	return 0
}

// parseTone converts a vehicle's capacity field to a number. The field is
// free text in master data, so "5", " 5 " and "5.0" all mean tonnage 5.
func parseTone(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
