package billing

import (
	"testing"
	"time"

	"fleetbill-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func completedTrip(id, agencyID int32, tone string, distance float64) domain.Trip {
	end := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:         id,
		AgencyID:   agencyID,
		Tone:       tone,
		DistanceKM: f64(distance),
		Status:     domain.TripStatusCompleted,
		EndTime:    &end,
	}
}

func driverActor(agencyID int32) Actor {
	return Actor{UserID: 1, Role: domain.UserRoleDriver, AgencyID: i32(agencyID)}
}

var ledgerRates = []domain.Rate{
	{ID: 1, AgencyID: 7, Tone: 5, Type: domain.RateTypeTrip, MinKM: f64(100), MaxKM: f64(150), Rate: 5000},
	{ID: 2, AgencyID: 7, Tone: 5, Type: domain.RateTypeKilometer, Rate: 40},
}

func TestProjector_Partition(t *testing.T) {
	trips := []domain.Trip{
		completedTrip(1, 7, "5", 120),
		completedTrip(2, 7, "5", 90),
		{ID: 3, AgencyID: 7, Tone: "5", Status: domain.TripStatusActive},
	}
	bills := []domain.BillingRecord{
		{ID: 42, TripID: 2, TripType: domain.RateTypeTrip, CalculatedRate: 5000, TollFees: 100, TotalAmount: 5100,
			CreatedAt: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)},
	}

	p := NewProjector(trips, bills, ledgerRates, driverActor(7))

	t.Run("Completed unbilled trips are pending", func(t *testing.T) {
		pending := p.Pending()
		assert.Len(t, pending, 1)
		assert.Equal(t, int32(1), pending[0].Trip.ID)
		assert.Equal(t, BasisUnset, pending[0].Basis)
	})

	t.Run("Billed trips are generated with display state", func(t *testing.T) {
		generated := p.Generated()
		assert.Len(t, generated, 1)
		sb := generated[0]
		assert.Equal(t, int32(2), sb.Trip.ID)
		assert.Equal(t, "Trip Basis", sb.BasisLabel)
		assert.Equal(t, "INV2025000042", sb.BillNumber)
		assert.Equal(t, 5100.0, sb.TotalAmount)
	})

	t.Run("Active trips are excluded entirely", func(t *testing.T) {
		err := p.SetBasis(3, BasisTrip)
		assert.ErrorIs(t, err, ErrUnknownTrip)
	})
}

func TestProjector_Edits(t *testing.T) {
	trips := []domain.Trip{completedTrip(1, 7, "5", 120)}

	t.Run("SetBasis recomputes rate and total", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, driverActor(7))

		assert.NoError(t, p.SetBasis(1, BasisTrip))
		pending := p.Pending()
		assert.Equal(t, 5000.0, pending[0].CalculatedRate)
		assert.Equal(t, 5000.0, pending[0].TotalAmount)

		assert.NoError(t, p.SetBasis(1, BasisKilometer))
		pending = p.Pending()
		assert.Equal(t, 4800.0, pending[0].CalculatedRate)
		assert.Equal(t, 4800.0, pending[0].TotalAmount)
	})

	t.Run("Toll fees keep total consistent across edits", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, driverActor(7))

		assert.NoError(t, p.SetTollFees(1, 250))
		assert.NoError(t, p.SetBasis(1, BasisTrip))
		assert.Equal(t, 5250.0, p.Pending()[0].TotalAmount)

		assert.NoError(t, p.SetTollFees(1, 0))
		assert.Equal(t, 5000.0, p.Pending()[0].TotalAmount)
	})

	t.Run("Negative toll fees rejected", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, driverActor(7))
		assert.ErrorIs(t, p.SetTollFees(1, -1), ErrNegativeTollFees)
	})

	t.Run("View-only roles cannot edit", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, Actor{UserID: 9, Role: domain.UserRoleAdmin})
		assert.ErrorIs(t, p.SetTollFees(1, 100), ErrViewOnly)
		assert.ErrorIs(t, p.SetBasis(1, BasisTrip), ErrViewOnly)

		// Working state untouched.
		pending := p.Pending()
		assert.Equal(t, 0.0, pending[0].TollFees)
		assert.Equal(t, BasisUnset, pending[0].Basis)
	})
}

func TestProjector_Save(t *testing.T) {
	trips := []domain.Trip{completedTrip(1, 7, "5", 120)}

	t.Run("Save requires a basis", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, driverActor(7))
		_, err := p.Save(1)
		assert.ErrorIs(t, err, ErrNoBasisSelected)
	})

	t.Run("Save requires a matching rate", func(t *testing.T) {
		p := NewProjector(trips, nil, nil, driverActor(7))
		assert.NoError(t, p.SetBasis(1, BasisTrip))
		_, err := p.Save(1)
		assert.ErrorIs(t, err, ErrNoMatchingRate)
	})

	t.Run("Save then MarkSaved moves trip to generated", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, driverActor(7))
		assert.NoError(t, p.SetBasis(1, BasisTrip))
		assert.NoError(t, p.SetTollFees(1, 150))

		wb, err := p.Save(1)
		assert.NoError(t, err)
		assert.Equal(t, 5150.0, wb.TotalAmount)

		rec := &domain.BillingRecord{
			ID: 7, TripID: 1, TripType: domain.RateTypeTrip,
			CalculatedRate: wb.CalculatedRate, TollFees: wb.TollFees, TotalAmount: wb.TotalAmount,
			CreatedAt: time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC),
		}
		sb, err := p.MarkSaved(1, rec)
		assert.NoError(t, err)
		assert.Equal(t, "INV2025000007", sb.BillNumber)

		assert.Empty(t, p.Pending())
		assert.Len(t, p.Generated(), 1)
	})

	t.Run("Second save of a billed trip is rejected", func(t *testing.T) {
		bills := []domain.BillingRecord{{ID: 7, TripID: 1, TripType: domain.RateTypeTrip, CreatedAt: time.Now()}}
		p := NewProjector(trips, bills, ledgerRates, driverActor(7))
		_, err := p.Save(1)
		assert.ErrorIs(t, err, ErrAlreadyBilled)
	})

	t.Run("Failed persist leaves trip pending", func(t *testing.T) {
		p := NewProjector(trips, nil, ledgerRates, driverActor(7))
		assert.NoError(t, p.SetBasis(1, BasisTrip))
		_, err := p.Save(1)
		assert.NoError(t, err)

		// Store write failed: MarkSaved never called. State intact, retry safe.
		assert.Len(t, p.Pending(), 1)
		_, err = p.Save(1)
		assert.NoError(t, err)
	})
}

func TestApplyFilters(t *testing.T) {
	end1 := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	end2 := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	trips := []domain.Trip{
		{ID: 1, VehicleNumber: "KA-01-AB-1234", EndTime: &end1, Agency: &domain.Agency{Name: "Southern Haulage"}},
		{ID: 2, VehicleNumber: "KA-05-ZZ-9876", EndTime: &end2, Agency: &domain.Agency{Name: "Northline Carriers"}},
	}

	t.Run("No filters passes everything", func(t *testing.T) {
		assert.Len(t, ApplyFilters(trips, LedgerFilter{}), 2)
	})

	t.Run("Transporter substring is case insensitive", func(t *testing.T) {
		out := ApplyFilters(trips, LedgerFilter{Transporter: "southern"})
		assert.Len(t, out, 1)
		assert.Equal(t, int32(1), out[0].ID)
	})

	t.Run("Vehicle substring", func(t *testing.T) {
		out := ApplyFilters(trips, LedgerFilter{VehicleNumber: "zz-98"})
		assert.Len(t, out, 1)
		assert.Equal(t, int32(2), out[0].ID)
	})

	t.Run("Date range inclusive on both ends", func(t *testing.T) {
		out := ApplyFilters(trips, LedgerFilter{StartDate: &end1, EndDate: &end1})
		assert.Len(t, out, 1)
		assert.Equal(t, int32(1), out[0].ID)
	})

	t.Run("Filters compose with AND", func(t *testing.T) {
		out := ApplyFilters(trips, LedgerFilter{Transporter: "northline", VehicleNumber: "ab-1234"})
		assert.Empty(t, out)
	})
}
