package billing

import (
	"errors"
	"strings"
	"time"

	"fleetbill-backend/internal/domain"
)

var (
	// ErrViewOnly rejects billing edits from roles that may only observe.
	ErrViewOnly = errors.New("billing is view only for this role")

	// ErrNoBasisSelected blocks saving a bill before a basis is chosen.
	ErrNoBasisSelected = errors.New("no billing basis selected")

	// ErrNoMatchingRate blocks saving when the selected basis resolved to
	// a zero amount, meaning no tariff row is configured for the trip.
	ErrNoMatchingRate = errors.New("no matching rate configured for this trip")

	// ErrAlreadyBilled rejects edits to a trip that has a persisted bill.
	ErrAlreadyBilled = errors.New("trip is already billed")

	// ErrUnknownTrip rejects edits to a trip outside the actor's ledger.
	ErrUnknownTrip = errors.New("trip is not in the billing ledger")

	// ErrNegativeTollFees rejects a toll fee below zero.
	ErrNegativeTollFees = errors.New("toll fees must not be negative")
)

// PendingBill is the editable working state for a completed trip that has
// no persisted bill yet.
type PendingBill struct {
	Trip           domain.Trip
	Basis          Basis
	TollFees       float64
	CalculatedRate float64
	TotalAmount    float64
}

// SavedBill mirrors a persisted billing record. It is read only.
type SavedBill struct {
	Trip           domain.Trip
	Basis          Basis
	BasisLabel     string
	TollFees       float64
	CalculatedRate float64
	TotalAmount    float64
	BillNumber     string
	BillingDate    time.Time
}

// Projector maintains the pending/generated partition of an actor's
// completed trips and the per-trip working state while a session edits it.
// Every trip id lives in exactly one of the two groups; a persisted bill
// is the only thing that moves a trip from pending to generated.
type Projector struct {
	actor   Actor
	rates   []domain.Rate
	order   []int32
	pending map[int32]*PendingBill
	saved   map[int32]*SavedBill
}

// NewProjector partitions the supplied trips against the supplied bills.
// The trip set is filtered through the access rules first, then reduced to
// billable (completed) trips. Trips keep their input order in both groups.
func NewProjector(trips []domain.Trip, bills []domain.BillingRecord, rates []domain.Rate, actor Actor) *Projector {
	byTrip := make(map[int32]*domain.BillingRecord, len(bills))
	for i := range bills {
		byTrip[bills[i].TripID] = &bills[i]
	}

	p := &Projector{
		actor:   actor,
		rates:   rates,
		pending: make(map[int32]*PendingBill),
		saved:   make(map[int32]*SavedBill),
	}

	for _, t := range FilterVisibleTrips(trips, actor) {
		if !t.Billable() {
			continue
		}
		p.order = append(p.order, t.ID)
		if rec, ok := byTrip[t.ID]; ok {
			p.saved[t.ID] = savedFromRecord(t, rec)
		} else {
			p.pending[t.ID] = &PendingBill{Trip: t}
		}
	}
	return p
}

func savedFromRecord(t domain.Trip, rec *domain.BillingRecord) *SavedBill {
	basis := Basis(rec.TripType)
	return &SavedBill{
		Trip:           t,
		Basis:          basis,
		BasisLabel:     basis.Label(),
		TollFees:       rec.TollFees,
		CalculatedRate: rec.CalculatedRate,
		TotalAmount:    rec.TotalAmount,
		BillNumber:     rec.BillNumber(),
		BillingDate:    rec.CreatedAt,
	}
}

// SetBasis selects the billing basis for a pending trip and recomputes the
// calculated rate and total.
func (p *Projector) SetBasis(tripID int32, basis Basis) error {
	wb, err := p.editable(tripID)
	if err != nil {
		return err
	}
	wb.Basis = basis
	wb.CalculatedRate = ResolveRate(&wb.Trip, basis, p.rates)
	wb.TotalAmount = wb.CalculatedRate + wb.TollFees
	return nil
}

// SetTollFees records an additional charge on a pending trip and
// recomputes the total.
func (p *Projector) SetTollFees(tripID int32, amount float64) error {
	wb, err := p.editable(tripID)
	if err != nil {
		return err
	}
	if amount < 0 {
		return ErrNegativeTollFees
	}
	wb.TollFees = amount
	wb.TotalAmount = wb.CalculatedRate + wb.TollFees
	return nil
}

func (p *Projector) editable(tripID int32) (*PendingBill, error) {
	if !CanMutateBilling(p.actor) {
		return nil, ErrViewOnly
	}
	if wb, ok := p.pending[tripID]; ok {
		return wb, nil
	}
	if _, ok := p.saved[tripID]; ok {
		return nil, ErrAlreadyBilled
	}
	return nil, ErrUnknownTrip
}

// Save validates a pending trip for persistence and returns a copy of its
// working state. The caller persists the bill and, on success, calls
// MarkSaved with the write result; on failure the working state is
// untouched and a retry is safe.
func (p *Projector) Save(tripID int32) (PendingBill, error) {
	wb, err := p.editable(tripID)
	if err != nil {
		return PendingBill{}, err
	}
	if wb.Basis == BasisUnset {
		return PendingBill{}, ErrNoBasisSelected
	}
	if wb.CalculatedRate == 0 {
		return PendingBill{}, ErrNoMatchingRate
	}
	return *wb, nil
}

// MarkSaved transitions a trip from pending to generated using the
// persisted record. It is the only path into the generated group.
func (p *Projector) MarkSaved(tripID int32, rec *domain.BillingRecord) (*SavedBill, error) {
	wb, ok := p.pending[tripID]
	if !ok {
		if _, saved := p.saved[tripID]; saved {
			return nil, ErrAlreadyBilled
		}
		return nil, ErrUnknownTrip
	}
	sb := savedFromRecord(wb.Trip, rec)
	delete(p.pending, tripID)
	p.saved[tripID] = sb
	return sb, nil
}

// Pending returns the unbilled group in input order.
func (p *Projector) Pending() []PendingBill {
	out := make([]PendingBill, 0, len(p.pending))
	for _, id := range p.order {
		if wb, ok := p.pending[id]; ok {
			out = append(out, *wb)
		}
	}
	return out
}

// Generated returns the billed group in input order.
func (p *Projector) Generated() []SavedBill {
	out := make([]SavedBill, 0, len(p.saved))
	for _, id := range p.order {
		if sb, ok := p.saved[id]; ok {
			out = append(out, *sb)
		}
	}
	return out
}

// LedgerFilter narrows the visible trip set before projection. All fields
// are optional and compose with AND.
type LedgerFilter struct {
	Transporter   string
	VehicleNumber string
	StartDate     *time.Time
	EndDate       *time.Time
}

// ApplyFilters restricts trips by case-insensitive substring match on
// transporter and vehicle number and an inclusive range on the trip's end
// date.
func ApplyFilters(trips []domain.Trip, f LedgerFilter) []domain.Trip {
	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if f.Transporter != "" {
			name := ""
			if t.Agency != nil {
				name = t.Agency.Name
			}
			if !containsFold(name, f.Transporter) {
				continue
			}
		}
		if f.VehicleNumber != "" && !containsFold(t.VehicleNumber, f.VehicleNumber) {
			continue
		}
		if f.StartDate != nil || f.EndDate != nil {
			if t.EndTime == nil {
				continue
			}
			if f.StartDate != nil && t.EndTime.Before(*f.StartDate) {
				continue
			}
			if f.EndDate != nil && t.EndTime.After(*f.EndDate) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
