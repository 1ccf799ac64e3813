package domain

import (
	"fmt"
	"time"
)

// BillingRecord is one persisted bill. At most one exists per trip; the
// billings table enforces that with a unique index on trip_id.
type BillingRecord struct {
	ID             int32     `json:"id"`
	TripID         int32     `json:"trip_id"`
	TripType       RateType  `json:"trip_type"`
	CalculatedRate float64   `json:"calculated_rate"`
	TollFees       float64   `json:"toll_fees"`
	TotalAmount    float64   `json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// BillNumber is the display identifier: INV + 4-digit year + zero-padded
// 6-digit sequence derived from the record id.
func (b *BillingRecord) BillNumber() string {
	return fmt.Sprintf("INV%04d%06d", b.CreatedAt.Year(), b.ID)
}
