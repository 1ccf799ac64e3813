package postgres

import (
	"context"
	"testing"
	"time"

	"fleetbill-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBillingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBillingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.BillingRecord{
			TripID:         7,
			TripType:       domain.RateTypeTrip,
			CalculatedRate: 1200,
			TollFees:       150,
			TotalAmount:    1350,
		}

		created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery("INSERT INTO billings").
			WithArgs(rec.TripID, rec.TripType, rec.CalculatedRate, rec.TollFees, rec.TotalAmount, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, created))

		err := repo.Create(ctx, rec)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), rec.ID)
		assert.Equal(t, "INV2025000042", rec.BillNumber())
	})

	t.Run("DuplicateTrip", func(t *testing.T) {
		rec := &domain.BillingRecord{TripID: 7, TripType: domain.RateTypeTrip, CalculatedRate: 1200, TotalAmount: 1200}

		mock.ExpectQuery("INSERT INTO billings").
			WithArgs(rec.TripID, rec.TripType, rec.CalculatedRate, rec.TollFees, rec.TotalAmount, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "billings_trip_id_key"})

		err := repo.Create(ctx, rec)
		assert.ErrorIs(t, err, domain.ErrDuplicateBill)
	})
}

func TestBillingRepository_GetByTripID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBillingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT id, trip_id, trip_type, calculated_rate, toll_fees, total_amount, created_at FROM billings").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "trip_type", "calculated_rate", "toll_fees", "total_amount", "created_at"}).
				AddRow(3, 7, "Kilometer", 900.0, 0.0, 900.0, created))

		rec, err := repo.GetByTripID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), rec.TripID)
		assert.Equal(t, domain.RateTypeKilometer, rec.TripType)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, trip_id, trip_type, calculated_rate, toll_fees, total_amount, created_at FROM billings").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByTripID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
