package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"

	"github.com/lib/pq"
)

type billingRepository struct {
	db *sql.DB
}

func NewBillingRepository(db *sql.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, rec *domain.BillingRecord) error {
	query := `INSERT INTO billings (trip_id, trip_type, calculated_rate, toll_fees, total_amount, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		rec.TripID, rec.TripType, rec.CalculatedRate, rec.TollFees, rec.TotalAmount, time.Now()).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		// 23505: unique_violation on the trip_id index.
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateBill
		}
		return err
	}
	return nil
}

func (r *billingRepository) GetByTripID(ctx context.Context, tripID int32) (*domain.BillingRecord, error) {
	rec := &domain.BillingRecord{}
	query := `SELECT id, trip_id, trip_type, calculated_rate, toll_fees, total_amount, created_at FROM billings WHERE trip_id = $1`
	err := r.db.QueryRowContext(ctx, query, tripID).Scan(
		&rec.ID, &rec.TripID, &rec.TripType, &rec.CalculatedRate, &rec.TollFees, &rec.TotalAmount, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *billingRepository) List(ctx context.Context) ([]domain.BillingRecord, error) {
	query := `SELECT id, trip_id, trip_type, calculated_rate, toll_fees, total_amount, created_at FROM billings ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.BillingRecord
	for rows.Next() {
		var rec domain.BillingRecord
		if err := rows.Scan(&rec.ID, &rec.TripID, &rec.TripType, &rec.CalculatedRate, &rec.TollFees, &rec.TotalAmount, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
