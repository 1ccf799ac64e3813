package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

type rateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) repository.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Create(ctx context.Context, rate *domain.Rate) error {
	query := `INSERT INTO rates (agency_id, tone, type, min_km, max_km, rate, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rate.AgencyID, rate.Tone, rate.Type, rate.MinKM, rate.MaxKM, rate.Rate, now, now).Scan(&rate.ID)
}

func (r *rateRepository) GetByID(ctx context.Context, id int32) (*domain.Rate, error) {
	rate := &domain.Rate{}
	query := `SELECT id, agency_id, tone, type, min_km, max_km, rate, created_at, updated_at FROM rates WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rate.ID, &rate.AgencyID, &rate.Tone, &rate.Type, &rate.MinKM, &rate.MaxKM, &rate.Rate, &rate.CreatedAt, &rate.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rate, nil
}

func (r *rateRepository) Update(ctx context.Context, rate *domain.Rate) error {
	query := `UPDATE rates SET agency_id=$1, tone=$2, type=$3, min_km=$4, max_km=$5, rate=$6, updated_at=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, rate.AgencyID, rate.Tone, rate.Type, rate.MinKM, rate.MaxKM, rate.Rate, time.Now(), rate.ID)
	return err
}

func (r *rateRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rates WHERE id = $1`, id)
	return err
}

// List keeps id order so callers get a stable table order.
func (r *rateRepository) List(ctx context.Context) ([]domain.Rate, error) {
	query := `SELECT id, agency_id, tone, type, min_km, max_km, rate, created_at, updated_at FROM rates ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.Rate
	for rows.Next() {
		var rate domain.Rate
		if err := rows.Scan(&rate.ID, &rate.AgencyID, &rate.Tone, &rate.Type, &rate.MinKM, &rate.MaxKM, &rate.Rate, &rate.CreatedAt, &rate.UpdatedAt); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
