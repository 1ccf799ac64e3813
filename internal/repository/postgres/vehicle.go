package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (agency_id, number, tone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, v.AgencyID, v.Number, v.Tone, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, agency_id, number, tone, created_at, updated_at FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.AgencyID, &v.Number, &v.Tone, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET agency_id=$1, number=$2, tone=$3, updated_at=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, v.AgencyID, v.Number, v.Tone, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, agency_id, number, tone, created_at, updated_at FROM vehicles ORDER BY number`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) ListByAgency(ctx context.Context, agencyID int32) ([]domain.Vehicle, error) {
	query := `SELECT id, agency_id, number, tone, created_at, updated_at FROM vehicles WHERE agency_id = $1 ORDER BY number`
	return r.queryVehicles(ctx, query, agencyID)
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args ...interface{}) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.AgencyID, &v.Number, &v.Tone, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
