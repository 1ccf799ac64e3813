package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

const tripColumns = `t.id, t.agency_id, t.plant_id, t.vehicle_id, t.vehicle_number, t.tone,
	t.supplier_id, t.supplier_name, t.driver_id, t.driver_name, t.driver_phone,
	t.start_time, t.start_lat, t.start_lng, t.start_address,
	t.end_time, t.end_lat, t.end_lng, t.end_address, t.distance_km, t.status,
	t.created_at, t.updated_at,
	a.id, a.name, a.code, a.email, a.plant_id`

type tripRepository struct {
	db *sql.DB
}

func NewTripRepository(db *sql.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (agency_id, plant_id, vehicle_id, vehicle_number, tone, supplier_id, supplier_name,
	          driver_id, driver_name, driver_phone, start_time, start_lat, start_lng, start_address, end_address, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		t.AgencyID, t.PlantID, t.VehicleID, t.VehicleNumber, t.Tone, t.SupplierID, t.SupplierName,
		t.DriverID, t.DriverName, t.DriverPhone, t.StartTime, t.StartLat, t.StartLng, t.StartAddress,
		t.EndAddress, t.Status, now, now).Scan(&t.ID)
}

func (r *tripRepository) GetByID(ctx context.Context, id int32) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips t JOIN agencies a ON a.id = t.agency_id WHERE t.id = $1`
	t, err := scanTrip(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return t, err
}

func (r *tripRepository) Update(ctx context.Context, t *domain.Trip) error {
	query := `UPDATE trips SET end_time=$1, end_lat=$2, end_lng=$3, end_address=$4, distance_km=$5, status=$6, updated_at=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, t.EndTime, t.EndLat, t.EndLng, t.EndAddress, t.DistanceKM, t.Status, time.Now(), t.ID)
	return err
}

func (r *tripRepository) List(ctx context.Context) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips t JOIN agencies a ON a.id = t.agency_id ORDER BY t.id`
	return r.queryTrips(ctx, query)
}

func (r *tripRepository) ListByAgency(ctx context.Context, agencyID int32) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips t JOIN agencies a ON a.id = t.agency_id WHERE t.agency_id = $1 ORDER BY t.id`
	return r.queryTrips(ctx, query, agencyID)
}

func (r *tripRepository) ListByPlant(ctx context.Context, plantID int32) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips t JOIN agencies a ON a.id = t.agency_id
	          WHERE t.plant_id = $1 OR a.plant_id = $1 ORDER BY t.id`
	return r.queryTrips(ctx, query, plantID)
}

func (r *tripRepository) ListActiveOlderThan(ctx context.Context, hours int32) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips t JOIN agencies a ON a.id = t.agency_id
	          WHERE t.status = $1 AND t.start_time < $2 ORDER BY t.id`
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	return r.queryTrips(ctx, query, domain.TripStatusActive, cutoff)
}

func (r *tripRepository) queryTrips(ctx context.Context, query string, args ...interface{}) ([]domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}
	return trips, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	t := &domain.Trip{Agency: &domain.Agency{}}
	err := row.Scan(
		&t.ID, &t.AgencyID, &t.PlantID, &t.VehicleID, &t.VehicleNumber, &t.Tone,
		&t.SupplierID, &t.SupplierName, &t.DriverID, &t.DriverName, &t.DriverPhone,
		&t.StartTime, &t.StartLat, &t.StartLng, &t.StartAddress,
		&t.EndTime, &t.EndLat, &t.EndLng, &t.EndAddress, &t.DistanceKM, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
		&t.Agency.ID, &t.Agency.Name, &t.Agency.Code, &t.Agency.Email, &t.Agency.PlantID,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
