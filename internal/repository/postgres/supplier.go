package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

type supplierRepository struct {
	db *sql.DB
}

func NewSupplierRepository(db *sql.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	query := `INSERT INTO suppliers (name, location, created_at, updated_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, s.Name, s.Location, now, now).Scan(&s.ID)
}

func (r *supplierRepository) GetByID(ctx context.Context, id int32) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	query := `SELECT id, name, location, created_at, updated_at FROM suppliers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *supplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	query := `UPDATE suppliers SET name=$1, location=$2, updated_at=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Location, time.Now(), s.ID)
	return err
}

func (r *supplierRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	return err
}

func (r *supplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT id, name, location, created_at, updated_at FROM suppliers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}
