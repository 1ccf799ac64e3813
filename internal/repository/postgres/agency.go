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

type agencyRepository struct {
	db *sql.DB
}

func NewAgencyRepository(db *sql.DB) repository.AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) Create(ctx context.Context, a *domain.Agency) error {
	query := `INSERT INTO agencies (name, code, email, plant_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, a.Name, a.Code, a.Email, a.PlantID, now, now).Scan(&a.ID)
	return translateUnique(err)
}

func (r *agencyRepository) GetByID(ctx context.Context, id int32) (*domain.Agency, error) {
	a := &domain.Agency{}
	query := `SELECT id, name, code, email, plant_id, created_at, updated_at FROM agencies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Code, &a.Email, &a.PlantID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *agencyRepository) Update(ctx context.Context, a *domain.Agency) error {
	query := `UPDATE agencies SET name=$1, code=$2, email=$3, plant_id=$4, updated_at=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, a.Name, a.Code, a.Email, a.PlantID, time.Now(), a.ID)
	return translateUnique(err)
}

func (r *agencyRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	return err
}

func (r *agencyRepository) List(ctx context.Context) ([]domain.Agency, error) {
	query := `SELECT id, name, code, email, plant_id, created_at, updated_at FROM agencies ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []domain.Agency
	for rows.Next() {
		var a domain.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.Email, &a.PlantID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}

// translateUnique maps a unique-constraint violation to the domain error
// so callers see a code collision, not a driver error.
func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateCode
	}
	return err
}
