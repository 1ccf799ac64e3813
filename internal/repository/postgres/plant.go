package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

type plantRepository struct {
	db *sql.DB
}

func NewPlantRepository(db *sql.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) Create(ctx context.Context, p *domain.Plant) error {
	query := `INSERT INTO plants (name, location, code, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Location, p.Code, now, now).Scan(&p.ID)
	return translateUnique(err)
}

func (r *plantRepository) GetByID(ctx context.Context, id int32) (*domain.Plant, error) {
	p := &domain.Plant{}
	query := `SELECT id, name, location, code, created_at, updated_at FROM plants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Location, &p.Code, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *plantRepository) Update(ctx context.Context, p *domain.Plant) error {
	query := `UPDATE plants SET name=$1, location=$2, code=$3, updated_at=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Location, p.Code, time.Now(), p.ID)
	return translateUnique(err)
}

func (r *plantRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plants WHERE id = $1`, id)
	return err
}

func (r *plantRepository) List(ctx context.Context) ([]domain.Plant, error) {
	query := `SELECT id, name, location, code, created_at, updated_at FROM plants ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		var p domain.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Code, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}
