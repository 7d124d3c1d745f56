package repositories

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WarehouseRepository struct {
	DB *pgxpool.Pool
}

func NewWarehouseRepository(db *pgxpool.Pool) *WarehouseRepository {
	return &WarehouseRepository{DB: db}
}

func (r *WarehouseRepository) Create(ctx context.Context, w *models.Warehouse) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO warehouses(name, location, capacity_crates, active)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		w.Name, w.Location, w.CapacityCrates, w.Active,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

func (r *WarehouseRepository) Get(ctx context.Context, id int) (*models.Warehouse, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, location, capacity_crates, active, created_at, updated_at
         FROM warehouses WHERE id=$1`, id)

	var w models.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.Location, &w.CapacityCrates, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("warehouse", id)
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WarehouseRepository) List(ctx context.Context) ([]*models.Warehouse, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, location, capacity_crates, active, created_at, updated_at
         FROM warehouses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		var w models.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.CapacityCrates, &w.Active,
			&w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, &w)
	}
	return warehouses, rows.Err()
}

func (r *WarehouseRepository) Update(ctx context.Context, w *models.Warehouse) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE warehouses SET name=$1, location=$2, capacity_crates=$3, active=$4, updated_at=NOW()
         WHERE id=$5`,
		w.Name, w.Location, w.CapacityCrates, w.Active, w.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("warehouse", w.ID)
	}
	return nil
}

func (r *WarehouseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM warehouses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("warehouse", id)
	}
	return nil
}
