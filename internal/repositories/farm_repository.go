package repositories

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FarmRepository struct {
	DB *pgxpool.Pool
}

func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{DB: db}
}

func (r *FarmRepository) Create(ctx context.Context, f *models.Farm) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO farms(name, location, description, code, active)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		f.Name, f.Location, f.Description, f.Code, f.Active,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FarmRepository) Get(ctx context.Context, id int) (*models.Farm, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, location, COALESCE(description, ''), code, active, created_at, updated_at
         FROM farms WHERE id=$1`, id)

	var farm models.Farm
	err := row.Scan(&farm.ID, &farm.Name, &farm.Location, &farm.Description,
		&farm.Code, &farm.Active, &farm.CreatedAt, &farm.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("farm", id)
	}
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *FarmRepository) GetByCode(ctx context.Context, code string) (*models.Farm, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, location, COALESCE(description, ''), code, active, created_at, updated_at
         FROM farms WHERE code=$1`, code)

	var farm models.Farm
	err := row.Scan(&farm.ID, &farm.Name, &farm.Location, &farm.Description,
		&farm.Code, &farm.Active, &farm.CreatedAt, &farm.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("farm", code)
	}
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *FarmRepository) List(ctx context.Context) ([]*models.Farm, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, location, COALESCE(description, ''), code, active, created_at, updated_at
         FROM farms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var farms []*models.Farm
	for rows.Next() {
		var farm models.Farm
		if err := rows.Scan(&farm.ID, &farm.Name, &farm.Location, &farm.Description,
			&farm.Code, &farm.Active, &farm.CreatedAt, &farm.UpdatedAt); err != nil {
			return nil, err
		}
		farms = append(farms, &farm)
	}
	return farms, rows.Err()
}

func (r *FarmRepository) Update(ctx context.Context, f *models.Farm) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE farms SET name=$1, location=$2, description=$3, active=$4, updated_at=NOW()
         WHERE id=$5`,
		f.Name, f.Location, f.Description, f.Active, f.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("farm", f.ID)
	}
	return nil
}

func (r *FarmRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM farms WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("farm", id)
	}
	return nil
}
