package repositories

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LotRepository struct {
	DB *pgxpool.Pool
}

func NewLotRepository(db *pgxpool.Pool) *LotRepository {
	return &LotRepository{DB: db}
}

const lotSelect = `SELECT l.id, l.lot_number, l.farm_id, f.name, f.code,
       l.harvest_date, l.initial_quantity, l.current_status, COALESCE(l.notes, ''),
       l.created_at, l.updated_at
  FROM lots l
  JOIN farms f ON l.farm_id = f.id`

func scanLot(row pgx.Row) (*models.Lot, error) {
	var lot models.Lot
	err := row.Scan(&lot.ID, &lot.LotNumber, &lot.FarmID, &lot.FarmName, &lot.FarmCode,
		&lot.HarvestDate, &lot.InitialQuantity, &lot.CurrentStatus, &lot.Notes,
		&lot.CreatedAt, &lot.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *LotRepository) Create(ctx context.Context, l *models.Lot) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO lots(lot_number, farm_id, harvest_date, initial_quantity, current_status, notes)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		l.LotNumber, l.FarmID, l.HarvestDate, l.InitialQuantity, l.CurrentStatus, l.Notes,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LotRepository) Get(ctx context.Context, id int) (*models.Lot, error) {
	lot, err := scanLot(r.DB.QueryRow(ctx, lotSelect+` WHERE l.id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("lot", id)
	}
	return lot, err
}

func (r *LotRepository) GetByNumber(ctx context.Context, lotNumber string) (*models.Lot, error) {
	lot, err := scanLot(r.DB.QueryRow(ctx, lotSelect+` WHERE l.lot_number=$1`, lotNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("lot", lotNumber)
	}
	return lot, err
}

func (r *LotRepository) List(ctx context.Context) ([]*models.Lot, error) {
	rows, err := r.DB.Query(ctx, lotSelect+` ORDER BY l.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lots []*models.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func (r *LotRepository) Update(ctx context.Context, l *models.Lot) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE lots SET harvest_date=$1, initial_quantity=$2, notes=$3, updated_at=NOW()
         WHERE id=$4`,
		l.HarvestDate, l.InitialQuantity, l.Notes, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("lot", l.ID)
	}
	return nil
}

// CountByDatePrefix counts lots whose number carries the given AV-YYMMDD
// prefix, across all farms. The generator turns this into the next sequence.
func (r *LotRepository) CountByDatePrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM lots WHERE lot_number LIKE $1 || '%'`, prefix,
	).Scan(&count)
	return count, err
}

// Stats aggregates lot counts per status for the dashboard.
func (r *LotRepository) Stats(ctx context.Context) (*models.LotStats, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT current_status, COUNT(*) FROM lots GROUP BY current_status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &models.LotStats{ByStatus: make(map[string]int)}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = n
		stats.TotalLots += n
	}
	return stats, rows.Err()
}
