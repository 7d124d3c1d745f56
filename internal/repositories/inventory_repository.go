package repositories

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryRepository struct {
	DB *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

const inventorySelect = `SELECT i.id, i.warehouse_id, i.lot_id, l.lot_number,
       i.quantity, i.unit, i.created_at, i.updated_at
  FROM inventory_items i
  JOIN lots l ON i.lot_id = l.id`

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO inventory_items(warehouse_id, lot_id, quantity, unit)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		item.WarehouseID, item.LotID, item.Quantity, item.Unit,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InventoryRepository) Get(ctx context.Context, id int) (*models.InventoryItem, error) {
	row := r.DB.QueryRow(ctx, inventorySelect+` WHERE i.id=$1`, id)

	var item models.InventoryItem
	err := row.Scan(&item.ID, &item.WarehouseID, &item.LotID, &item.LotNumber,
		&item.Quantity, &item.Unit, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("inventory item", id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.InventoryItem, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.WarehouseID, &item.LotID, &item.LotNumber,
			&item.Quantity, &item.Unit, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	return r.list(ctx, inventorySelect+` ORDER BY i.id`)
}

func (r *InventoryRepository) ListByWarehouse(ctx context.Context, warehouseID int) ([]*models.InventoryItem, error) {
	return r.list(ctx, inventorySelect+` WHERE i.warehouse_id=$1 ORDER BY i.id`, warehouseID)
}

func (r *InventoryRepository) ListByLot(ctx context.Context, lotID int) ([]*models.InventoryItem, error) {
	return r.list(ctx, inventorySelect+` WHERE i.lot_id=$1 ORDER BY i.id`, lotID)
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE inventory_items SET quantity=$1, unit=$2, updated_at=NOW() WHERE id=$3`,
		item.Quantity, item.Unit, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("inventory item", item.ID)
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM inventory_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("inventory item", id)
	}
	return nil
}
