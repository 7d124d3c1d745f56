package services

import (
	"context"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"
	"trace-backend/internal/repositories"
)

type InventoryService struct {
	Repo       *repositories.InventoryRepository
	Lots       LotStore
	Warehouses *repositories.WarehouseRepository
}

func NewInventoryService(repo *repositories.InventoryRepository, lots LotStore, warehouses *repositories.WarehouseRepository) *InventoryService {
	return &InventoryService{Repo: repo, Lots: lots, Warehouses: warehouses}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.Invalid("quantity", "must be positive")
	}
	// Both foreign keys must resolve before inserting
	if _, err := s.Warehouses.Get(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if _, err := s.Lots.Get(ctx, req.LotID); err != nil {
		return nil, err
	}

	unit := req.Unit
	if unit == "" {
		unit = "crate"
	}

	item := &models.InventoryItem{
		WarehouseID: req.WarehouseID,
		LotID:       req.LotID,
		Quantity:    req.Quantity,
		Unit:        unit,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, item.ID)
}

func (s *InventoryService) GetItem(ctx context.Context, id int) (*models.InventoryItem, error) {
	return s.Repo.Get(ctx, id)
}

func (s *InventoryService) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	return s.Repo.List(ctx)
}

func (s *InventoryService) ListByWarehouse(ctx context.Context, warehouseID int) ([]*models.InventoryItem, error) {
	if _, err := s.Warehouses.Get(ctx, warehouseID); err != nil {
		return nil, err
	}
	return s.Repo.ListByWarehouse(ctx, warehouseID)
}

func (s *InventoryService) ListByLot(ctx context.Context, lotID int) ([]*models.InventoryItem, error) {
	if _, err := s.Lots.Get(ctx, lotID); err != nil {
		return nil, err
	}
	return s.Repo.ListByLot(ctx, lotID)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, apperrors.Invalid("quantity", "must be positive")
	}
	item.Quantity = req.Quantity
	if req.Unit != "" {
		item.Unit = req.Unit
	}

	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
