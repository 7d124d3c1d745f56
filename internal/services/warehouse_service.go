package services

import (
	"context"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"
	"trace-backend/internal/repositories"
)

type WarehouseService struct {
	Repo *repositories.WarehouseRepository
}

func NewWarehouseService(repo *repositories.WarehouseRepository) *WarehouseService {
	return &WarehouseService{Repo: repo}
}

func (s *WarehouseService) CreateWarehouse(ctx context.Context, req *models.CreateWarehouseRequest) (*models.Warehouse, error) {
	if req.Name == "" {
		return nil, apperrors.Invalid("name", "is required")
	}
	if req.CapacityCrates < 0 {
		return nil, apperrors.Invalid("capacity_crates", "must not be negative")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	w := &models.Warehouse{
		Name:           req.Name,
		Location:       req.Location,
		CapacityCrates: req.CapacityCrates,
		Active:         active,
	}
	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WarehouseService) GetWarehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	return s.Repo.Get(ctx, id)
}

func (s *WarehouseService) ListWarehouses(ctx context.Context) ([]*models.Warehouse, error) {
	return s.Repo.List(ctx)
}

func (s *WarehouseService) UpdateWarehouse(ctx context.Context, id int, req *models.UpdateWarehouseRequest) (*models.Warehouse, error) {
	w, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		w.Name = req.Name
	}
	if req.Location != "" {
		w.Location = req.Location
	}
	if req.CapacityCrates > 0 {
		w.CapacityCrates = req.CapacityCrates
	}
	if req.Active != nil {
		w.Active = *req.Active
	}

	if err := s.Repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *WarehouseService) DeleteWarehouse(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
