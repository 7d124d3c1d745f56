package services

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"
)

type FarmService struct {
	Farms FarmStore
}

func NewFarmService(farms FarmStore) *FarmService {
	return &FarmService{Farms: farms}
}

func (s *FarmService) CreateFarm(ctx context.Context, req *models.CreateFarmRequest) (*models.Farm, error) {
	if req.Name == "" {
		return nil, apperrors.Invalid("name", "is required")
	}
	if req.Code == "" {
		return nil, apperrors.Invalid("code", "is required")
	}

	// Farm codes are unique; the UNIQUE constraint backs this check up.
	existing, err := s.Farms.GetByCode(ctx, req.Code)
	if err != nil {
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}
	if existing != nil {
		return nil, apperrors.Conflict("farm", "code", req.Code)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	farm := &models.Farm{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Code:        req.Code,
		Active:      active,
	}
	if err := s.Farms.Create(ctx, farm); err != nil {
		return nil, err
	}
	return farm, nil
}

func (s *FarmService) GetFarm(ctx context.Context, id int) (*models.Farm, error) {
	return s.Farms.Get(ctx, id)
}

func (s *FarmService) GetFarmByCode(ctx context.Context, code string) (*models.Farm, error) {
	return s.Farms.GetByCode(ctx, code)
}

func (s *FarmService) ListFarms(ctx context.Context) ([]*models.Farm, error) {
	return s.Farms.List(ctx)
}

// UpdateFarm changes farm metadata. The code is immutable once assigned:
// lots and activities reference it on printed documents.
func (s *FarmService) UpdateFarm(ctx context.Context, id int, req *models.UpdateFarmRequest) (*models.Farm, error) {
	farm, err := s.Farms.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		farm.Name = req.Name
	}
	if req.Location != "" {
		farm.Location = req.Location
	}
	if req.Description != "" {
		farm.Description = req.Description
	}
	if req.Active != nil {
		farm.Active = *req.Active
	}

	if err := s.Farms.Update(ctx, farm); err != nil {
		return nil, err
	}
	return s.Farms.Get(ctx, id)
}

func (s *FarmService) DeleteFarm(ctx context.Context, id int) error {
	return s.Farms.Delete(ctx, id)
}
