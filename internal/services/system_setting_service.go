package services

import (
	"context"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"
	"trace-backend/internal/repositories"
)

type SystemSettingService struct {
	Repo *repositories.SystemSettingRepository
}

func NewSystemSettingService(repo *repositories.SystemSettingRepository) *SystemSettingService {
	return &SystemSettingService{Repo: repo}
}

func (s *SystemSettingService) GetSetting(ctx context.Context, key string) (*models.SystemSetting, error) {
	return s.Repo.Get(ctx, key)
}

func (s *SystemSettingService) ListSettings(ctx context.Context) ([]*models.SystemSetting, error) {
	return s.Repo.List(ctx)
}

func (s *SystemSettingService) UpdateSetting(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SystemSetting, error) {
	if req.SettingValue == "" {
		return nil, apperrors.Invalid("setting_value", "is required")
	}
	return s.Repo.Update(ctx, key, req.SettingValue)
}
