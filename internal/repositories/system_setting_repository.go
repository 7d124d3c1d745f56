package repositories

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SystemSettingRepository struct {
	DB *pgxpool.Pool
}

func NewSystemSettingRepository(db *pgxpool.Pool) *SystemSettingRepository {
	return &SystemSettingRepository{DB: db}
}

func (r *SystemSettingRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at
         FROM system_settings WHERE setting_key=$1`, key)

	var s models.SystemSetting
	err := row.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("setting", key)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetValue returns a setting value, or fallback when the key is absent.
func (r *SystemSettingRepository) GetValue(ctx context.Context, key, fallback string) string {
	s, err := r.Get(ctx, key)
	if err != nil {
		return fallback
	}
	return s.SettingValue
}

func (r *SystemSettingRepository) List(ctx context.Context) ([]*models.SystemSetting, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at
         FROM system_settings ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.SystemSetting
	for rows.Next() {
		var s models.SystemSetting
		if err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, &s)
	}
	return settings, rows.Err()
}

func (r *SystemSettingRepository) Update(ctx context.Context, key, value string) (*models.SystemSetting, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE system_settings SET setting_value=$1, updated_at=NOW() WHERE setting_key=$2`,
		value, key)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NotFound("setting", key)
	}
	return r.Get(ctx, key)
}
