package models

import "time"

// SystemSetting is a key/value configuration row (org name printed on lot
// documents, default inventory unit, and similar).
type SystemSetting struct {
	ID           int       `json:"id"`
	SettingKey   string    `json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	Description  string    `json:"description,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateSettingRequest represents the request body for changing a setting
type UpdateSettingRequest struct {
	SettingValue string `json:"setting_value"`
}
