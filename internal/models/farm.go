package models

import "time"

type Farm struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Code        string    `json:"code"` // Unique farm code, e.g. FA-001
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateFarmRequest represents the request body for creating a farm
type CreateFarmRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Active      *bool  `json:"active"`
}

// UpdateFarmRequest represents the request body for updating a farm
type UpdateFarmRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}
