package models

import "time"

type Warehouse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	CapacityCrates int       `json:"capacity_crates"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateWarehouseRequest represents the request body for creating a warehouse
type CreateWarehouseRequest struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	CapacityCrates int    `json:"capacity_crates"`
	Active         *bool  `json:"active"`
}

// UpdateWarehouseRequest represents the request body for updating a warehouse
type UpdateWarehouseRequest struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	CapacityCrates int    `json:"capacity_crates"`
	Active         *bool  `json:"active"`
}
