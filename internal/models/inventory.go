package models

import "time"

// InventoryItem is a stock position: how much of a lot sits in a warehouse.
type InventoryItem struct {
	ID          int       `json:"id"`
	WarehouseID int       `json:"warehouse_id"`
	LotID       int       `json:"lot_id"`
	LotNumber   string    `json:"lot_number,omitempty"` // Denormalized for display
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"` // crate, kg, pallet
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInventoryItemRequest represents the request body for adding stock
type CreateInventoryItemRequest struct {
	WarehouseID int    `json:"warehouse_id"`
	LotID       int    `json:"lot_id"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
}

// UpdateInventoryItemRequest represents the request body for adjusting stock
type UpdateInventoryItemRequest struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}
