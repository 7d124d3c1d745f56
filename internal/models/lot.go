package models

import "time"

// Lot statuses, one per activity type. current_status is derived from the
// most-recently-inserted activity and is never set independently.
const (
	StatusHarvested = "harvested"
	StatusPackaged  = "packaged"
	StatusCooled    = "cooled"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

type Lot struct {
	ID              int       `json:"id"`
	LotNumber       string    `json:"lot_number"` // AV-YYMMDD-NNN
	FarmID          int       `json:"farm_id"`
	FarmName        string    `json:"farm_name,omitempty"` // Denormalized for display
	FarmCode        string    `json:"farm_code,omitempty"`
	HarvestDate     time.Time `json:"harvest_date"`
	InitialQuantity int       `json:"initial_quantity"`
	CurrentStatus   string    `json:"current_status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateLotRequest represents the request body for creating a lot.
// LotNumber is optional; when omitted the server assigns the next number
// for the harvest date.
type CreateLotRequest struct {
	FarmID          int       `json:"farm_id"`
	LotNumber       string    `json:"lot_number"`
	HarvestDate     time.Time `json:"harvest_date"`
	InitialQuantity int       `json:"initial_quantity"`
	CurrentStatus   string    `json:"current_status"`
	OperatorName    string    `json:"operator_name"`
	Notes           string    `json:"notes"`
}

// UpdateLotRequest represents the request body for updating lot metadata.
// Status is not part of it: status only moves through recorded activities.
type UpdateLotRequest struct {
	HarvestDate     *time.Time `json:"harvest_date"`
	InitialQuantity *int       `json:"initial_quantity"`
	Notes           *string    `json:"notes"`
}

// BarcodeResponse is the payload of GET /api/lots/{id}/barcode
type BarcodeResponse struct {
	BarcodeImage string    `json:"barcode_image"` // data:image/png;base64,...
	LotNumber    string    `json:"lot_number"`
	FarmName     string    `json:"farm_name"`
	HarvestDate  time.Time `json:"harvest_date"`
}

// LotStats summarizes lots per status for the dashboard
type LotStats struct {
	TotalLots int            `json:"total_lots"`
	ByStatus  map[string]int `json:"by_status"`
}
