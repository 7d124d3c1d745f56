package models

import "time"

// Activity types. The list is closed: each type maps to exactly one lot status.
const (
	ActivityHarvest = "harvest"
	ActivityPackage = "package"
	ActivityCool    = "cool"
	ActivityShip    = "ship"
	ActivityDeliver = "deliver"
)

// statusByActivity is the fixed activity → status table. Recording an
// activity of a given type always leaves the lot in the mapped status,
// regardless of what the previous status was.
var statusByActivity = map[string]string{
	ActivityHarvest: StatusHarvested,
	ActivityPackage: StatusPackaged,
	ActivityCool:    StatusCooled,
	ActivityShip:    StatusShipped,
	ActivityDeliver: StatusDelivered,
}

// StatusForActivity returns the lot status implied by an activity type.
func StatusForActivity(activityType string) (string, bool) {
	s, ok := statusByActivity[activityType]
	return s, ok
}

// LotActivity is an append-only lifecycle event. Rows are never updated or
// deleted; attachments are the only field that grows after insert.
type LotActivity struct {
	ID            int       `json:"id"`
	LotID         int       `json:"lot_id"`
	ActivityType  string    `json:"activity_type"`
	DatePerformed time.Time `json:"date_performed"`
	Quantity      int       `json:"quantity"`
	OperatorName  string    `json:"operator_name"`
	Notes         string    `json:"notes,omitempty"`
	Attachments   []string  `json:"attachments"` // object-store keys
	CreatedAt     time.Time `json:"created_at"`
}

// RecordActivityRequest represents the request body for recording an activity
type RecordActivityRequest struct {
	ActivityType  string    `json:"activity_type"`
	DatePerformed time.Time `json:"date_performed"`
	Quantity      int       `json:"quantity"`
	OperatorName  string    `json:"operator_name"`
	Notes         string    `json:"notes"`
}
