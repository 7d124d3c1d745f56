package services

import (
	"context"
	"fmt"
	"time"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/metrics"
	"trace-backend/internal/models"
)

// lotNumberPrefix is a persisted convention: lot numbers must keep the
// AV-YYMMDD-NNN shape for manual entry and scanner parsing.
const lotNumberPrefix = "AV"

// maxDailySequence is the widest sequence the 3-digit field can carry.
// Beyond it the generator refuses rather than widening the format.
const maxDailySequence = 999

type LotService struct {
	Lots       LotStore
	Activities ActivityStore
	Farms      FarmStore
	Publisher  ActivityPublisher // optional
}

func NewLotService(lots LotStore, activities ActivityStore, farms FarmStore) *LotService {
	return &LotService{Lots: lots, Activities: activities, Farms: farms}
}

// SetPublisher wires the live activity feed. Safe to leave unset.
func (s *LotService) SetPublisher(p ActivityPublisher) {
	s.Publisher = p
}

// GenerateLotNumber allocates the next AV-YYMMDD-NNN number for a harvest
// date. The sequence counts all lots sharing the date prefix, across farms,
// computed at call time. Concurrent inserts are not re-checked; the UNIQUE
// constraint on lots.lot_number surfaces the rare race as a storage error.
func (s *LotService) GenerateLotNumber(ctx context.Context, date time.Time) (string, error) {
	return s.generate(ctx, date.Format("060102"))
}

func (s *LotService) generate(ctx context.Context, yymmdd string) (string, error) {
	prefix := fmt.Sprintf("%s-%s", lotNumberPrefix, yymmdd)
	count, err := s.Lots.CountByDatePrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to count lots for %s: %w", prefix, err)
	}

	seq := count + 1
	if seq > maxDailySequence {
		return "", apperrors.Invalid("lot_number", fmt.Sprintf("daily sequence for %s exhausted (max %d)", prefix, maxDailySequence))
	}
	return fmt.Sprintf("%s-%03d", prefix, seq), nil
}

// CreateLot validates and stores a new lot. When the request omits the lot
// number the generator assigns one. A lot created in "harvested" status gets
// an implicit initial harvest activity.
func (s *LotService) CreateLot(ctx context.Context, req *models.CreateLotRequest) (*models.Lot, error) {
	if req.FarmID <= 0 {
		return nil, apperrors.Invalid("farm_id", "is required")
	}
	if req.InitialQuantity <= 0 {
		return nil, apperrors.Invalid("initial_quantity", "must be positive")
	}
	if req.HarvestDate.IsZero() {
		return nil, apperrors.Invalid("harvest_date", "is required")
	}

	farm, err := s.Farms.Get(ctx, req.FarmID)
	if err != nil {
		return nil, err
	}

	status := req.CurrentStatus
	if status == "" {
		status = models.StatusHarvested
	}
	if !validStatus(status) {
		return nil, apperrors.Invalid("current_status", fmt.Sprintf("unknown status %q", status))
	}

	lotNumber := req.LotNumber
	if lotNumber == "" {
		lotNumber, err = s.generate(ctx, req.HarvestDate.Format("060102"))
		if err != nil {
			return nil, err
		}
	}

	lot := &models.Lot{
		LotNumber:       lotNumber,
		FarmID:          req.FarmID,
		FarmName:        farm.Name,
		FarmCode:        farm.Code,
		HarvestDate:     req.HarvestDate,
		InitialQuantity: req.InitialQuantity,
		CurrentStatus:   status,
		Notes:           req.Notes,
	}
	if err := s.Lots.Create(ctx, lot); err != nil {
		return nil, err
	}
	metrics.LotsCreated.Inc()

	// Implicit initial harvest activity for lots entering as harvested.
	if status == models.StatusHarvested {
		operator := req.OperatorName
		if operator == "" {
			operator = "intake"
		}
		activity := &models.LotActivity{
			LotID:         lot.ID,
			ActivityType:  models.ActivityHarvest,
			DatePerformed: req.HarvestDate,
			Quantity:      req.InitialQuantity,
			OperatorName:  operator,
			Attachments:   []string{},
		}
		if err := s.Activities.CreateWithStatus(ctx, activity, models.StatusHarvested); err != nil {
			return nil, fmt.Errorf("failed to record initial harvest activity: %w", err)
		}
		metrics.ActivitiesRecorded.WithLabelValues(models.ActivityHarvest).Inc()
		s.publish(activity)
	}

	return lot, nil
}

// RecordActivity appends an activity to a lot's history and moves the lot to
// the status mapped from the activity type. There is no transition guard: any
// type is accepted in any current status, and a later insert always wins,
// regardless of date_performed. That insertion-order policy mirrors how the
// paper trail is entered in practice (activities are keyed in as they happen).
func (s *LotService) RecordActivity(ctx context.Context, lotID int, req *models.RecordActivityRequest) (*models.LotActivity, error) {
	if _, err := s.Lots.Get(ctx, lotID); err != nil {
		return nil, err
	}

	status, ok := models.StatusForActivity(req.ActivityType)
	if !ok {
		return nil, apperrors.Invalid("activity_type", fmt.Sprintf("unknown activity type %q", req.ActivityType))
	}
	if req.Quantity <= 0 {
		return nil, apperrors.Invalid("quantity", "must be positive")
	}
	if req.OperatorName == "" {
		return nil, apperrors.Invalid("operator_name", "is required")
	}
	if req.DatePerformed.IsZero() {
		return nil, apperrors.Invalid("date_performed", "is required")
	}

	activity := &models.LotActivity{
		LotID:         lotID,
		ActivityType:  req.ActivityType,
		DatePerformed: req.DatePerformed,
		Quantity:      req.Quantity,
		OperatorName:  req.OperatorName,
		Notes:         req.Notes,
		Attachments:   []string{},
	}
	if err := s.Activities.CreateWithStatus(ctx, activity, status); err != nil {
		return nil, err
	}
	metrics.ActivitiesRecorded.WithLabelValues(req.ActivityType).Inc()
	s.publish(activity)

	return activity, nil
}

func (s *LotService) GetLot(ctx context.Context, id int) (*models.Lot, error) {
	return s.Lots.Get(ctx, id)
}

func (s *LotService) GetLotByNumber(ctx context.Context, lotNumber string) (*models.Lot, error) {
	return s.Lots.GetByNumber(ctx, lotNumber)
}

func (s *LotService) ListLots(ctx context.Context) ([]*models.Lot, error) {
	return s.Lots.List(ctx)
}

func (s *LotService) ListActivities(ctx context.Context, lotID int) ([]*models.LotActivity, error) {
	if _, err := s.Lots.Get(ctx, lotID); err != nil {
		return nil, err
	}
	return s.Activities.ListByLot(ctx, lotID)
}

func (s *LotService) Stats(ctx context.Context) (*models.LotStats, error) {
	return s.Lots.Stats(ctx)
}

// UpdateLot patches lot metadata. Status and lot number stay untouched:
// status only moves through activities, and the number is a persisted
// identifier once assigned.
func (s *LotService) UpdateLot(ctx context.Context, id int, req *models.UpdateLotRequest) (*models.Lot, error) {
	lot, err := s.Lots.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HarvestDate != nil {
		lot.HarvestDate = *req.HarvestDate
	}
	if req.InitialQuantity != nil {
		if *req.InitialQuantity <= 0 {
			return nil, apperrors.Invalid("initial_quantity", "must be positive")
		}
		lot.InitialQuantity = *req.InitialQuantity
	}
	if req.Notes != nil {
		lot.Notes = *req.Notes
	}

	if err := s.Lots.Update(ctx, lot); err != nil {
		return nil, err
	}
	return s.Lots.Get(ctx, id)
}

func (s *LotService) publish(a *models.LotActivity) {
	if s.Publisher != nil {
		s.Publisher.PublishActivity(a)
	}
}

func validStatus(status string) bool {
	switch status {
	case models.StatusHarvested, models.StatusPackaged, models.StatusCooled,
		models.StatusShipped, models.StatusDelivered:
		return true
	}
	return false
}
