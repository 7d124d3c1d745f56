package repositories

import (
	"context"
	"errors"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LotActivityRepository struct {
	DB *pgxpool.Pool
}

func NewLotActivityRepository(db *pgxpool.Pool) *LotActivityRepository {
	return &LotActivityRepository{DB: db}
}

// CreateWithStatus appends an activity and moves the lot to newStatus in one
// transaction, so a crash can never leave current_status stale relative to
// the activity log.
func (r *LotActivityRepository) CreateWithStatus(ctx context.Context, a *models.LotActivity, newStatus string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO lot_activities(lot_id, activity_type, date_performed, quantity, operator_name, notes, attachments)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at`,
		a.LotID, a.ActivityType, a.DatePerformed, a.Quantity, a.OperatorName, a.Notes, a.Attachments,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE lots SET current_status=$1, updated_at=NOW() WHERE id=$2`,
		newStatus, a.LotID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("lot", a.LotID)
	}

	return tx.Commit(ctx)
}

func (r *LotActivityRepository) Get(ctx context.Context, id int) (*models.LotActivity, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, lot_id, activity_type, date_performed, quantity, operator_name,
                COALESCE(notes, ''), attachments, created_at
         FROM lot_activities WHERE id=$1`, id)

	var a models.LotActivity
	err := row.Scan(&a.ID, &a.LotID, &a.ActivityType, &a.DatePerformed, &a.Quantity,
		&a.OperatorName, &a.Notes, &a.Attachments, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("activity", id)
	}
	if err != nil {
		return nil, err
	}
	if a.Attachments == nil {
		a.Attachments = []string{}
	}
	return &a, nil
}

// ListByLot returns activities in insertion order. Status derivation and the
// API contract both follow id order, not date_performed.
func (r *LotActivityRepository) ListByLot(ctx context.Context, lotID int) ([]*models.LotActivity, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, lot_id, activity_type, date_performed, quantity, operator_name,
                COALESCE(notes, ''), attachments, created_at
         FROM lot_activities WHERE lot_id=$1 ORDER BY id`, lotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.LotActivity
	for rows.Next() {
		var a models.LotActivity
		if err := rows.Scan(&a.ID, &a.LotID, &a.ActivityType, &a.DatePerformed, &a.Quantity,
			&a.OperatorName, &a.Notes, &a.Attachments, &a.CreatedAt); err != nil {
			return nil, err
		}
		if a.Attachments == nil {
			a.Attachments = []string{}
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}

// AppendAttachment records an uploaded object key on an existing activity.
// The activity row itself stays immutable apart from this list.
func (r *LotActivityRepository) AppendAttachment(ctx context.Context, id int, key string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE lot_activities SET attachments = array_append(attachments, $1) WHERE id=$2`,
		key, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("activity", id)
	}
	return nil
}
