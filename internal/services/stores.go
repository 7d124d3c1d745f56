package services

import (
	"context"

	"trace-backend/internal/models"
)

// Store interfaces cover exactly the repository surface the services consume.
// The pgx repositories in internal/repositories satisfy them; tests use
// in-memory fakes.

type LotStore interface {
	Create(ctx context.Context, l *models.Lot) error
	Get(ctx context.Context, id int) (*models.Lot, error)
	GetByNumber(ctx context.Context, lotNumber string) (*models.Lot, error)
	List(ctx context.Context) ([]*models.Lot, error)
	Update(ctx context.Context, l *models.Lot) error
	CountByDatePrefix(ctx context.Context, prefix string) (int, error)
	Stats(ctx context.Context) (*models.LotStats, error)
}

type ActivityStore interface {
	CreateWithStatus(ctx context.Context, a *models.LotActivity, newStatus string) error
	Get(ctx context.Context, id int) (*models.LotActivity, error)
	ListByLot(ctx context.Context, lotID int) ([]*models.LotActivity, error)
	AppendAttachment(ctx context.Context, id int, key string) error
}

type FarmStore interface {
	Create(ctx context.Context, f *models.Farm) error
	Get(ctx context.Context, id int) (*models.Farm, error)
	GetByCode(ctx context.Context, code string) (*models.Farm, error)
	List(ctx context.Context) ([]*models.Farm, error)
	Update(ctx context.Context, f *models.Farm) error
	Delete(ctx context.Context, id int) error
}

// ActivityPublisher fans recorded activities out to live dashboard clients.
type ActivityPublisher interface {
	PublishActivity(a *models.LotActivity)
}
