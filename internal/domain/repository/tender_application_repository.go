package repository

import (
	"context"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// ApplicationRepository persistence port for TenderApplication.
// Create must fail with a Conflict-kinded error when (user, tender) already exists.
type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.TenderApplication) error
	GetByUserAndTender(ctx context.Context, userID, tenderID string) (*entity.TenderApplication, error)
	// GetByIDForUser only finds applications owned by userID.
	GetByIDForUser(ctx context.Context, id, userID string) (*entity.TenderApplication, error)
	// ListByUser newest first, joined with the tender summary.
	ListByUser(ctx context.Context, userID string) ([]entity.ApplicationWithTender, error)
	DeleteForUser(ctx context.Context, id, userID string) error
}
