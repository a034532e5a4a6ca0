package repository

import (
	"context"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// TenderFilter criteria for the public tender listing.
type TenderFilter struct {
	Status string // compared case-insensitively
	Search string // substring of title or ref number
	Limit  int
	Offset int
}

// TenderRepository persistence port for Tender.
type TenderRepository interface {
	Create(ctx context.Context, tender *entity.Tender) error
	GetByID(ctx context.Context, id string) (*entity.Tender, error)
	Update(ctx context.Context, tender *entity.Tender) error
	List(ctx context.Context, filter TenderFilter) ([]*entity.Tender, int, error)
}
