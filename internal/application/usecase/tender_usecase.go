package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

// TenderUseCase public catalogue plus publishing for officials and admins.
type TenderUseCase struct {
	repo repository.TenderRepository
	now  func() time.Time
}

// NewTenderUseCase builds the use case.
func NewTenderUseCase(repo repository.TenderRepository) *TenderUseCase {
	return &TenderUseCase{repo: repo, now: time.Now}
}

// List filters by status (any letter case) and title/ref search.
func (uc *TenderUseCase) List(ctx context.Context, q dto.TenderListQuery) (*dto.TenderListResponse, error) {
	q.PageRequest.Normalize()
	tenders, total, err := uc.repo.List(ctx, repository.TenderFilter{
		Status: strings.TrimSpace(q.Status),
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: q.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TenderResponse, 0, len(tenders))
	for _, t := range tenders {
		out = append(out, *dto.NewTenderResponse(t))
	}
	return &dto.TenderListResponse{Tenders: out, Pagination: dto.NewPagination(q.PageRequest, total)}, nil
}

// GetByID one tender.
func (uc *TenderUseCase) GetByID(ctx context.Context, id string) (*dto.TenderResponse, error) {
	tender, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, domain.ErrTenderNotFound
	}
	return dto.NewTenderResponse(tender), nil
}

// Create publishes a tender. The status string is stored as given.
func (uc *TenderUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateTenderRequest) (*dto.TenderResponse, error) {
	if err := access.Require(actor, access.CanCreateTender); err != nil {
		return nil, err
	}
	if err := domain.Required("title", in.Title, "status", in.Status); err != nil {
		return nil, err
	}
	if in.OpeningDate != nil && in.ClosingDate != nil && in.ClosingDate.Before(*in.OpeningDate) {
		return nil, domain.Invalid("VALIDATION_ERROR", "closing date must not precede opening date")
	}
	now := uc.now()
	tender := &entity.Tender{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		RefNumber:   strings.TrimSpace(in.RefNumber),
		Status:      entity.TenderStatus(strings.TrimSpace(in.Status)),
		OpeningDate: in.OpeningDate,
		ClosingDate: in.ClosingDate,
		Amendments:  in.Amendments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, tender); err != nil {
		return nil, err
	}
	return dto.NewTenderResponse(tender), nil
}

// Update partial update by officials and admins.
func (uc *TenderUseCase) Update(ctx context.Context, actor access.Actor, id string, in dto.UpdateTenderRequest) (*dto.TenderResponse, error) {
	if err := access.Require(actor, access.CanCreateTender); err != nil {
		return nil, err
	}
	tender, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, domain.ErrTenderNotFound
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.Invalid("VALIDATION_ERROR", "title cannot be empty")
		}
		tender.Title = strings.TrimSpace(*in.Title)
	}
	if in.Status != nil {
		if strings.TrimSpace(*in.Status) == "" {
			return nil, domain.Invalid("VALIDATION_ERROR", "status cannot be empty")
		}
		tender.Status = entity.TenderStatus(strings.TrimSpace(*in.Status))
	}
	setString(&tender.RefNumber, in.RefNumber)
	if in.Amendments != nil {
		tender.Amendments = *in.Amendments
	}
	if in.OpeningDate != nil {
		tender.OpeningDate = in.OpeningDate
	}
	if in.ClosingDate != nil {
		tender.ClosingDate = in.ClosingDate
	}
	tender.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, tender); err != nil {
		return nil, err
	}
	return dto.NewTenderResponse(tender), nil
}

// AttachDocument records a stored file as the tender's bid document or bid report.
func (uc *TenderUseCase) AttachDocument(ctx context.Context, actor access.Actor, id string, kind entity.DocumentKind, obj entity.StoredObject) error {
	if err := access.Require(actor, access.CanUploadDocument); err != nil {
		return err
	}
	tender, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tender == nil {
		return domain.ErrTenderNotFound
	}
	tender.Attach(kind, obj)
	tender.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, tender)
}
