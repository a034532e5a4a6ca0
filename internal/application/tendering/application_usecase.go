// Package tendering holds the tender application lifecycle: bidders apply to open tenders
// and may withdraw while the application is still pending.
package tendering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/ports"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

// ApplicationUseCase lists, creates and withdraws the actor's own applications.
type ApplicationUseCase struct {
	appRepo    repository.ApplicationRepository
	tenderRepo repository.TenderRepository
	userRepo   repository.UserRepository
	tx         ports.TxRunner
	receipts   ports.ReceiptGenerator
	now        func() time.Time
}

// NewApplicationUseCase builds the use case. receipts may be nil when PDF receipts are not served.
func NewApplicationUseCase(
	appRepo repository.ApplicationRepository,
	tenderRepo repository.TenderRepository,
	userRepo repository.UserRepository,
	tx ports.TxRunner,
	receipts ports.ReceiptGenerator,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		appRepo:    appRepo,
		tenderRepo: tenderRepo,
		userRepo:   userRepo,
		tx:         tx,
		receipts:   receipts,
		now:        time.Now,
	}
}

// List every application of the actor, newest first, with its tender summary.
func (uc *ApplicationUseCase) List(ctx context.Context, actor access.Actor) (*dto.ApplicationListResponse, error) {
	if err := access.RequireActor(actor); err != nil {
		return nil, err
	}
	rows, err := uc.appRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewApplicationListItem(row))
	}
	return &dto.ApplicationListResponse{Applications: items}, nil
}

// Create applies the actor to a tender. Checks run in this order: tender id present,
// no previous application, tender exists, tender open.
// The duplicate check and insert share one transaction; the unique (user, tender)
// constraint still reports a concurrent duplicate as ErrAlreadyApplied.
func (uc *ApplicationUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := access.RequireActor(actor); err != nil {
		return nil, err
	}
	tenderID := strings.TrimSpace(in.TenderID)
	if tenderID == "" {
		return nil, domain.ErrTenderIDRequired
	}

	var created *entity.TenderApplication
	err := uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		tenderRepo repository.TenderRepository,
		appRepo repository.ApplicationRepository,
	) error {
		existing, err := appRepo.GetByUserAndTender(ctx, actor.ID, tenderID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyApplied
		}

		tender, err := tenderRepo.GetByID(ctx, tenderID)
		if err != nil {
			return err
		}
		if tender == nil {
			return domain.ErrTenderNotFound
		}
		if !tender.AcceptsApplications() {
			return domain.ErrTenderNotOpen
		}

		now := uc.now()
		app := &entity.TenderApplication{
			ID:              uuid.New().String(),
			UserID:          actor.ID,
			TenderID:        tenderID,
			Status:          entity.ApplicationStatusSubmitted,
			ApplicationDate: now,
			Notes:           normalizeNotes(in.Notes),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := appRepo.Create(ctx, app); err != nil {
			return err
		}
		created = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.NewApplicationResponse(created)
	return &resp, nil
}

// Withdraw deletes one of the actor's pending applications. Applications of other users
// are reported as not found.
func (uc *ApplicationUseCase) Withdraw(ctx context.Context, actor access.Actor, applicationID string) error {
	if err := access.RequireActor(actor); err != nil {
		return err
	}
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return domain.ErrApplicationIDRequired
	}
	return uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.TenderRepository,
		appRepo repository.ApplicationRepository,
	) error {
		app, err := appRepo.GetByIDForUser(ctx, applicationID, actor.ID)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrApplicationNotFound
		}
		if !app.Withdrawable() {
			return domain.ErrApplicationNotPending
		}
		return appRepo.DeleteForUser(ctx, applicationID, actor.ID)
	})
}

// Receipt renders the acknowledgement PDF of one of the actor's applications.
// Returns the PDF and a suggested file name.
func (uc *ApplicationUseCase) Receipt(ctx context.Context, actor access.Actor, applicationID string) ([]byte, string, error) {
	if err := access.RequireActor(actor); err != nil {
		return nil, "", err
	}
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("receipt generator not configured")
	}
	app, err := uc.appRepo.GetByIDForUser(ctx, strings.TrimSpace(applicationID), actor.ID)
	if err != nil {
		return nil, "", err
	}
	if app == nil {
		return nil, "", domain.ErrApplicationNotFound
	}
	tender, err := uc.tenderRepo.GetByID(ctx, app.TenderID)
	if err != nil {
		return nil, "", err
	}
	if tender == nil {
		return nil, "", domain.ErrTenderNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	receipt := &dto.ApplicationReceipt{
		ApplicationID:   app.ID,
		Status:          string(app.Status),
		ApplicationDate: app.ApplicationDate,
		ApplicantName:   user.Name,
		ApplicantEmail:  user.Email,
		CompanyName:     user.CompanyName,
		TenderTitle:     tender.Title,
		TenderRef:       tender.RefNumber,
		ClosingDate:     tender.ClosingDate,
	}
	if app.Notes != nil {
		receipt.Notes = *app.Notes
	}
	pdf, err := uc.receipts.GenerateApplicationReceipt(receipt)
	if err != nil {
		return nil, "", fmt.Errorf("render receipt: %w", err)
	}
	return pdf, fmt.Sprintf("application-%s.pdf", app.ID), nil
}

// normalizeNotes blank notes are stored as NULL.
func normalizeNotes(notes *string) *string {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return nil
	}
	n := *notes
	return &n
}
