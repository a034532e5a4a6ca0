package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, user_id, tender_id, application_status, application_date, notes, created_at, updated_at`

// ApplicationRepo ApplicationRepository over PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepository builds the adapter over a pool or a transaction.
func NewApplicationRepository(db Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func scanApplication(row pgx.Row) (*entity.TenderApplication, error) {
	var a entity.TenderApplication
	err := row.Scan(&a.ID, &a.UserID, &a.TenderID, &a.Status, &a.ApplicationDate, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create maps the (user, tender) unique key to ErrAlreadyApplied and the foreign keys to not-found.
func (r *ApplicationRepo) Create(ctx context.Context, a *entity.TenderApplication) error {
	if !validIDs(a.TenderID) {
		return domain.ErrTenderNotFound
	}
	if !validIDs(a.UserID) {
		return domain.ErrUserNotFound
	}
	query := `INSERT INTO tender_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.UserID, a.TenderID, string(a.Status), a.ApplicationDate, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err) && constraintName(err) == applicationsUserTenderKey:
			return domain.ErrAlreadyApplied
		case isForeignKeyViolation(err) && constraintName(err) == applicationsTenderFK:
			return domain.ErrTenderNotFound
		case isForeignKeyViolation(err) && constraintName(err) == applicationsUserFK:
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepo) getOne(ctx context.Context, query string, args ...any) (*entity.TenderApplication, error) {
	a, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return a, nil
}

func (r *ApplicationRepo) GetByUserAndTender(ctx context.Context, userID, tenderID string) (*entity.TenderApplication, error) {
	if !validIDs(userID, tenderID) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+applicationColumns+` FROM tender_applications WHERE user_id = $1 AND tender_id = $2`,
		userID, tenderID)
}

func (r *ApplicationRepo) GetByIDForUser(ctx context.Context, id, userID string) (*entity.TenderApplication, error) {
	if !validIDs(id, userID) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+applicationColumns+` FROM tender_applications WHERE id = $1 AND user_id = $2`,
		id, userID)
}

// ListByUser newest first, joined with the tender columns shown in listings.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID string) ([]entity.ApplicationWithTender, error) {
	if !validIDs(userID) {
		return []entity.ApplicationWithTender{}, nil
	}
	query := `
		SELECT a.id, a.user_id, a.tender_id, a.application_status, a.application_date, a.notes,
		       a.created_at, a.updated_at,
		       t.id, t.title, t.ref_number, t.status, t.opening_date, t.closing_date
		FROM tender_applications a
		JOIN tenders t ON t.id = a.tender_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC, a.id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	out := []entity.ApplicationWithTender{}
	for rows.Next() {
		var row entity.ApplicationWithTender
		a, t := &row.Application, &row.Tender
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.TenderID, &a.Status, &a.ApplicationDate, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
			&t.ID, &t.Title, &t.RefNumber, &t.Status, &t.OpeningDate, &t.ClosingDate,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DeleteForUser scoped to the owner, so another user's id deletes nothing.
func (r *ApplicationRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	if !validIDs(id, userID) {
		return domain.ErrApplicationNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM tender_applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrApplicationNotFound
		}
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}
