package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.TenderRepository = (*TenderRepo)(nil)

const tenderColumns = `id, title, ref_number, status, opening_date, closing_date,
	bid_document_key, bid_document_url, bid_report_key, bid_report_url, amendments, created_at, updated_at`

// TenderRepo TenderRepository over PostgreSQL.
type TenderRepo struct {
	db Querier
}

// NewTenderRepository builds the adapter over a pool or a transaction.
func NewTenderRepository(db Querier) *TenderRepo {
	return &TenderRepo{db: db}
}

func scanTender(row pgx.Row) (*entity.Tender, error) {
	var t entity.Tender
	err := row.Scan(
		&t.ID, &t.Title, &t.RefNumber, &t.Status, &t.OpeningDate, &t.ClosingDate,
		&t.BidDocument.Key, &t.BidDocument.URL, &t.BidReport.Key, &t.BidReport.URL,
		&t.Amendments, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenderRepo) Create(ctx context.Context, t *entity.Tender) error {
	query := `INSERT INTO tenders (` + tenderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.RefNumber, string(t.Status), t.OpeningDate, t.ClosingDate,
		t.BidDocument.Key, t.BidDocument.URL, t.BidReport.Key, t.BidReport.URL,
		t.Amendments, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tender: %w", err)
	}
	return nil
}

// GetByID nil, nil when absent.
func (r *TenderRepo) GetByID(ctx context.Context, id string) (*entity.Tender, error) {
	if !validIDs(id) {
		return nil, nil
	}
	t, err := scanTender(r.db.QueryRow(ctx, `SELECT `+tenderColumns+` FROM tenders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tender by id: %w", err)
	}
	return t, nil
}

func (r *TenderRepo) Update(ctx context.Context, t *entity.Tender) error {
	if !validIDs(t.ID) {
		return domain.ErrTenderNotFound
	}
	query := `
		UPDATE tenders SET
			title = $2, ref_number = $3, status = $4, opening_date = $5, closing_date = $6,
			bid_document_key = $7, bid_document_url = $8, bid_report_key = $9, bid_report_url = $10,
			amendments = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.RefNumber, string(t.Status), t.OpeningDate, t.ClosingDate,
		t.BidDocument.Key, t.BidDocument.URL, t.BidReport.Key, t.BidReport.URL,
		t.Amendments, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTenderNotFound
	}
	return nil
}

// List ordered by closing date, newest first, undated tenders last.
func (r *TenderRepo) List(ctx context.Context, f repository.TenderFilter) ([]*entity.Tender, int, error) {
	var conds []string
	var args []any
	if f.Status != "" {
		args = append(args, entity.TenderStatus(f.Status).Normalized())
		conds = append(conds, fmt.Sprintf("lower(trim(status)) = $%d", len(args)))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR ref_number ILIKE $%d)", len(args), len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tenders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tenders: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM tenders%s ORDER BY closing_date DESC NULLS LAST, id LIMIT $%d OFFSET $%d`,
		tenderColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tenders: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Tender, 0, f.Limit)
	for rows.Next() {
		t, err := scanTender(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan tender: %w", err)
		}
		list = append(list, t)
	}
	return list, total, rows.Err()
}
