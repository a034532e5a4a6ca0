package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository works
// inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation 23505.
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == "23505"
}

// isInvalidText 22P02, raised when a value does not parse as the column type.
func isInvalidText(err error) bool {
	return pgErrorCode(err) == "22P02"
}

// validIDs every id column is uuid; any other shape cannot match a row.
func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

// isForeignKeyViolation 23503.
func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == "23503"
}

// constraintName the violated constraint, "" when unknown.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Constraint names from migrations/.
const (
	usersEmailKey             = "users_email_lower_key"
	applicationsUserTenderKey = "tender_applications_user_tender_key"
	applicationsTenderFK      = "tender_applications_tender_id_fkey"
	applicationsUserFK        = "tender_applications_user_id_fkey"
)
