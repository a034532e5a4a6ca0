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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, name, password_hash, role, is_active,
	company_name, phone_number, address, department, position, government_id,
	business_registration_number, tax_id, bidder_category, certifications,
	subscription_tier, subscription_expiry, created_at, updated_at`

// UserRepo UserRepository over PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository builds the adapter over a pool or a transaction.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.IsActive,
		&u.CompanyName, &u.PhoneNumber, &u.Address, &u.Department, &u.Position, &u.GovernmentID,
		&u.BusinessRegistrationNumber, &u.TaxID, &u.BidderCategory, &u.Certifications,
		&u.SubscriptionTier, &u.SubscriptionExpiry, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func userArgs(u *entity.User) []any {
	return []any{
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.IsActive,
		u.CompanyName, u.PhoneNumber, u.Address, u.Department, u.Position, u.GovernmentID,
		u.BusinessRegistrationNumber, u.TaxID, u.BidderCategory, u.Certifications,
		string(u.SubscriptionTier), u.SubscriptionExpiry, u.CreatedAt, u.UpdatedAt,
	}
}

// Create inserts a user. A taken email (any letter case) is ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	if _, err := r.db.Exec(ctx, query, userArgs(user)...); err != nil {
		if isUniqueViolation(err) && constraintName(err) == usersEmailKey {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID nil, nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validIDs(id) {
		return nil, nil
	}
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail case-insensitive; nil, nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update overwrites every mutable column.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	if !validIDs(user.ID) {
		return domain.ErrUserNotFound
	}
	query := `
		UPDATE users SET
			email = $2, name = $3, password_hash = $4, role = $5, is_active = $6,
			company_name = $7, phone_number = $8, address = $9, department = $10, position = $11,
			government_id = $12, business_registration_number = $13, tax_id = $14,
			bidder_category = $15, certifications = $16, subscription_tier = $17,
			subscription_expiry = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.IsActive,
		user.CompanyName, user.PhoneNumber, user.Address, user.Department, user.Position,
		user.GovernmentID, user.BusinessRegistrationNumber, user.TaxID,
		user.BidderCategory, user.Certifications, string(user.SubscriptionTier),
		user.SubscriptionExpiry, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) && constraintName(err) == usersEmailKey {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user; applications go with it (ON DELETE CASCADE).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if !validIDs(id) {
		return domain.ErrUserNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List one page of the directory plus the total match count.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	where, args := userListWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		userColumns, where, userListOrder(f), len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0, f.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return list, total, nil
}

// userListWhere AND-ed filters with positional arguments; "" when unfiltered.
func userListWhere(f repository.UserFilter) (string, []any) {
	var conds []string
	var args []any
	if search := strings.TrimSpace(f.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR company_name ILIKE $%d)", n, n, n))
	}
	if f.Role != "" {
		args = append(args, string(f.Role))
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// userListOrder only whitelisted columns reach the SQL text.
func userListOrder(f repository.UserFilter) string {
	col := "created_at"
	switch f.SortBy {
	case repository.UserSortName:
		col = "name"
	case repository.UserSortEmail:
		col = "email"
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, id %s", col, dir, dir)
}

// escapeLike makes %, _ and \ match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
