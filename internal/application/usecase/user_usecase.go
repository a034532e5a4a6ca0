package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YudheerRM/bidding-insights/internal/application/auth"
	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/ports"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

// UserDirectoryUseCase admin user management plus the self-service profile operations.
type UserDirectoryUseCase struct {
	repo repository.UserRepository
	tx   ports.TxRunner
	now  func() time.Time
}

// NewUserDirectoryUseCase builds the use case.
func NewUserDirectoryUseCase(repo repository.UserRepository, tx ports.TxRunner) *UserDirectoryUseCase {
	return &UserDirectoryUseCase{repo: repo, tx: tx, now: time.Now}
}

// List filters, sorts and paginates the directory. Defaults: page 1, limit 10, newest first.
func (uc *UserDirectoryUseCase) List(ctx context.Context, actor access.Actor, q dto.UserListQuery) (*dto.UserListResponse, error) {
	if err := access.Require(actor, access.CanManageUsers); err != nil {
		return nil, err
	}
	q.PageRequest.Normalize()

	filter := repository.UserFilter{
		Search:   strings.TrimSpace(q.Search),
		IsActive: q.IsActive,
		SortBy:   repository.UserSortCreatedAt,
		Desc:     !strings.EqualFold(q.SortOrder, "asc"),
		Limit:    q.Limit,
		Offset:   q.Offset(),
	}
	if q.Role != "" {
		// An unknown role matches nobody.
		filter.Role = entity.Role(q.Role)
		if r, ok := entity.ParseRole(q.Role); ok {
			filter.Role = r
		}
	}
	switch repository.UserSort(q.SortBy) {
	case repository.UserSortName, repository.UserSortEmail:
		filter.SortBy = repository.UserSort(q.SortBy)
	}

	users, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.NewUserResponse(u))
	}
	return &dto.UserListResponse{
		Users:      out,
		Pagination: dto.NewPagination(q.PageRequest, total),
	}, nil
}

// Create stores a new account; is_active defaults to true.
func (uc *UserDirectoryUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := access.Require(actor, access.CanManageUsers); err != nil {
		return nil, err
	}
	if err := domain.Required("email", in.Email, "name", in.Name, "password", in.Password, "role", in.Role); err != nil {
		return nil, err
	}
	email := entity.NormalizeEmail(in.Email)
	if err := auth.ValidateEmail(email); err != nil {
		return nil, err
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.Invalid("INVALID_ROLE", "invalid role")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:                         uuid.New().String(),
		Email:                      email,
		Name:                       strings.TrimSpace(in.Name),
		PasswordHash:               hash,
		Role:                       role,
		IsActive:                   true,
		CompanyName:                strings.TrimSpace(in.CompanyName),
		PhoneNumber:                strings.TrimSpace(in.PhoneNumber),
		Address:                    strings.TrimSpace(in.Address),
		Department:                 strings.TrimSpace(in.Department),
		Position:                   strings.TrimSpace(in.Position),
		GovernmentID:               strings.TrimSpace(in.GovernmentID),
		BusinessRegistrationNumber: strings.TrimSpace(in.BusinessRegistrationNumber),
		TaxID:                      strings.TrimSpace(in.TaxID),
		BidderCategory:             strings.TrimSpace(in.BidderCategory),
		Certifications:             strings.TrimSpace(in.Certifications),
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	tier := in.SubscriptionTier
	if tier == "" && role == entity.RoleBidder {
		tier = string(entity.TierBasic)
	}
	if err := setSubscriptionTier(user, tier, now); err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(userRepo repository.UserRepository, _ repository.TenderRepository, _ repository.ApplicationRepository) error {
		existing, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Update applies the fields present in the request; absent fields are untouched.
func (uc *UserDirectoryUseCase) Update(ctx context.Context, actor access.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := access.Require(actor, access.CanManageUsers); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := uc.tx.Run(ctx, func(userRepo repository.UserRepository, _ repository.TenderRepository, _ repository.ApplicationRepository) error {
		user, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		if in.Email != nil {
			email := entity.NormalizeEmail(*in.Email)
			if err := auth.ValidateEmail(email); err != nil {
				return err
			}
			if email != user.Email {
				existing, err := userRepo.GetByEmail(ctx, email)
				if err != nil {
					return err
				}
				if existing != nil && existing.ID != user.ID {
					return domain.ErrEmailAlreadyExists
				}
			}
			user.Email = email
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.Invalid("VALIDATION_ERROR", "name cannot be empty")
			}
			user.Name = name
		}
		if in.Password != nil && *in.Password != "" {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}
		if in.Role != nil {
			role, ok := entity.ParseRole(*in.Role)
			if !ok {
				return domain.Invalid("INVALID_ROLE", "invalid role")
			}
			if user.Role == entity.RoleAdmin && role != entity.RoleAdmin {
				return domain.ErrAdminRoleLocked
			}
			user.Role = role
		}
		if in.IsActive != nil {
			user.IsActive = *in.IsActive
		}
		setString(&user.CompanyName, in.CompanyName)
		setString(&user.PhoneNumber, in.PhoneNumber)
		setString(&user.Address, in.Address)
		setString(&user.Department, in.Department)
		setString(&user.Position, in.Position)
		setString(&user.GovernmentID, in.GovernmentID)
		setString(&user.BusinessRegistrationNumber, in.BusinessRegistrationNumber)
		setString(&user.TaxID, in.TaxID)
		setString(&user.BidderCategory, in.BidderCategory)
		setString(&user.Certifications, in.Certifications)
		now := uc.now()
		if in.SubscriptionTier != nil && !strings.EqualFold(strings.TrimSpace(*in.SubscriptionTier), string(user.SubscriptionTier)) {
			if err := setSubscriptionTier(user, *in.SubscriptionTier, now); err != nil {
				return err
			}
		}
		user.UpdatedAt = now

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(updated), nil
}

// Delete removes a non-admin account. Admin accounts are never deletable.
func (uc *UserDirectoryUseCase) Delete(ctx context.Context, actor access.Actor, id string) error {
	if err := access.Require(actor, access.CanManageUsers); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(userRepo repository.UserRepository, _ repository.TenderRepository, _ repository.ApplicationRepository) error {
		user, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if !access.CanDeleteUser(user.Role) {
			return domain.ErrAdminUndeletable
		}
		return userRepo.Delete(ctx, id)
	})
}

// GetProfile the actor's own account.
func (uc *UserDirectoryUseCase) GetProfile(ctx context.Context, actor access.Actor) (*dto.UserResponse, error) {
	if err := access.RequireActor(actor); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.NewUserResponse(user), nil
}

// ChangeOwnPassword verifies the current password and stores the new one.
func (uc *UserDirectoryUseCase) ChangeOwnPassword(ctx context.Context, actor access.Actor, in dto.ChangePasswordRequest) error {
	if err := access.RequireActor(actor); err != nil {
		return err
	}
	if err := domain.Required(
		"current_password", in.CurrentPassword,
		"new_password", in.NewPassword,
		"confirm_new_password", in.ConfirmNewPassword,
	); err != nil {
		return err
	}
	if err := auth.ValidatePassword(in.NewPassword); err != nil {
		return err
	}
	if in.NewPassword != in.ConfirmNewPassword {
		return domain.ErrPasswordMismatch
	}

	user, err := uc.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash == "" {
		return domain.ErrUserNotFound
	}
	if !auth.CheckPassword(user.PasswordHash, in.CurrentPassword) {
		return domain.ErrCurrentPasswordIncorrect
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, user)
}

// UpdateOwnProfile patches the narrow self-editable field set. A field sent as "" is cleared,
// except name which must keep at least two characters.
func (uc *UserDirectoryUseCase) UpdateOwnProfile(ctx context.Context, actor access.Actor, in dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	if err := access.RequireActor(actor); err != nil {
		return nil, err
	}
	if in.Empty() {
		return nil, domain.ErrNoChanges
	}
	if in.Name != nil && len(strings.TrimSpace(*in.Name)) < 2 {
		return nil, domain.Invalid("VALIDATION_ERROR", "name must be at least 2 characters")
	}

	user, err := uc.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	setString(&user.Name, in.Name)
	setString(&user.CompanyName, in.CompanyName)
	setString(&user.PhoneNumber, in.PhoneNumber)
	setString(&user.Address, in.Address)
	setString(&user.Department, in.Department)
	setString(&user.Position, in.Position)
	setString(&user.BusinessRegistrationNumber, in.BusinessRegistrationNumber)
	setString(&user.TaxID, in.TaxID)
	setString(&user.BidderCategory, in.BidderCategory)
	setString(&user.Certifications, in.Certifications)
	user.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// setSubscriptionTier "" clears the plan; a paid tier runs for one month from now.
func setSubscriptionTier(user *entity.User, s string, now time.Time) error {
	s = strings.TrimSpace(s)
	user.SubscriptionExpiry = nil
	if s == "" {
		user.SubscriptionTier = ""
		return nil
	}
	tier, ok := entity.ParseSubscriptionTier(s)
	if !ok {
		return domain.Invalid("VALIDATION_ERROR", "invalid subscription tier")
	}
	user.SubscriptionTier = tier
	if tier.Paid() {
		expiry := now.AddDate(0, 1, 0)
		user.SubscriptionExpiry = &expiry
	}
	return nil
}
