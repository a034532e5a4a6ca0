package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
	"github.com/YudheerRM/bidding-insights/pkg/jwt"
)

// JWTConfig token issuance settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// SignUp validates the role-specific profile, hashes the password and stores an active account.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.UserResponse, error) {
	user, err := uc.newUserFromSignUp(in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (uc *AuthUseCase) newUserFromSignUp(in dto.SignUpRequest) (*entity.User, error) {
	email := entity.NormalizeEmail(in.Email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return nil, domain.Invalid("VALIDATION_ERROR", "name must be at least 2 characters")
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.Invalid("INVALID_ROLE", "invalid role")
	}

	now := uc.now()
	user := &entity.User{
		ID:          uuid.New().String(),
		Email:       email,
		Name:        name,
		Role:        role,
		IsActive:    true,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch role {
	case entity.RoleGovernmentOfficial:
		if err := domain.Required(
			"department", in.Department, "position", in.Position, "government_id", in.GovernmentID,
		); err != nil {
			return nil, err
		}
		if len(strings.TrimSpace(in.GovernmentID)) < 5 {
			return nil, domain.Invalid("VALIDATION_ERROR", "government id must be at least 5 characters")
		}
		user.Department = strings.TrimSpace(in.Department)
		user.Position = strings.TrimSpace(in.Position)
		user.GovernmentID = strings.TrimSpace(in.GovernmentID)

	case entity.RoleBidder:
		if err := domain.Required(
			"company_name", in.CompanyName,
			"business_registration_number", in.BusinessRegistrationNumber,
			"tax_id", in.TaxID,
			"bidder_category", in.BidderCategory,
		); err != nil {
			return nil, err
		}
		if len(strings.TrimSpace(in.BusinessRegistrationNumber)) < 5 {
			return nil, domain.Invalid("VALIDATION_ERROR", "business registration number must be at least 5 characters")
		}
		if len(strings.TrimSpace(in.TaxID)) < 5 {
			return nil, domain.Invalid("VALIDATION_ERROR", "tax id must be at least 5 characters")
		}
		tier := entity.TierBasic
		if in.SubscriptionTier != "" {
			if tier, ok = entity.ParseSubscriptionTier(in.SubscriptionTier); !ok {
				return nil, domain.Invalid("VALIDATION_ERROR", "invalid subscription tier")
			}
		}
		user.CompanyName = strings.TrimSpace(in.CompanyName)
		user.BusinessRegistrationNumber = strings.TrimSpace(in.BusinessRegistrationNumber)
		user.TaxID = strings.TrimSpace(in.TaxID)
		user.BidderCategory = strings.TrimSpace(in.BidderCategory)
		user.Certifications = strings.TrimSpace(in.Certifications)
		user.SubscriptionTier = tier
		if tier.Paid() {
			expiry := now.AddDate(0, 1, 0)
			user.SubscriptionExpiry = &expiry
		}

	case entity.RoleAdmin:
		if err := domain.Required("department", in.Department, "position", in.Position); err != nil {
			return nil, err
		}
		user.Department = strings.TrimSpace(in.Department)
		user.Position = strings.TrimSpace(in.Position)
	}
	return user, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong password are indistinguishable.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:           user.ID,
		Role:             string(user.Role),
		SubscriptionTier: string(user.SubscriptionTier),
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.NewUserResponse(user),
	}, nil
}
