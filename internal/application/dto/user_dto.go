package dto

import "time"

// UserResponse a user without credentials.
type UserResponse struct {
	ID                         string     `json:"id"`
	Email                      string     `json:"email"`
	Name                       string     `json:"name"`
	Role                       string     `json:"role"`
	IsActive                   bool       `json:"is_active"`
	CompanyName                string     `json:"company_name,omitempty"`
	PhoneNumber                string     `json:"phone_number,omitempty"`
	Address                    string     `json:"address,omitempty"`
	Department                 string     `json:"department,omitempty"`
	Position                   string     `json:"position,omitempty"`
	GovernmentID               string     `json:"government_id,omitempty"`
	BusinessRegistrationNumber string     `json:"business_registration_number,omitempty"`
	TaxID                      string     `json:"tax_id,omitempty"`
	BidderCategory             string     `json:"bidder_category,omitempty"`
	Certifications             string     `json:"certifications,omitempty"`
	SubscriptionTier           string     `json:"subscription_tier,omitempty"`
	SubscriptionExpiry         *time.Time `json:"subscription_expiry,omitempty"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
}

// UserListQuery admin directory filters. IsActive nil means both.
type UserListQuery struct {
	PageRequest
	Search    string `query:"search"`
	Role      string `query:"role"`
	IsActive  *bool  `query:"isActive"`
	SortBy    string `query:"sortBy"`    // createdAt | name | email
	SortOrder string `query:"sortOrder"` // asc | desc
}

// UserListResponse one page of the directory.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// CreateUserRequest admin-created account. SubscriptionTier defaults to basic for bidders.
type CreateUserRequest struct {
	Email                      string `json:"email"`
	Name                       string `json:"name"`
	Password                   string `json:"password"`
	Role                       string `json:"role"`
	IsActive                   *bool  `json:"is_active,omitempty"`
	CompanyName                string `json:"company_name,omitempty"`
	PhoneNumber                string `json:"phone_number,omitempty"`
	Address                    string `json:"address,omitempty"`
	Department                 string `json:"department,omitempty"`
	Position                   string `json:"position,omitempty"`
	GovernmentID               string `json:"government_id,omitempty"`
	BusinessRegistrationNumber string `json:"business_registration_number,omitempty"`
	TaxID                      string `json:"tax_id,omitempty"`
	BidderCategory             string `json:"bidder_category,omitempty"`
	Certifications             string `json:"certifications,omitempty"`
	SubscriptionTier           string `json:"subscription_tier,omitempty"`
}

// UpdateUserRequest partial admin update; nil fields are left untouched.
// An empty SubscriptionTier clears the plan.
type UpdateUserRequest struct {
	Email                      *string `json:"email,omitempty"`
	Name                       *string `json:"name,omitempty"`
	Password                   *string `json:"password,omitempty"`
	Role                       *string `json:"role,omitempty"`
	IsActive                   *bool   `json:"is_active,omitempty"`
	CompanyName                *string `json:"company_name,omitempty"`
	PhoneNumber                *string `json:"phone_number,omitempty"`
	Address                    *string `json:"address,omitempty"`
	Department                 *string `json:"department,omitempty"`
	Position                   *string `json:"position,omitempty"`
	GovernmentID               *string `json:"government_id,omitempty"`
	BusinessRegistrationNumber *string `json:"business_registration_number,omitempty"`
	TaxID                      *string `json:"tax_id,omitempty"`
	BidderCategory             *string `json:"bidder_category,omitempty"`
	Certifications             *string `json:"certifications,omitempty"`
	SubscriptionTier           *string `json:"subscription_tier,omitempty"`
}

// ChangePasswordRequest self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// ProfileUpdateRequest fields a user may edit on their own profile.
type ProfileUpdateRequest struct {
	Name                       *string `json:"name,omitempty"`
	CompanyName                *string `json:"company_name,omitempty"`
	PhoneNumber                *string `json:"phone_number,omitempty"`
	Address                    *string `json:"address,omitempty"`
	Department                 *string `json:"department,omitempty"`
	Position                   *string `json:"position,omitempty"`
	BusinessRegistrationNumber *string `json:"business_registration_number,omitempty"`
	TaxID                      *string `json:"tax_id,omitempty"`
	BidderCategory             *string `json:"bidder_category,omitempty"`
	Certifications             *string `json:"certifications,omitempty"`
}

// Empty true when no field is set.
func (r ProfileUpdateRequest) Empty() bool {
	return r.Name == nil && r.CompanyName == nil && r.PhoneNumber == nil && r.Address == nil &&
		r.Department == nil && r.Position == nil && r.BusinessRegistrationNumber == nil &&
		r.TaxID == nil && r.BidderCategory == nil && r.Certifications == nil
}

// SignUpRequest public registration.
type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	Address         string `json:"address,omitempty"`

	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	GovernmentID string `json:"government_id,omitempty"`

	CompanyName                string `json:"company_name,omitempty"`
	BusinessRegistrationNumber string `json:"business_registration_number,omitempty"`
	TaxID                      string `json:"tax_id,omitempty"`
	BidderCategory             string `json:"bidder_category,omitempty"`
	Certifications             string `json:"certifications,omitempty"`
	SubscriptionTier           string `json:"subscription_tier,omitempty"`
}

// LoginRequest credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse issued token plus the user it belongs to.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
