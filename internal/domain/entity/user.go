package entity

import (
	"strings"
	"time"
)

// Role account type; decides which operations an actor may perform.
type Role string

// Valid roles.
const (
	RoleGovernmentOfficial Role = "government_official"
	RoleBidder             Role = "bidder"
	RoleAdmin              Role = "admin"
	RoleViewer             Role = "viewer"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleGovernmentOfficial, RoleBidder, RoleAdmin, RoleViewer}

// ParseRole accepts a role in any letter case.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if sameStatus(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// SubscriptionTier bidder plan.
type SubscriptionTier string

const (
	TierBasic      SubscriptionTier = "basic"
	TierPremium    SubscriptionTier = "premium"
	TierEnterprise SubscriptionTier = "enterprise"
)

// ParseSubscriptionTier accepts a tier in any letter case.
func ParseSubscriptionTier(s string) (SubscriptionTier, bool) {
	for _, t := range []SubscriptionTier{TierBasic, TierPremium, TierEnterprise} {
		if sameStatus(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Paid reports whether the tier carries an expiry.
func (t SubscriptionTier) Paid() bool {
	return t == TierPremium || t == TierEnterprise
}

// User an account of the platform.
type User struct {
	ID           string
	Email        string // stored lowercased
	Name         string
	PasswordHash string // bcrypt hash, never plain text once persisted
	Role         Role
	IsActive     bool

	CompanyName string
	PhoneNumber string
	Address     string

	// Government officials and admins.
	Department   string
	Position     string
	GovernmentID string

	// Bidders.
	BusinessRegistrationNumber string
	TaxID                      string
	BidderCategory             string
	Certifications             string
	SubscriptionTier           SubscriptionTier
	SubscriptionExpiry         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
