// Package access holds the role and ownership rules of the platform. Every function is pure.
package access

import (
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// Actor the authenticated caller of a core operation.
type Actor struct {
	ID   string
	Role entity.Role
}

// Authenticated false for the zero Actor.
func (a Actor) Authenticated() bool {
	return a.ID != ""
}

// CanCreateTender admins and government officials publish tenders.
func CanCreateTender(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleGovernmentOfficial
}

// CanUploadDocument same audience as tender publishing.
func CanUploadDocument(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleGovernmentOfficial
}

// CanDeleteUser admin accounts are never deletable.
func CanDeleteUser(targetRole entity.Role) bool {
	return targetRole != entity.RoleAdmin
}

// CanManageUsers only admins reach the user directory.
func CanManageUsers(role entity.Role) bool {
	return role == entity.RoleAdmin
}

// Owns reports whether the actor is the owner of a resource.
func Owns(actor Actor, ownerID string) bool {
	return actor.Authenticated() && actor.ID == ownerID
}

// RequireActor rejects the zero Actor.
func RequireActor(actor Actor) error {
	if !actor.Authenticated() {
		return domain.ErrActorRequired
	}
	return nil
}

// Require checks authentication first, then the role predicate.
func Require(actor Actor, allowed func(entity.Role) bool) error {
	if err := RequireActor(actor); err != nil {
		return err
	}
	if !allowed(actor.Role) {
		return domain.ErrNotPermitted
	}
	return nil
}
