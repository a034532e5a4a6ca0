package entity

import "time"

// ApplicationStatus review state of a tender application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ApplicationStatuses every known status.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusSubmitted,
	ApplicationStatusUnderReview,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
}

// ParseApplicationStatus accepts a status in any letter case.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	for _, st := range ApplicationStatuses {
		if sameStatus(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// TenderApplication a bidder's intent to respond to a tender. One per (user, tender).
type TenderApplication struct {
	ID              string
	UserID          string
	TenderID        string
	Status          ApplicationStatus
	ApplicationDate time.Time
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Withdrawable only pending applications can be deleted by their owner.
func (a *TenderApplication) Withdrawable() bool {
	return a.Status == ApplicationStatusPending
}

// ApplicationWithTender an application joined with the tender fields shown in listings.
type ApplicationWithTender struct {
	Application TenderApplication
	Tender      TenderSummary
}

// TenderSummary the tender columns carried by application listings.
type TenderSummary struct {
	ID          string
	Title       string
	RefNumber   string
	Status      TenderStatus
	OpeningDate *time.Time
	ClosingDate *time.Time
}
