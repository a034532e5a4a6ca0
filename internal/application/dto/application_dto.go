package dto

import "time"

// CreateApplicationRequest body of POST /api/tender-applications.
type CreateApplicationRequest struct {
	TenderID string  `json:"tender_id"`
	Notes    *string `json:"notes,omitempty"`
}

// ApplicationResponse a stored application.
type ApplicationResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	TenderID        string    `json:"tender_id"`
	Status          string    `json:"application_status"`
	ApplicationDate time.Time `json:"application_date"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApplicationTender tender fields attached to each listed application.
type ApplicationTender struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	RefNumber   string     `json:"ref_number"`
	Status      string     `json:"status"`
	OpeningDate *time.Time `json:"opening_date,omitempty"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`
}

// ApplicationListItem an application with its tender.
type ApplicationListItem struct {
	ApplicationResponse
	Tender ApplicationTender `json:"tender"`
}

// ApplicationListResponse body of GET /api/tender-applications.
type ApplicationListResponse struct {
	Applications []ApplicationListItem `json:"applications"`
}

// ApplicationReceipt data printed on the acknowledgement PDF.
type ApplicationReceipt struct {
	ApplicationID   string
	Status          string
	ApplicationDate time.Time
	Notes           string
	ApplicantName   string
	ApplicantEmail  string
	CompanyName     string
	TenderTitle     string
	TenderRef       string
	ClosingDate     *time.Time
}
