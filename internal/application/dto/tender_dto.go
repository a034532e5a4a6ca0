package dto

import "time"

// TenderResponse public view of a tender.
type TenderResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	RefNumber      string     `json:"ref_number"`
	Status         string     `json:"status"`
	OpeningDate    *time.Time `json:"opening_date,omitempty"`
	ClosingDate    *time.Time `json:"closing_date,omitempty"`
	BidDocumentURL string     `json:"bid_document_url,omitempty"`
	BidReportURL   string     `json:"bid_report_url,omitempty"`
	Amendments     string     `json:"amendments,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TenderListQuery public listing filters.
type TenderListQuery struct {
	PageRequest
	Status string `query:"status"`
	Search string `query:"search"`
}

// TenderListResponse one page of tenders.
type TenderListResponse struct {
	Tenders    []TenderResponse `json:"tenders"`
	Pagination Pagination       `json:"pagination"`
}

// CreateTenderRequest publishing input.
type CreateTenderRequest struct {
	Title       string     `json:"title"`
	RefNumber   string     `json:"ref_number"`
	Status      string     `json:"status"`
	OpeningDate *time.Time `json:"opening_date,omitempty"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`
	Amendments  string     `json:"amendments,omitempty"`
}

// UpdateTenderRequest partial update; nil fields are left untouched.
type UpdateTenderRequest struct {
	Title       *string    `json:"title,omitempty"`
	RefNumber   *string    `json:"ref_number,omitempty"`
	Status      *string    `json:"status,omitempty"`
	OpeningDate *time.Time `json:"opening_date,omitempty"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`
	Amendments  *string    `json:"amendments,omitempty"`
}
