package entity

import "time"

// TenderStatus is free-form in storage; these are the values seen in practice.
type TenderStatus string

const (
	TenderStatusOpen        TenderStatus = "open"
	TenderStatusClosed      TenderStatus = "closed"
	TenderStatusDraft       TenderStatus = "draft"
	TenderStatusEvaluation  TenderStatus = "evaluation"
	TenderStatusAwarded     TenderStatus = "awarded"
	TenderStatusPending     TenderStatus = "pending"
	TenderStatusCancelled   TenderStatus = "cancelled"
	TenderStatusUnderReview TenderStatus = "under_review"
	TenderStatusPublished   TenderStatus = "published"
)

// Is compares case-insensitively.
func (s TenderStatus) Is(other TenderStatus) bool {
	return sameStatus(string(s), string(other))
}

// Normalized returns the folded form used in filters.
func (s TenderStatus) Normalized() string {
	return foldStatus(string(s))
}

// DocumentKind which slot of a tender a stored file fills.
type DocumentKind string

const (
	DocumentKindBidDocument DocumentKind = "document"
	DocumentKindBidReport   DocumentKind = "report"
)

// Folder object-storage prefix for the kind.
func (k DocumentKind) Folder() string {
	switch k {
	case DocumentKindBidDocument:
		return "tender-documents"
	case DocumentKindBidReport:
		return "tender-reports"
	}
	return ""
}

// ParseDocumentKind only accepts the two known kinds.
func ParseDocumentKind(s string) (DocumentKind, bool) {
	switch DocumentKind(s) {
	case DocumentKindBidDocument, DocumentKindBidReport:
		return DocumentKind(s), true
	}
	return "", false
}

// StoredObject a file in object storage: the key to manage it and the public URL to serve it.
type StoredObject struct {
	Key string
	URL string
}

// Tender a published procurement opportunity.
type Tender struct {
	ID          string
	Title       string
	RefNumber   string
	Status      TenderStatus
	OpeningDate *time.Time
	ClosingDate *time.Time
	BidDocument StoredObject
	BidReport   StoredObject
	Amendments  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AcceptsApplications only open tenders take new applications.
func (t *Tender) AcceptsApplications() bool {
	return t.Status.Is(TenderStatusOpen)
}

// Attach stores obj in the slot for kind.
func (t *Tender) Attach(kind DocumentKind, obj StoredObject) {
	switch kind {
	case DocumentKindBidDocument:
		t.BidDocument = obj
	case DocumentKindBidReport:
		t.BidReport = obj
	}
}
