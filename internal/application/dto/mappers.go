package dto

import "github.com/YudheerRM/bidding-insights/internal/domain/entity"

// NewUserResponse maps an entity to its public form; nil in, nil out.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                         u.ID,
		Email:                      u.Email,
		Name:                       u.Name,
		Role:                       string(u.Role),
		IsActive:                   u.IsActive,
		CompanyName:                u.CompanyName,
		PhoneNumber:                u.PhoneNumber,
		Address:                    u.Address,
		Department:                 u.Department,
		Position:                   u.Position,
		GovernmentID:               u.GovernmentID,
		BusinessRegistrationNumber: u.BusinessRegistrationNumber,
		TaxID:                      u.TaxID,
		BidderCategory:             u.BidderCategory,
		Certifications:             u.Certifications,
		SubscriptionTier:           string(u.SubscriptionTier),
		SubscriptionExpiry:         u.SubscriptionExpiry,
		CreatedAt:                  u.CreatedAt,
		UpdatedAt:                  u.UpdatedAt,
	}
}

// NewTenderResponse maps a tender to its public form.
func NewTenderResponse(t *entity.Tender) *TenderResponse {
	if t == nil {
		return nil
	}
	return &TenderResponse{
		ID:             t.ID,
		Title:          t.Title,
		RefNumber:      t.RefNumber,
		Status:         string(t.Status),
		OpeningDate:    t.OpeningDate,
		ClosingDate:    t.ClosingDate,
		BidDocumentURL: t.BidDocument.URL,
		BidReportURL:   t.BidReport.URL,
		Amendments:     t.Amendments,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// NewApplicationResponse maps a stored application.
func NewApplicationResponse(a *entity.TenderApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		TenderID:        a.TenderID,
		Status:          string(a.Status),
		ApplicationDate: a.ApplicationDate,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// NewApplicationListItem maps a joined listing row.
func NewApplicationListItem(row entity.ApplicationWithTender) ApplicationListItem {
	return ApplicationListItem{
		ApplicationResponse: NewApplicationResponse(&row.Application),
		Tender: ApplicationTender{
			ID:          row.Tender.ID,
			Title:       row.Tender.Title,
			RefNumber:   row.Tender.RefNumber,
			Status:      string(row.Tender.Status),
			OpeningDate: row.Tender.OpeningDate,
			ClosingDate: row.Tender.ClosingDate,
		},
	}
}
