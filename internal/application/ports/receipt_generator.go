package ports

import "github.com/YudheerRM/bidding-insights/internal/application/dto"

// ReceiptGenerator renders the acknowledgement PDF of a tender application.
type ReceiptGenerator interface {
	GenerateApplicationReceipt(receipt *dto.ApplicationReceipt) ([]byte, error)
}
