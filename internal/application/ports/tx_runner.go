package ports

import (
	"context"

	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction, handing it repositories bound to that transaction.
// A non-nil error from fn rolls everything back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		tenderRepo repository.TenderRepository,
		applicationRepo repository.ApplicationRepository,
	) error) error
}
