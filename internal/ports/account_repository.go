package ports

import (
	"context"

	"github.com/Polaris-F/cockpit-tools/internal/domain"
)

// AccountRepository is the provider-side account storage behind the
// gateway. The current-account pointer lives here too: at most one
// account is current, and it always references a stored account.
type AccountRepository interface {
	GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, id domain.AccountID) error
	CurrentID(ctx context.Context) (domain.AccountID, error)
	SetCurrentID(ctx context.Context, id domain.AccountID) error
}
