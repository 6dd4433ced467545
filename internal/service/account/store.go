//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_account_store.go -package=mocks -mock_names=Store=MockAccountStore
package account

import (
	"context"

	"github.com/tinoosan/social/internal/social"
)

// Store is the persistence contract consumed by the account service.
type Store interface {
	// AccountExists reports whether an account with the username is stored.
	AccountExists(ctx context.Context, username string) (bool, error)
	// InsertAccount persists a new account and assigns its ID.
	// It returns errs.ErrConflict when the username is already taken.
	InsertAccount(ctx context.Context, a social.Account) (social.Account, error)
	// FindAccountByUsername returns errs.ErrNotFound when no account matches.
	FindAccountByUsername(ctx context.Context, username string) (social.Account, error)
}
