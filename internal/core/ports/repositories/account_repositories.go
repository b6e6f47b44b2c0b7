package repositories

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves an account scoped to its owning user.
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all non-deleted accounts for a user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's metadata and capability
	// values. It must detect concurrent writes via the account's version and
	// return apperrors.ErrConflict when the stored version has moved on.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance persists a balance mutation under the same
	// optimistic-concurrency rule as UpdateAccount. It is a separate write
	// from any transaction persistence; no cross-aggregate atomicity exists.
	UpdateAccountBalance(ctx context.Context, account domain.Account) error

	// SaveAdjustments persists manual capability corrections.
	SaveAdjustments(ctx context.Context, entries []domain.AdjustmentEntry) error
}

// AccountRepositoryFacade combines all account repository operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
