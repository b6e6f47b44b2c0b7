package repositories

import (
	"context"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// TransactionListFilter narrows ListTransactions. Nil fields are unfiltered.
type TransactionListFilter struct {
	AccountID *string
	FromDate  *time.Time
	ToDate    *time.Time
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its items, scoped to
	// its owning user.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a user's transactions, optionally filtered
	// by account and date range, newest first.
	ListTransactions(ctx context.Context, userID string, filter TransactionListFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and its items atomically.
	// This is single-aggregate atomicity only; derived account and rollup
	// writes happen elsewhere, later.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionDetails amends description and date only.
	UpdateTransactionDetails(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionPayment persists payment-tracking state.
	UpdateTransactionPayment(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
