package services

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
)

// TransactionSvcFacade defines the transaction operations exposed to handlers.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction, then
	// dispatches its TransactionCreated event. Once the transaction write has
	// committed, dispatch failures no longer fail the call.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// UpdateTransactionDetails amends description/date only; it never changes
	// amounts and never re-triggers propagation.
	UpdateTransactionDetails(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	RecordPayment(ctx context.Context, userID, transactionID string, req dto.RecordPaymentRequest) (*domain.Transaction, error)
}
