package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
)

// transactionService provides core transaction operations.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	publisher       portssvc.EventPublisher
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	publisher portssvc.EventPublisher,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		publisher:       publisher,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface.
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction persists a new transaction, then hands its
// TransactionCreated event to the dispatcher. The transaction write is the
// point of no return: once it succeeds, dispatch failures are logged and the
// call still returns the transaction. Balance and rollup updates arrive
// asynchronously.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
		}
		s.LogError(ctx, err, "Failed to load account for transaction",
			slog.String("account_id", req.AccountID))
		return nil, err
	}
	if account.IsDeleted() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
	}
	if account.IsClosed() {
		return nil, fmt.Errorf("%w: account %s is closed", apperrors.ErrValidation, req.AccountID)
	}

	items := make([]domain.TransactionItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.TransactionItem{
			CategoryID:  item.CategoryID,
			Description: item.Description,
			Amount:      domain.NewMoney(item.Amount),
		}
	}

	now := time.Now().UTC()
	txn, err := domain.NewTransaction(userID, req.AccountID, domain.TransactionType(req.TransactionType),
		req.Description, req.MerchantID, items, req.TransactionDate, now)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	for _, event := range txn.PendingEvents() {
		if err := s.publisher.Publish(ctx, event); err != nil {
			// The transaction is already committed. The event is lost until
			// re-derived; surface it loudly rather than failing the create.
			s.LogError(ctx, err, "Failed to dispatch transaction created event",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("event_id", event.EventID))
		}
	}
	txn.ClearPendingEvents()

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("amount", txn.TotalAmount().String()))
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionListFilter{
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
	}
	if params.AccountID != "" {
		accountID := params.AccountID
		filter.AccountID = &accountID
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) UpdateTransactionDetails(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	txn.UpdateDetails(req.Description, req.TransactionDate, time.Now().UTC())

	if err := s.transactionRepo.UpdateTransactionDetails(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction details",
			slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) RecordPayment(ctx context.Context, userID, transactionID string, req dto.RecordPaymentRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	datePaid := time.Now().UTC()
	if req.DatePaid != nil {
		datePaid = req.DatePaid.UTC()
	}

	if err := txn.ApplyPayment(datePaid, domain.NewMoney(req.Amount)); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransactionPayment(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to record payment",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("transaction_id", transactionID),
		slog.String("amount", req.Amount.String()))
	return txn, nil
}
