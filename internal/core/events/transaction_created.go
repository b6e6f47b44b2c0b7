package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	"github.com/Habanerio/Xpnss-sub003/internal/middleware"
)

// TransactionCreatedHandler applies the derived effects of a recorded
// transaction: the account balance movement and the per-account, per-category
// and per-merchant monthly rollups. Each write goes through its own
// repository; there is no atomicity across them, and a re-delivered event is
// applied again (delivery is at-least-once, not exactly-once).
type TransactionCreatedHandler struct {
	accountRepo      portsrepo.AccountRepositoryFacade
	monthlyTotalRepo portsrepo.MonthlyTotalRepositoryFacade
}

// NewTransactionCreatedHandler creates the balance/rollup propagation handler.
func NewTransactionCreatedHandler(accountRepo portsrepo.AccountRepositoryFacade, monthlyTotalRepo portsrepo.MonthlyTotalRepositoryFacade) *TransactionCreatedHandler {
	return &TransactionCreatedHandler{
		accountRepo:      accountRepo,
		monthlyTotalRepo: monthlyTotalRepo,
	}
}

var _ Handler = (*TransactionCreatedHandler)(nil)

// Name implements Handler.
func (h *TransactionCreatedHandler) Name() string {
	return "transaction_created_handler"
}

// Handle implements Handler.
func (h *TransactionCreatedHandler) Handle(ctx context.Context, event domain.TransactionCreated) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	isCredit, err := domain.IsCreditType(event.TransactionType)
	if err != nil {
		return fmt.Errorf("failed to classify transaction type: %w", err)
	}

	var errs []error
	if err := h.applyToAccount(ctx, event, isCredit); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No caller is left to report to; a missing account is fatal for
			// this delivery.
			logger.Error("Account for transaction not found",
				slog.String("account_id", event.AccountID),
				slog.String("user_id", event.UserID))
			return err
		}
		errs = append(errs, err)
	}

	// Rollup upserts are independent of the account write and of each other;
	// one failing must not block the rest.
	errs = append(errs, h.applyMonthlyTotals(ctx, event, isCredit)...)

	return errors.Join(errs...)
}

func (h *TransactionCreatedHandler) applyToAccount(ctx context.Context, event domain.TransactionCreated, isCredit bool) error {
	account, err := h.accountRepo.FindAccountByID(ctx, event.UserID, event.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", event.AccountID, err)
	}

	date := event.DateOfTransactionUTC
	if isCredit {
		err = account.ApplyCreditMovement(date, event.Amount)
	} else {
		err = account.ApplyDebitMovement(date, event.Amount)
	}
	if err != nil {
		return fmt.Errorf("failed to apply movement to account %s: %w", event.AccountID, err)
	}

	if account.IsOverLimit() {
		// Informational only; the movement is never blocked.
		middleware.GetLoggerFromCtx(ctx).Warn("Account is over its credit limit",
			slog.String("account_id", account.AccountID),
			slog.String("balance", account.Balance.String()),
			slog.String("credit_limit", account.CreditLimit.String()))
	}

	if err := h.accountRepo.UpdateAccountBalance(ctx, *account); err != nil {
		return fmt.Errorf("failed to save balance for account %s: %w", event.AccountID, err)
	}
	return nil
}

func (h *TransactionCreatedHandler) applyMonthlyTotals(ctx context.Context, event domain.TransactionCreated, isCredit bool) []error {
	logger := middleware.GetLoggerFromCtx(ctx)
	ym := domain.YearMonthOf(event.DateOfTransactionUTC)

	upsert := func(entityID string, entityType domain.EntityType, amount domain.Money) error {
		key := portsrepo.MonthlyTotalKey{
			UserID:     event.UserID,
			EntityID:   entityID,
			EntityType: entityType,
			Year:       ym.Year,
			Month:      ym.Month,
		}
		if err := h.monthlyTotalRepo.UpsertMonthlyTotal(ctx, key, isCredit, amount); err != nil {
			logger.Error("Failed to upsert monthly total",
				slog.String("entity_id", entityID),
				slog.String("entity_type", string(entityType)),
				slog.Int("year", ym.Year),
				slog.Int("month", ym.Month),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to upsert %s monthly total for %s: %w", entityType, entityID, err)
		}
		return nil
	}

	var errs []error
	if err := upsert(event.AccountID, domain.EntityTypeAccount, event.Amount); err != nil {
		errs = append(errs, err)
	}
	for categoryID, amount := range event.CategoryAmounts {
		if err := upsert(categoryID, domain.EntityTypeCategory, amount); err != nil {
			errs = append(errs, err)
		}
	}
	if event.MerchantID != "" {
		if err := upsert(event.MerchantID, domain.EntityTypeMerchant, event.Amount); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
