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
	"github.com/google/uuid"
)

// accountService provides core account operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface.
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()

	params := domain.NewAccountParams{
		AccountID:    uuid.NewString(),
		UserID:       userID,
		AccountType:  domain.AccountType(req.AccountType),
		Name:         req.Name,
		Description:  req.Description,
		DisplayColor: req.DisplayColor,
	}
	if req.Balance != nil {
		params.Balance = domain.NewMoney(*req.Balance)
	}
	if req.CreditLimit != nil {
		params.CreditLimit = domain.NewMoney(*req.CreditLimit)
	}
	if req.InterestRate != nil {
		params.InterestRate = *req.InterestRate
	}
	if req.OverdraftAmount != nil {
		params.OverdraftAmount = domain.NewMoney(*req.OverdraftAmount)
	}

	account, err := domain.NewAccount(params, now)
	if err != nil {
		s.LogWarn(ctx, "Account creation rejected",
			slog.String("user_id", userID),
			slog.String("account_type", req.AccountType),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)),
		slog.String("user_id", userID))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccountDetails(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.UpdateDetails(req.Name, req.Description, req.DisplayColor, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account details",
			slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) AdjustCreditLimit(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest) (*domain.Account, error) {
	return s.adjust(ctx, userID, accountID, req, func(account *domain.Account, dateChanged time.Time) error {
		return account.AdjustCreditLimit(domain.NewMoney(req.NewValue), dateChanged, req.Reason)
	})
}

func (s *accountService) AdjustInterestRate(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest) (*domain.Account, error) {
	return s.adjust(ctx, userID, accountID, req, func(account *domain.Account, dateChanged time.Time) error {
		return account.AdjustInterestRate(req.NewValue, dateChanged, req.Reason)
	})
}

func (s *accountService) AdjustOverdraftAmount(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest) (*domain.Account, error) {
	return s.adjust(ctx, userID, accountID, req, func(account *domain.Account, dateChanged time.Time) error {
		return account.AdjustOverdraftAmount(domain.NewMoney(req.NewValue), dateChanged, req.Reason)
	})
}

// adjust loads the account, applies one capability mutation, and persists the
// account together with its adjustment log entries.
func (s *accountService) adjust(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest, apply func(*domain.Account, time.Time) error) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	dateChanged := time.Now().UTC()
	if req.DateChanged != nil {
		dateChanged = req.DateChanged.UTC()
	}

	if err := apply(account, dateChanged); err != nil {
		if errors.Is(err, apperrors.ErrCapabilityNotSupported) {
			s.LogWarn(ctx, "Unsupported capability adjustment attempted",
				slog.String("account_id", accountID),
				slog.String("account_type", string(account.AccountType)),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save capability adjustment",
			slog.String("account_id", accountID))
		return nil, err
	}
	if entries := account.PendingAdjustments(); len(entries) > 0 {
		if err := s.accountRepo.SaveAdjustments(ctx, entries); err != nil {
			// The adjusted value is saved; losing the log entry is reported
			// but does not undo the adjustment.
			s.LogError(ctx, err, "Failed to save adjustment log entries",
				slog.String("account_id", accountID))
		}
		account.ClearPendingAdjustments()
	}

	s.LogInfo(ctx, "Account capability adjusted",
		slog.String("account_id", accountID),
		slog.String("new_value", req.NewValue.String()))
	return account, nil
}

func (s *accountService) CloseAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.Close(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to close account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account closed", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return err
	}

	// Soft delete only: transactions keep referencing the account by id.
	account.MarkDeleted(time.Now().UTC())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
