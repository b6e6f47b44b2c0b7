package services

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
)

// AccountSvcFacade defines the account operations exposed to handlers.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccountDetails(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// Capability adjustments; each fails with ErrCapabilityNotSupported on
	// account variants that lack the capability.
	AdjustCreditLimit(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest) (*domain.Account, error)
	AdjustInterestRate(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest) (*domain.Account, error)
	AdjustOverdraftAmount(ctx context.Context, userID, accountID string, req dto.AdjustValueRequest) (*domain.Account, error)

	CloseAccount(ctx context.Context, userID, accountID string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
