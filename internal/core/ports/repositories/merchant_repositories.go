package repositories

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// MerchantReader defines read operations for merchant data.
type MerchantReader interface {
	FindMerchantByID(ctx context.Context, userID, merchantID string) (*domain.Merchant, error)
	ListMerchantsByUser(ctx context.Context, userID string) ([]domain.Merchant, error)
}

// MerchantWriter defines write operations for merchant data.
type MerchantWriter interface {
	SaveMerchant(ctx context.Context, merchant domain.Merchant) error
	UpdateMerchant(ctx context.Context, merchant domain.Merchant) error
}

// MerchantRepositoryFacade combines all merchant repository operations.
type MerchantRepositoryFacade interface {
	MerchantReader
	MerchantWriter
}
