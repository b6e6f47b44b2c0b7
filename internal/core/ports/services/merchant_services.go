package services

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
)

// MerchantSvcFacade defines the merchant operations exposed to handlers.
type MerchantSvcFacade interface {
	CreateMerchant(ctx context.Context, userID string, req dto.CreateMerchantRequest) (*domain.Merchant, error)
	GetMerchantByID(ctx context.Context, userID, merchantID string) (*domain.Merchant, error)
	ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error)
}
