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

// merchantService provides core merchant operations.
type merchantService struct {
	BaseService
	merchantRepo portsrepo.MerchantRepositoryFacade
}

// NewMerchantService creates a new MerchantService.
func NewMerchantService(merchantRepo portsrepo.MerchantRepositoryFacade) portssvc.MerchantSvcFacade {
	return &merchantService{
		merchantRepo: merchantRepo,
	}
}

// Ensure merchantService implements the MerchantSvcFacade interface.
var _ portssvc.MerchantSvcFacade = (*merchantService)(nil)

func (s *merchantService) CreateMerchant(ctx context.Context, userID string, req dto.CreateMerchantRequest) (*domain.Merchant, error) {
	merchant, err := domain.NewMerchant(userID, req.Name, req.Location, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.merchantRepo.SaveMerchant(ctx, *merchant); err != nil {
		s.LogError(ctx, err, "Failed to save merchant",
			slog.String("user_id", userID),
			slog.String("merchant_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Merchant created successfully",
		slog.String("merchant_id", merchant.MerchantID),
		slog.String("user_id", userID))
	return merchant, nil
}

func (s *merchantService) GetMerchantByID(ctx context.Context, userID, merchantID string) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, userID, merchantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find merchant by ID",
				slog.String("merchant_id", merchantID))
		}
		return nil, err
	}
	return merchant, nil
}

func (s *merchantService) ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error) {
	merchants, err := s.merchantRepo.ListMerchantsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list merchants", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return merchants, nil
}
