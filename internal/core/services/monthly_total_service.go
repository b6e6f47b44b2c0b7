package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
)

// monthlyTotalService provides read access to derived rollup rows. Writes go
// through event propagation only.
type monthlyTotalService struct {
	BaseService
	monthlyTotalRepo portsrepo.MonthlyTotalReader
}

// NewMonthlyTotalService creates a new MonthlyTotalService.
func NewMonthlyTotalService(monthlyTotalRepo portsrepo.MonthlyTotalReader) portssvc.MonthlyTotalSvcFacade {
	return &monthlyTotalService{
		monthlyTotalRepo: monthlyTotalRepo,
	}
}

// Ensure monthlyTotalService implements the MonthlyTotalSvcFacade interface.
var _ portssvc.MonthlyTotalSvcFacade = (*monthlyTotalService)(nil)

func (s *monthlyTotalService) GetEntityTotalsForYear(ctx context.Context, userID, entityID string, entityType domain.EntityType, year int) ([]domain.MonthlyTotal, error) {
	if entityID == "" {
		return nil, fmt.Errorf("%w: entity id must not be empty", apperrors.ErrValidation)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", apperrors.ErrValidation)
	}

	totals, err := s.monthlyTotalRepo.ListMonthlyTotalsByEntityYear(ctx, userID, entityID, entityType, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list monthly totals",
			slog.String("entity_id", entityID),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to list monthly totals: %w", err)
	}
	return totals, nil
}

func (s *monthlyTotalService) GetTotalsRange(ctx context.Context, userID string, entityType domain.EntityType, start, end domain.YearMonth) ([]domain.MonthlyTotal, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", apperrors.ErrValidation, end, start)
	}

	totals, err := s.monthlyTotalRepo.ListMonthlyTotalsRange(ctx, userID, entityType, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list monthly totals range",
			slog.String("entity_type", string(entityType)))
		return nil, fmt.Errorf("failed to list monthly totals: %w", err)
	}
	return totals, nil
}
