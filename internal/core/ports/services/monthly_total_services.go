package services

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// MonthlyTotalSvcFacade defines the rollup query operations exposed to
// handlers. Rollups are derived data maintained by event propagation; reads
// here may lag the transaction ledger.
type MonthlyTotalSvcFacade interface {
	GetEntityTotalsForYear(ctx context.Context, userID, entityID string, entityType domain.EntityType, year int) ([]domain.MonthlyTotal, error)
	GetTotalsRange(ctx context.Context, userID string, entityType domain.EntityType, start, end domain.YearMonth) ([]domain.MonthlyTotal, error)
}
