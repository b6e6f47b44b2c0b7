package repositories

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// MonthlyTotalKey identifies one rollup row.
type MonthlyTotalKey struct {
	UserID     string
	EntityID   string
	EntityType domain.EntityType
	Year       int
	Month      int
}

// MonthlyTotalReader defines read operations for rollup data.
type MonthlyTotalReader interface {
	// FindMonthlyTotal retrieves one rollup row, or ErrNotFound.
	FindMonthlyTotal(ctx context.Context, key MonthlyTotalKey) (*domain.MonthlyTotal, error)

	// ListMonthlyTotalsByEntityYear retrieves all rollup rows for one entity
	// in one calendar year, ordered by month.
	ListMonthlyTotalsByEntityYear(ctx context.Context, userID, entityID string, entityType domain.EntityType, year int) ([]domain.MonthlyTotal, error)

	// ListMonthlyTotalsRange retrieves a user's rollup rows of one entity
	// type across an inclusive month range.
	ListMonthlyTotalsRange(ctx context.Context, userID string, entityType domain.EntityType, start, end domain.YearMonth) ([]domain.MonthlyTotal, error)
}

// MonthlyTotalWriter defines write operations for rollup data.
type MonthlyTotalWriter interface {
	// UpsertMonthlyTotal applies one increment to the row identified by key,
	// creating it with zero counts first when absent. The store must execute
	// this as a single atomic upsert per key so concurrent increments for the
	// same key are serialized; upserts for different keys are independent.
	UpsertMonthlyTotal(ctx context.Context, key MonthlyTotalKey, isCredit bool, amount domain.Money) error
}

// MonthlyTotalRepositoryFacade combines all rollup repository operations.
type MonthlyTotalRepositoryFacade interface {
	MonthlyTotalReader
	MonthlyTotalWriter
}
