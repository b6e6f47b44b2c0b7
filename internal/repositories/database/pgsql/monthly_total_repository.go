package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	"github.com/Habanerio/Xpnss-sub003/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxMonthlyTotalRepository struct {
	BaseRepository
}

// newPgxMonthlyTotalRepository creates a new repository for rollup data.
func newPgxMonthlyTotalRepository(pool *pgxpool.Pool) portsrepo.MonthlyTotalRepositoryFacade {
	return &PgxMonthlyTotalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxMonthlyTotalRepository implements portsrepo.MonthlyTotalRepositoryFacade
var _ portsrepo.MonthlyTotalRepositoryFacade = (*PgxMonthlyTotalRepository)(nil)

func toDomainMonthlyTotal(m models.MonthlyTotal) domain.MonthlyTotal {
	return domain.MonthlyTotal{
		UserID:            m.UserID,
		EntityID:          m.EntityID,
		EntityType:        domain.EntityType(m.EntityType),
		Year:              m.Year,
		Month:             m.Month,
		CreditCount:       m.CreditCount,
		CreditTotalAmount: domain.NewMoney(m.CreditTotalAmount),
		DebitCount:        m.DebitCount,
		DebitTotalAmount:  domain.NewMoney(m.DebitTotalAmount),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const monthlyTotalColumns = `user_id, entity_id, entity_type, year, month,
	credit_count, credit_total_amount, debit_count, debit_total_amount, created_at, last_updated_at`

func scanMonthlyTotal(row pgx.Row) (models.MonthlyTotal, error) {
	var m models.MonthlyTotal
	err := row.Scan(
		&m.UserID,
		&m.EntityID,
		&m.EntityType,
		&m.Year,
		&m.Month,
		&m.CreditCount,
		&m.CreditTotalAmount,
		&m.DebitCount,
		&m.DebitTotalAmount,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// UpsertMonthlyTotal applies one increment to the row identified by key.
// INSERT ... ON CONFLICT DO UPDATE is a single atomic statement, so
// concurrent increments for the same key serialize in the database; no rows
// are lost and no partial counts are observable.
func (r *PgxMonthlyTotalRepository) UpsertMonthlyTotal(ctx context.Context, key portsrepo.MonthlyTotalKey, isCredit bool, amount domain.Money) error {
	creditInc, debitInc := 0, 1
	creditAmount, debitAmount := decimal.Zero, amount.Decimal()
	if isCredit {
		creditInc, debitInc = 1, 0
		creditAmount, debitAmount = amount.Decimal(), decimal.Zero
	}

	query := `
		INSERT INTO monthly_totals (user_id, entity_id, entity_type, year, month,
			credit_count, credit_total_amount, debit_count, debit_total_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (user_id, entity_id, entity_type, year, month) DO UPDATE
		SET credit_count = monthly_totals.credit_count + EXCLUDED.credit_count,
			credit_total_amount = monthly_totals.credit_total_amount + EXCLUDED.credit_total_amount,
			debit_count = monthly_totals.debit_count + EXCLUDED.debit_count,
			debit_total_amount = monthly_totals.debit_total_amount + EXCLUDED.debit_total_amount,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		key.UserID,
		key.EntityID,
		string(key.EntityType),
		key.Year,
		key.Month,
		creditInc,
		creditAmount,
		debitInc,
		debitAmount,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly total for %s %s %04d-%02d: %w",
			key.EntityType, key.EntityID, key.Year, key.Month, err)
	}
	return nil
}

// FindMonthlyTotal retrieves one rollup row.
func (r *PgxMonthlyTotalRepository) FindMonthlyTotal(ctx context.Context, key portsrepo.MonthlyTotalKey) (*domain.MonthlyTotal, error) {
	query := `
		SELECT ` + monthlyTotalColumns + `
		FROM monthly_totals
		WHERE user_id = $1 AND entity_id = $2 AND entity_type = $3 AND year = $4 AND month = $5;
	`
	m, err := scanMonthlyTotal(r.Pool.QueryRow(ctx, query,
		key.UserID, key.EntityID, string(key.EntityType), key.Year, key.Month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find monthly total: %w", err)
	}

	d := toDomainMonthlyTotal(m)
	return &d, nil
}

// ListMonthlyTotalsByEntityYear retrieves all rollup rows for one entity in
// one calendar year, ordered by month.
func (r *PgxMonthlyTotalRepository) ListMonthlyTotalsByEntityYear(ctx context.Context, userID, entityID string, entityType domain.EntityType, year int) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT ` + monthlyTotalColumns + `
		FROM monthly_totals
		WHERE user_id = $1 AND entity_id = $2 AND entity_type = $3 AND year = $4
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, userID, entityID, string(entityType), year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	return collectMonthlyTotals(rows)
}

// ListMonthlyTotalsRange retrieves a user's rollup rows of one entity type
// across an inclusive month range.
func (r *PgxMonthlyTotalRepository) ListMonthlyTotalsRange(ctx context.Context, userID string, entityType domain.EntityType, start, end domain.YearMonth) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT ` + monthlyTotalColumns + `
		FROM monthly_totals
		WHERE user_id = $1 AND entity_type = $2
			AND (year * 100 + month) BETWEEN $3 AND $4
		ORDER BY year, month, entity_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, string(entityType),
		start.Year*100+start.Month, end.Year*100+end.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals range: %w", err)
	}
	defer rows.Close()

	return collectMonthlyTotals(rows)
}

func collectMonthlyTotals(rows pgx.Rows) ([]domain.MonthlyTotal, error) {
	totals := make([]domain.MonthlyTotal, 0)
	for rows.Next() {
		m, err := scanMonthlyTotal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		totals = append(totals, toDomainMonthlyTotal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}
	return totals, nil
}
