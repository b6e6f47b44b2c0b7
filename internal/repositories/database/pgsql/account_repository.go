package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	"github.com/Habanerio/Xpnss-sub003/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		UserID:          d.UserID,
		AccountType:     string(d.AccountType),
		Name:            d.Name,
		Description:     d.Description,
		DisplayColor:    d.DisplayColor,
		Balance:         d.Balance.Decimal(),
		CreditLimit:     d.CreditLimit.Decimal(),
		InterestRate:    d.InterestRate,
		OverdraftAmount: d.OverdraftAmount.Decimal(),
		DateClosed:      d.DateClosed,
		DateDeleted:     d.DateDeleted,
		Version:         d.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		UserID:          m.UserID,
		AccountType:     domain.AccountType(m.AccountType),
		Name:            m.Name,
		Description:     m.Description,
		DisplayColor:    m.DisplayColor,
		Balance:         domain.NewMoney(m.Balance),
		CreditLimit:     domain.NewMoney(m.CreditLimit),
		InterestRate:    m.InterestRate,
		OverdraftAmount: domain.NewMoney(m.OverdraftAmount),
		DateClosed:      m.DateClosed,
		DateDeleted:     m.DateDeleted,
		Version:         m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const accountColumns = `account_id, user_id, account_type, name, description, display_color,
	balance, credit_limit, interest_rate, overdraft_amount, date_closed, date_deleted,
	version, created_at, last_updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.AccountType,
		&m.Name,
		&m.Description,
		&m.DisplayColor,
		&m.Balance,
		&m.CreditLimit,
		&m.InterestRate,
		&m.OverdraftAmount,
		&m.DateClosed,
		&m.DateDeleted,
		&m.Version,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveAccount inserts a new account with version 1.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, user_id, account_type, name, description, display_color,
			balance, credit_limit, interest_rate, overdraft_amount, date_closed, date_deleted,
			version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.AccountType,
		m.Name,
		m.Description,
		m.DisplayColor,
		m.Balance,
		m.CreditLimit,
		m.InterestRate,
		m.OverdraftAmount,
		m.DateClosed,
		m.DateDeleted,
		m.CreatedAt,
		m.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account scoped to its owning user. Deleted
// accounts are not returned.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND user_id = $2 AND date_deleted IS NULL;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := toDomainAccount(m)
	return &d, nil
}

// ListAccountsByUser retrieves all non-deleted accounts for a user.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND date_deleted IS NULL
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates metadata and capability values under the account's
// version. A zero-row update means the stored version moved on.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $1, description = $2, display_color = $3, credit_limit = $4,
			interest_rate = $5, overdraft_amount = $6, date_closed = $7, date_deleted = $8,
			last_updated_at = $9, version = version + 1
		WHERE account_id = $10 AND user_id = $11 AND version = $12;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.DisplayColor,
		m.CreditLimit,
		m.InterestRate,
		m.OverdraftAmount,
		m.DateClosed,
		m.DateDeleted,
		m.LastUpdatedAt,
		m.AccountID,
		m.UserID,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	return checkVersionedUpdate(ctx, r.Pool, tag, m.AccountID)
}

// UpdateAccountBalance persists a balance mutation under the same versioning
// rule as UpdateAccount.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET balance = $1, last_updated_at = $2, version = version + 1
		WHERE account_id = $3 AND user_id = $4 AND version = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Balance,
		m.LastUpdatedAt,
		m.AccountID,
		m.UserID,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", m.AccountID, err)
	}
	return checkVersionedUpdate(ctx, r.Pool, tag, m.AccountID)
}

// SaveAdjustments persists manual capability corrections.
func (r *PgxAccountRepository) SaveAdjustments(ctx context.Context, entries []domain.AdjustmentEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO account_adjustments (adjustment_id, account_id, field, old_value, new_value, reason, date_changed)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.AdjustmentID, e.AccountID, e.Field, e.OldValue, e.NewValue, e.Reason, e.DateChanged)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save account adjustment: %w", err)
		}
	}
	return nil
}

// checkVersionedUpdate distinguishes a version conflict from a vanished row
// when a versioned UPDATE touched nothing.
func checkVersionedUpdate(ctx context.Context, pool *pgxpool.Pool, tag pgconn.CommandTag, accountID string) error {
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1 AND date_deleted IS NULL)`,
		accountID,
	).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check account %s after update: %w", accountID, err)
	}
	if exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrConflict, accountID)
	}
	return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
}
