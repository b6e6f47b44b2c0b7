package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	"github.com/Habanerio/Xpnss-sub003/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		AccountID:       d.AccountID,
		TransactionType: string(d.TransactionType),
		Description:     d.Description,
		MerchantID:      d.MerchantID,
		TransactionDate: d.TransactionDate,
		TotalPaid:       d.TotalPaid.Decimal(),
		DatePaid:        d.DatePaid,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction, items []models.TransactionItem) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Description:     m.Description,
		MerchantID:      m.MerchantID,
		TransactionDate: m.TransactionDate,
		TotalPaid:       domain.NewMoney(m.TotalPaid),
		DatePaid:        m.DatePaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	for _, item := range items {
		d.Items = append(d.Items, domain.TransactionItem{
			ItemID:      item.ItemID,
			CategoryID:  item.CategoryID,
			Description: item.Description,
			Amount:      domain.NewMoney(item.Amount),
		})
	}
	return d
}

const transactionColumns = `transaction_id, user_id, account_id, transaction_type, description,
	merchant_id, transaction_date, total_paid, date_paid, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.TransactionType,
		&m.Description,
		&m.MerchantID,
		&m.TransactionDate,
		&m.TotalPaid,
		&m.DatePaid,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveTransaction persists a new transaction and its items in one database
// transaction. This is single-aggregate atomicity; account and rollup writes
// are separate, later writes.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	headerQuery := `
		INSERT INTO transactions (transaction_id, user_id, account_id, transaction_type, description,
			merchant_id, transaction_date, total_paid, date_paid, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.TransactionType,
		m.Description,
		m.MerchantID,
		m.TransactionDate,
		m.TotalPaid,
		m.DatePaid,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	itemQuery := `
		INSERT INTO transaction_items (item_id, transaction_id, category_id, description, amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range txn.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ItemID,
			m.TransactionID,
			item.CategoryID,
			item.Description,
			item.Amount.Decimal(),
		)
		if err != nil {
			return fmt.Errorf("failed to save item for transaction %s: %w", m.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its items.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	items, err := r.findItems(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}

	d := toDomainTransaction(m, items[transactionID])
	return &d, nil
}

// ListTransactions retrieves a user's transactions newest first, optionally
// filtered by account and date range.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`)
	args := []any{userID}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		fmt.Fprintf(&sb, " AND account_id = $%d", len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		fmt.Fprintf(&sb, " AND transaction_date >= $%d", len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		fmt.Fprintf(&sb, " AND transaction_date <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY transaction_date DESC, created_at DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	headers := make([]models.Transaction, 0)
	ids := make([]string, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, 0, len(headers))
	for _, m := range headers {
		txns = append(txns, toDomainTransaction(m, items[m.TransactionID]))
	}
	return txns, nil
}

func (r *PgxTransactionRepository) findItems(ctx context.Context, transactionIDs []string) (map[string][]models.TransactionItem, error) {
	itemsByTxn := make(map[string][]models.TransactionItem, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return itemsByTxn, nil
	}

	query := `
		SELECT item_id, transaction_id, category_id, description, amount
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.TransactionItem
		if err := rows.Scan(&item.ItemID, &item.TransactionID, &item.CategoryID, &item.Description, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction item row: %w", err)
		}
		itemsByTxn[item.TransactionID] = append(itemsByTxn[item.TransactionID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction item rows: %w", err)
	}
	return itemsByTxn, nil
}

// UpdateTransactionDetails amends description and date only. Items and
// amounts are immutable after creation.
func (r *PgxTransactionRepository) UpdateTransactionDetails(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET description = $1, transaction_date = $2, last_updated_at = $3
		WHERE transaction_id = $4 AND user_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.Description,
		txn.TransactionDate,
		txn.LastUpdatedAt,
		txn.TransactionID,
		txn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.TransactionID)
	}
	return nil
}

// UpdateTransactionPayment persists payment-tracking state.
func (r *PgxTransactionRepository) UpdateTransactionPayment(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET total_paid = $1, date_paid = $2, last_updated_at = $3
		WHERE transaction_id = $4 AND user_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TotalPaid.Decimal(),
		txn.DatePaid,
		txn.LastUpdatedAt,
		txn.TransactionID,
		txn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment for transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.TransactionID)
	}
	return nil
}
