package pgsql

import (
	"context"
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

type PgxMerchantRepository struct {
	BaseRepository
}

// newPgxMerchantRepository creates a new repository for merchant data.
func newPgxMerchantRepository(pool *pgxpool.Pool) portsrepo.MerchantRepositoryFacade {
	return &PgxMerchantRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxMerchantRepository implements portsrepo.MerchantRepositoryFacade
var _ portsrepo.MerchantRepositoryFacade = (*PgxMerchantRepository)(nil)

func toDomainMerchant(m models.Merchant) domain.Merchant {
	return domain.Merchant{
		MerchantID: m.MerchantID,
		UserID:     m.UserID,
		Name:       m.Name,
		Location:   m.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveMerchant persists a new merchant.
func (r *PgxMerchantRepository) SaveMerchant(ctx context.Context, merchant domain.Merchant) error {
	query := `
		INSERT INTO merchants (merchant_id, user_id, name, location, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		merchant.MerchantID,
		merchant.UserID,
		merchant.Name,
		merchant.Location,
		merchant.CreatedAt,
		merchant.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: merchant with ID %s already exists", apperrors.ErrDuplicate, merchant.MerchantID)
		}
		return fmt.Errorf("failed to save merchant %s: %w", merchant.MerchantID, err)
	}
	return nil
}

// FindMerchantByID retrieves a merchant scoped to its owning user.
func (r *PgxMerchantRepository) FindMerchantByID(ctx context.Context, userID, merchantID string) (*domain.Merchant, error) {
	query := `
		SELECT merchant_id, user_id, name, location, created_at, last_updated_at
		FROM merchants
		WHERE merchant_id = $1 AND user_id = $2;
	`
	var m models.Merchant
	err := r.Pool.QueryRow(ctx, query, merchantID, userID).Scan(
		&m.MerchantID,
		&m.UserID,
		&m.Name,
		&m.Location,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find merchant by ID %s: %w", merchantID, err)
	}

	d := toDomainMerchant(m)
	return &d, nil
}

// ListMerchantsByUser retrieves all merchants for a user.
func (r *PgxMerchantRepository) ListMerchantsByUser(ctx context.Context, userID string) ([]domain.Merchant, error) {
	query := `
		SELECT merchant_id, user_id, name, location, created_at, last_updated_at
		FROM merchants
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchants for user %s: %w", userID, err)
	}
	defer rows.Close()

	merchants := make([]domain.Merchant, 0)
	for rows.Next() {
		var m models.Merchant
		if err := rows.Scan(&m.MerchantID, &m.UserID, &m.Name, &m.Location, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan merchant row: %w", err)
		}
		merchants = append(merchants, toDomainMerchant(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating merchant rows: %w", err)
	}
	return merchants, nil
}

// UpdateMerchant updates a merchant's details.
func (r *PgxMerchantRepository) UpdateMerchant(ctx context.Context, merchant domain.Merchant) error {
	query := `
		UPDATE merchants
		SET name = $1, location = $2, last_updated_at = $3
		WHERE merchant_id = $4 AND user_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		merchant.Name,
		merchant.Location,
		merchant.LastUpdatedAt,
		merchant.MerchantID,
		merchant.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update merchant %s: %w", merchant.MerchantID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchant.MerchantID)
	}
	return nil
}
