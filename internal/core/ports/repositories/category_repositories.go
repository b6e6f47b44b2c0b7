package repositories

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves one category (children not populated).
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategoriesByUser retrieves all of a user's categories as a flat
	// list; tree assembly happens in the service.
	ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategories persists a renumbered sibling batch in one write, so a
	// partially renumbered set is never observable.
	SaveCategories(ctx context.Context, categories []domain.Category) error

	// UpdateCategory updates a category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepositoryFacade combines all category repository operations.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
