package services

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
)

// CategorySvcFacade defines the category operations exposed to handlers.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// AddSubCategory creates a child under parentID and renumbers all
	// siblings; the renumbered batch is persisted together.
	AddSubCategory(ctx context.Context, userID, parentID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// GetCategoryTree returns the user's root categories with their ordered
	// children populated.
	GetCategoryTree(ctx context.Context, userID string) ([]*domain.Category, error)

	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
}
