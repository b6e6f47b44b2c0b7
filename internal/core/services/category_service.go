package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
)

// categoryService provides core category operations.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// Ensure categoryService implements the CategorySvcFacade interface.
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category, err := domain.NewCategory(userID, req.Name, req.Description, req.SortOrder, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.SaveCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("user_id", userID),
			slog.String("category_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID),
		slog.String("user_id", userID))
	return category, nil
}

// AddSubCategory loads the parent with its current children, lets the
// aggregate append the new child and renumber the whole sibling set, then
// persists the renumbered batch in one write.
func (s *categoryService) AddSubCategory(ctx context.Context, userID, parentID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	parent, err := s.categoryRepo.FindCategoryByID(ctx, userID, parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: parent category %s", apperrors.ErrNotFound, parentID)
		}
		return nil, err
	}
	if parent.ParentID != "" {
		return nil, fmt.Errorf("%w: category %s is not a root category", apperrors.ErrValidation, parentID)
	}

	all, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sibling categories",
			slog.String("parent_id", parentID))
		return nil, err
	}
	for i := range all {
		if all[i].ParentID == parentID {
			sibling := all[i]
			parent.SubCategories = append(parent.SubCategories, &sibling)
		}
	}

	child, err := parent.AddSubCategory(req.Name, req.Description, req.SortOrder, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	// The parent was touched when the child was attached, so it goes into the
	// same write as the renumbered siblings.
	batch := make([]domain.Category, 0, len(parent.SubCategories)+1)
	batch = append(batch, *parent)
	for _, sibling := range parent.SubCategories {
		batch = append(batch, *sibling)
	}
	if err := s.categoryRepo.SaveCategories(ctx, batch); err != nil {
		s.LogError(ctx, err, "Failed to save renumbered categories",
			slog.String("parent_id", parentID))
		return nil, err
	}

	s.LogInfo(ctx, "Sub-category created successfully",
		slog.String("category_id", child.CategoryID),
		slog.String("parent_id", parentID),
		slog.Int("sibling_count", len(batch)))
	return child, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID",
				slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

// GetCategoryTree assembles the user's flat category list into ordered root
// trees.
func (s *categoryService) GetCategoryTree(ctx context.Context, userID string) ([]*domain.Category, error) {
	all, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	byID := make(map[string]*domain.Category, len(all))
	for i := range all {
		byID[all[i].CategoryID] = &all[i]
	}

	var roots []*domain.Category
	for i := range all {
		cat := &all[i]
		if cat.ParentID == "" {
			roots = append(roots, cat)
			continue
		}
		if parent, ok := byID[cat.ParentID]; ok {
			parent.SubCategories = append(parent.SubCategories, cat)
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		if roots[i].SortOrder != roots[j].SortOrder {
			return roots[i].SortOrder < roots[j].SortOrder
		}
		return roots[i].Name < roots[j].Name
	})
	for _, root := range roots {
		sort.SliceStable(root.SubCategories, func(i, j int) bool {
			if root.SubCategories[i].SortOrder != root.SubCategories[j].SortOrder {
				return root.SubCategories[i].SortOrder < root.SubCategories[j].SortOrder
			}
			return root.SubCategories[i].Name < root.SubCategories[j].Name
		})
	}
	return roots, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := category.UpdateDetails(req.Name, req.Description, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category",
			slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}
