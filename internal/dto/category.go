package dto

import (
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category, either
// as a root or as a sub-category of an existing parent.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder" binding:"gte=0"`
}

// UpdateCategoryRequest updates a category's details.
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse defines the data returned for a category, including its
// ordered sub-categories when the tree was requested.
type CategoryResponse struct {
	CategoryID    string             `json:"categoryID"`
	UserID        string             `json:"userID"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	SortOrder     int                `json:"sortOrder"`
	ParentID      string             `json:"parentID,omitempty"`
	SubCategories []CategoryResponse `json:"subCategories,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category (and its children) to DTOs.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	resp := CategoryResponse{
		CategoryID:    cat.CategoryID,
		UserID:        cat.UserID,
		Name:          cat.Name,
		Description:   cat.Description,
		SortOrder:     cat.SortOrder,
		ParentID:      cat.ParentID,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
	for _, child := range cat.SubCategories {
		resp.SubCategories = append(resp.SubCategories, ToCategoryResponse(child))
	}
	return resp
}

// ToCategoryTreeResponse converts a category tree to DTOs.
func ToCategoryTreeResponse(roots []*domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(roots))
	for i, root := range roots {
		res[i] = ToCategoryResponse(root)
	}
	return res
}
