package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/google/uuid"
)

// Category classifies transaction items for rollups. Categories form a
// hierarchy: a root category has an empty ParentID and an ordered list of
// sub-categories.
type Category struct {
	CategoryID  string `json:"categoryID"`
	UserID      string `json:"userID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	ParentID    string `json:"parentID,omitempty"`
	AuditFields

	SubCategories []*Category `json:"subCategories,omitempty"`
}

// NewCategory creates a root category.
func NewCategory(userID, name, description string, sortOrder int, now time.Time) (*Category, error) {
	if err := validateCategoryInput(userID, name, sortOrder); err != nil {
		return nil, err
	}
	return &Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		SortOrder:   sortOrder,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// AddSubCategory creates a child category, appends it, and renumbers all
// siblings. SortOrder values do not persist across additions; only the
// relative order is a contract.
func (c *Category) AddSubCategory(name, description string, sortOrder int, now time.Time) (*Category, error) {
	if err := validateCategoryInput(c.UserID, name, sortOrder); err != nil {
		return nil, err
	}
	child := &Category{
		CategoryID:  uuid.NewString(),
		UserID:      c.UserID,
		Name:        name,
		Description: description,
		SortOrder:   sortOrder,
		ParentID:    c.CategoryID,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	c.SubCategories = append(c.SubCategories, child)
	c.Renumber()
	c.Touch(now)
	return child, nil
}

// Renumber deterministically re-orders the children: sort by (SortOrder, Name)
// and reassign SortOrder 1..N in that order.
func (c *Category) Renumber() {
	sort.SliceStable(c.SubCategories, func(i, j int) bool {
		a, b := c.SubCategories[i], c.SubCategories[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})
	for i, child := range c.SubCategories {
		child.SortOrder = i + 1
	}
}

// UpdateDetails changes the category's name and description.
func (c *Category) UpdateDetails(name, description string, now time.Time) error {
	if name == "" {
		return fmt.Errorf("%w: category name must not be empty", apperrors.ErrValidation)
	}
	c.Name = name
	c.Description = description
	c.Touch(now)
	return nil
}

func validateCategoryInput(userID, name string, sortOrder int) error {
	verr := &apperrors.ValidationError{}
	if userID == "" {
		verr.AddField("userID", "must not be empty")
	}
	if name == "" {
		verr.AddField("name", "must not be empty")
	}
	if sortOrder < 0 {
		verr.AddField("sortOrder", "must not be negative")
	}
	if verr.HasFields() {
		return verr
	}
	return nil
}
