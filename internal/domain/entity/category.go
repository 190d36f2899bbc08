// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Category represents a user-owned label grouping transactions.
// Name uniqueness is scoped to the owning user, not global.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Color       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity.
// Defaulting for the color is applied in the use case layer before calling this.
func NewCategory(userID uuid.UUID, name, color, description string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Color:       color,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
