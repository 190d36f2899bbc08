// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-control/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByOwner retrieves all categories for a given user, ordered by name.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByIDsAndOwner retrieves the categories matching the given IDs that
	// belong to the user. IDs owned by someone else are simply not returned.
	FindByIDsAndOwner(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndOwner checks if a category with the given name exists for the user.
	ExistsByNameAndOwner(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
