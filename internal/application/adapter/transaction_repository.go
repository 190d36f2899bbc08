// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/domain/entity"
)

// TransactionFilter defines the closed set of filter dimensions for querying
// transactions. Every supported predicate is an explicit optional field; absent
// fields (nil pointers, empty strings) impose no constraint. All supplied
// fields combine with logical AND.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time // Inclusive lower bound on the transaction date
	EndDate    *time.Time // Inclusive upper bound on the transaction date
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	MinAmount  *decimal.Decimal // Inclusive lower bound on the amount
	MaxAmount  *decimal.Decimal // Inclusive upper bound on the amount
	Search     string // Case-insensitive substring match on the description
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents one page of a filtered transaction listing.
type TransactionListResult struct {
	Transactions []*entity.TransactionWithCategory
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// CategoryGroup represents the grouped expense aggregate for one category.
type CategoryGroup struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
	Count      int
}

// TransactionRepository defines the interface for transaction persistence operations.
// Queries are always scoped to the filter's user; ordering is date descending
// with store-native insertion order breaking ties.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction with its category by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions matching the filter, paginated and
	// ordered by date descending, together with the total match count.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// FindByDateRange retrieves the full unpaginated transaction list for a
	// user within an inclusive date window, joined with categories and ordered
	// by date descending. Used by reports and exports.
	FindByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.TransactionWithCategory, error)

	// SumAmountByType returns the sum of amounts over the filtered transactions
	// of the given type. An empty match sums to zero.
	SumAmountByType(ctx context.Context, filter TransactionFilter, transactionType entity.TransactionType) (decimal.Decimal, error)

	// GroupExpensesByCategory returns per-category sums and counts over the
	// filtered EXPENSE transactions. Categories without matches are absent.
	GroupExpensesByCategory(ctx context.Context, filter TransactionFilter) ([]CategoryGroup, error)

	// CountByCategory counts transactions referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing transaction in the database (full-field replace).
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
