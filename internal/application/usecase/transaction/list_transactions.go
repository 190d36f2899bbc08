// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

const (
	// DefaultPage is the page used when the caller does not supply one.
	DefaultPage = 1
	// DefaultLimit is the page size used when the caller does not supply one.
	DefaultLimit = 10
	// MaxLimit caps the page size a single request may ask for.
	MaxLimit = 100
)

// ListTransactionsInput represents the input for listing transactions.
// Page and Limit of zero mean "not supplied" and take the defaults; explicit
// negative values are rejected.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	Page       int
	Limit      int
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles the filtered, paginated transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing. Results are ordered by date
// descending; ties fall back to store insertion order, which callers must not
// depend on.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPage,
			"page must be greater than zero",
			domainerror.ErrInvalidPage,
		)
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidLimit,
		)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if input.MinAmount != nil && input.MaxAmount != nil && input.MinAmount.GreaterThan(*input.MaxAmount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmountRange,
			"minAmount must not exceed maxAmount",
			domainerror.ErrInvalidAmountRange,
		)
	}

	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be EXPENSE or INCOME",
			domainerror.ErrInvalidTransactionType,
		)
	}

	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		MinAmount:  input.MinAmount,
		MaxAmount:  input.MaxAmount,
		Search:     input.Search,
	}

	pagination := adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{
		Transactions: result.Transactions,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}
