// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for computing a financial summary.
// Nil dates leave that side of the window unconstrained.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the output of a summary computation.
type GetSummaryOutput struct {
	Summary *entity.Summary
}

// GetSummaryUseCase computes total income, total expenses, balance and the
// per-category expense breakdown for a user within an optional date window.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute computes the summary. The income sum, expense sum and category
// group-by are dispatched concurrently against the store over the identical
// predicate; a failure in any of them fails the whole aggregate.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	filter := adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	var (
		totalIncome   decimal.Decimal
		totalExpenses decimal.Decimal
		groups        []adapter.CategoryGroup
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := uc.transactionRepo.SumAmountByType(gctx, filter, entity.TransactionTypeIncome)
		if err != nil {
			return fmt.Errorf("failed to sum income: %w", err)
		}
		totalIncome = sum
		return nil
	})

	g.Go(func() error {
		sum, err := uc.transactionRepo.SumAmountByType(gctx, filter, entity.TransactionTypeExpense)
		if err != nil {
			return fmt.Errorf("failed to sum expenses: %w", err)
		}
		totalExpenses = sum
		return nil
	})

	g.Go(func() error {
		result, err := uc.transactionRepo.GroupExpensesByCategory(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to group expenses by category: %w", err)
		}
		groups = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown, err := uc.joinCategories(ctx, input.UserID, groups)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Summary: &entity.Summary{
			TotalIncome:        totalIncome,
			TotalExpenses:      totalExpenses,
			Balance:            totalIncome.Sub(totalExpenses),
			ExpensesByCategory: breakdown,
		},
	}, nil
}

// joinCategories resolves category metadata for the grouped expense rows.
// Lookups are scoped to the owner, so a cross-owner category ID can never be
// matched; a group whose category cannot be resolved is a data-integrity
// fault and is logged and omitted from the breakdown rather than failing the
// whole summary.
func (uc *GetSummaryUseCase) joinCategories(
	ctx context.Context,
	userID uuid.UUID,
	groups []adapter.CategoryGroup,
) ([]entity.CategoryExpense, error) {
	if len(groups) == 0 {
		return []entity.CategoryExpense{}, nil
	}

	ids := make([]uuid.UUID, len(groups))
	for i, group := range groups {
		ids[i] = group.CategoryID
	}

	categories, err := uc.categoryRepo.FindByIDsAndOwner(ctx, ids, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for breakdown: %w", err)
	}

	categoryMap := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = category
	}

	breakdown := make([]entity.CategoryExpense, 0, len(groups))
	for _, group := range groups {
		category, ok := categoryMap[group.CategoryID]
		if !ok {
			slog.Warn("summary breakdown references unknown category",
				"category_id", group.CategoryID,
				"user_id", userID,
			)
			continue
		}
		breakdown = append(breakdown, entity.CategoryExpense{
			Category: category,
			Total:    group.Total,
			Count:    group.Count,
		})
	}

	return breakdown, nil
}
