package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

func TestListTransactionsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies default page and limit when not supplied", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.lastPagination.Page != DefaultPage {
			t.Errorf("expected page %d, got %d", DefaultPage, repo.lastPagination.Page)
		}
		if repo.lastPagination.Limit != DefaultLimit {
			t.Errorf("expected limit %d, got %d", DefaultLimit, repo.lastPagination.Limit)
		}
		if output.Pagination.Page != DefaultPage {
			t.Errorf("expected output page %d, got %d", DefaultPage, output.Pagination.Page)
		}
	})

	t.Run("clamps limit above the maximum", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Limit: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.lastPagination.Limit != MaxLimit {
			t.Errorf("expected limit clamped to %d, got %d", MaxLimit, repo.lastPagination.Limit)
		}
	})

	t.Run("rejects negative page", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Page: -1})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidPage)
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Limit: -5})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidLimit)
	})

	t.Run("rejects minAmount above maxAmount", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		minAmount := decimal.NewFromInt(100)
		maxAmount := decimal.NewFromInt(50)
		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:    userID,
			MinAmount: &minAmount,
			MaxAmount: &maxAmount,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidAmountRange)
	})

	t.Run("accepts equal minAmount and maxAmount", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		amount := decimal.NewFromFloat(42.50)
		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:    userID,
			MinAmount: &amount,
			MaxAmount: &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		badType := entity.TransactionType("TRANSFER")
		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Type: &badType})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionType)
	})

	t.Run("forwards every filter dimension to the repository", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewListTransactionsUseCase(repo)

		startDate := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		categoryID := uuid.New()
		txnType := entity.TransactionTypeExpense
		minAmount := decimal.NewFromInt(10)
		maxAmount := decimal.NewFromInt(200)

		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:     userID,
			StartDate:  &startDate,
			EndDate:    &endDate,
			CategoryID: &categoryID,
			Type:       &txnType,
			MinAmount:  &minAmount,
			MaxAmount:  &maxAmount,
			Search:     "mercado",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		filter := repo.lastFilter
		if filter.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, filter.UserID)
		}
		if filter.StartDate == nil || !filter.StartDate.Equal(startDate) {
			t.Errorf("expected start date %v, got %v", startDate, filter.StartDate)
		}
		if filter.EndDate == nil || !filter.EndDate.Equal(endDate) {
			t.Errorf("expected end date %v, got %v", endDate, filter.EndDate)
		}
		if filter.CategoryID == nil || *filter.CategoryID != categoryID {
			t.Errorf("expected category ID %s, got %v", categoryID, filter.CategoryID)
		}
		if filter.Type == nil || *filter.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type EXPENSE, got %v", filter.Type)
		}
		if filter.MinAmount == nil || !filter.MinAmount.Equal(minAmount) {
			t.Errorf("expected minAmount %s, got %v", minAmount, filter.MinAmount)
		}
		if filter.MaxAmount == nil || !filter.MaxAmount.Equal(maxAmount) {
			t.Errorf("expected maxAmount %s, got %v", maxAmount, filter.MaxAmount)
		}
		if filter.Search != "mercado" {
			t.Errorf("expected search %q, got %q", "mercado", filter.Search)
		}
	})

	t.Run("returns pagination metadata from the repository", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.listResult = &adapter.TransactionListResult{
			Transactions: []*entity.TransactionWithCategory{},
			Total:        42,
			Page:         3,
			Limit:        10,
			TotalPages:   5,
		}
		uc := NewListTransactionsUseCase(repo)

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Page: 3, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Pagination.Total != 42 {
			t.Errorf("expected total 42, got %d", output.Pagination.Total)
		}
		if output.Pagination.TotalPages != 5 {
			t.Errorf("expected 5 total pages, got %d", output.Pagination.TotalPages)
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.listErr = errors.New("connection refused")
		uc := NewListTransactionsUseCase(repo)

		_, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}

func assertTransactionErrorCode(t *testing.T, err error, code domainerror.TransactionErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected a TransactionError, got %T: %v", err, err)
	}
	if txnErr.Code != code {
		t.Errorf("expected error code %s, got %s", code, txnErr.Code)
	}
}
