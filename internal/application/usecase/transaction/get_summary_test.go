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
)

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("computes totals, balance and category breakdown", func(t *testing.T) {
		foodCategory := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Alimentação"}

		repo := newFakeTransactionRepo()
		repo.sums[entity.TransactionTypeIncome] = decimal.NewFromFloat(5000.00)
		repo.sums[entity.TransactionTypeExpense] = decimal.NewFromFloat(120.50)
		repo.groups = []adapter.CategoryGroup{
			{CategoryID: foodCategory.ID, Total: decimal.NewFromFloat(120.50), Count: 1},
		}

		categoryRepo := newFakeCategoryRepo()
		categoryRepo.add(foodCategory)

		uc := NewGetSummaryUseCase(repo, categoryRepo)

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary := output.Summary
		if !summary.TotalIncome.Equal(decimal.NewFromFloat(5000.00)) {
			t.Errorf("expected total income 5000.00, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpenses.Equal(decimal.NewFromFloat(120.50)) {
			t.Errorf("expected total expenses 120.50, got %s", summary.TotalExpenses)
		}
		if !summary.Balance.Equal(decimal.NewFromFloat(4879.50)) {
			t.Errorf("expected balance 4879.50, got %s", summary.Balance)
		}

		if len(summary.ExpensesByCategory) != 1 {
			t.Fatalf("expected 1 breakdown entry, got %d", len(summary.ExpensesByCategory))
		}
		breakdown := summary.ExpensesByCategory[0]
		if breakdown.Category.Name != "Alimentação" {
			t.Errorf("expected category name Alimentação, got %s", breakdown.Category.Name)
		}
		if !breakdown.Total.Equal(decimal.NewFromFloat(120.50)) {
			t.Errorf("expected category total 120.50, got %s", breakdown.Total)
		}
		if breakdown.Count != 1 {
			t.Errorf("expected category count 1, got %d", breakdown.Count)
		}
	})

	t.Run("returns zero totals and empty breakdown for an empty window", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		categoryRepo := newFakeCategoryRepo()
		uc := NewGetSummaryUseCase(repo, categoryRepo)

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary := output.Summary
		if !summary.TotalIncome.IsZero() {
			t.Errorf("expected zero income, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpenses.IsZero() {
			t.Errorf("expected zero expenses, got %s", summary.TotalExpenses)
		}
		if !summary.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", summary.Balance)
		}
		if summary.ExpensesByCategory == nil {
			t.Error("expected empty breakdown slice, got nil")
		}
		if len(summary.ExpensesByCategory) != 0 {
			t.Errorf("expected no breakdown entries, got %d", len(summary.ExpensesByCategory))
		}
	})

	t.Run("balance goes negative when expenses exceed income", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.sums[entity.TransactionTypeIncome] = decimal.NewFromFloat(100.00)
		repo.sums[entity.TransactionTypeExpense] = decimal.NewFromFloat(250.00)
		uc := NewGetSummaryUseCase(repo, newFakeCategoryRepo())

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.Balance.Equal(decimal.NewFromFloat(-150.00)) {
			t.Errorf("expected balance -150.00, got %s", output.Summary.Balance)
		}
	})

	t.Run("omits breakdown rows whose category cannot be resolved", func(t *testing.T) {
		knownCategory := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Transporte"}

		repo := newFakeTransactionRepo()
		repo.sums[entity.TransactionTypeExpense] = decimal.NewFromFloat(80.00)
		repo.groups = []adapter.CategoryGroup{
			{CategoryID: knownCategory.ID, Total: decimal.NewFromFloat(50.00), Count: 2},
			{CategoryID: uuid.New(), Total: decimal.NewFromFloat(30.00), Count: 1},
		}

		categoryRepo := newFakeCategoryRepo()
		categoryRepo.add(knownCategory)

		uc := NewGetSummaryUseCase(repo, categoryRepo)

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Summary.ExpensesByCategory) != 1 {
			t.Fatalf("expected 1 breakdown entry, got %d", len(output.Summary.ExpensesByCategory))
		}
		if output.Summary.ExpensesByCategory[0].Category.ID != knownCategory.ID {
			t.Errorf("expected the known category to survive, got %s", output.Summary.ExpensesByCategory[0].Category.ID)
		}
		// Totals still reflect every matching record, resolved category or not.
		if !output.Summary.TotalExpenses.Equal(decimal.NewFromFloat(80.00)) {
			t.Errorf("expected total expenses 80.00, got %s", output.Summary.TotalExpenses)
		}
	})

	t.Run("omits breakdown rows for categories owned by another user", func(t *testing.T) {
		foreignCategory := &entity.Category{ID: uuid.New(), UserID: uuid.New(), Name: "Outros"}

		repo := newFakeTransactionRepo()
		repo.groups = []adapter.CategoryGroup{
			{CategoryID: foreignCategory.ID, Total: decimal.NewFromFloat(10.00), Count: 1},
		}

		categoryRepo := newFakeCategoryRepo()
		categoryRepo.add(foreignCategory)

		uc := NewGetSummaryUseCase(repo, categoryRepo)

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Summary.ExpensesByCategory) != 0 {
			t.Errorf("expected no breakdown entries, got %d", len(output.Summary.ExpensesByCategory))
		}
	})

	t.Run("forwards the date window to every aggregate query", func(t *testing.T) {
		startDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)

		repo := newFakeTransactionRepo()
		uc := NewGetSummaryUseCase(repo, newFakeCategoryRepo())

		_, err := uc.Execute(ctx, GetSummaryInput{
			UserID:    userID,
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.lastFilter.StartDate == nil || !repo.lastFilter.StartDate.Equal(startDate) {
			t.Errorf("expected start date %v, got %v", startDate, repo.lastFilter.StartDate)
		}
		if repo.lastFilter.EndDate == nil || !repo.lastFilter.EndDate.Equal(endDate) {
			t.Errorf("expected end date %v, got %v", endDate, repo.lastFilter.EndDate)
		}
	})

	t.Run("fails when a sum query fails", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.sumErr = errors.New("query timeout")
		uc := NewGetSummaryUseCase(repo, newFakeCategoryRepo())

		_, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("fails when the group-by query fails", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.groupsErr = errors.New("query timeout")
		uc := NewGetSummaryUseCase(repo, newFakeCategoryRepo())

		_, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("fails when the category lookup fails", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.groups = []adapter.CategoryGroup{
			{CategoryID: uuid.New(), Total: decimal.NewFromFloat(10.00), Count: 1},
		}
		categoryRepo := newFakeCategoryRepo()
		categoryRepo.findErr = errors.New("connection refused")

		uc := NewGetSummaryUseCase(repo, categoryRepo)

		_, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
