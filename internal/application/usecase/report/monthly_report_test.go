package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/usecase/transaction"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

func newSummaryUseCase(store *fakeStore) *transaction.GetSummaryUseCase {
	return transaction.NewGetSummaryUseCase(store, &fakeCategoryRepo{store: store})
}

func TestMonthlyReportUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("builds period, summary and full record list for the month", func(t *testing.T) {
		store := newFakeStore()
		food := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Alimentação"}
		store.addCategory(food)
		store.addTransaction(&entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Description: "Supermercado",
			Amount:      decimal.NewFromFloat(120.50),
			Type:        entity.TransactionTypeExpense,
			CategoryID:  food.ID,
		})
		store.addTransaction(&entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Description: "Salário",
			Amount:      decimal.NewFromFloat(5000),
			Type:        entity.TransactionTypeIncome,
			CategoryID:  food.ID,
		})
		// Outside the month, must not appear.
		store.addTransaction(&entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			Description: "Aluguel",
			Amount:      decimal.NewFromFloat(1500),
			Type:        entity.TransactionTypeExpense,
			CategoryID:  food.ID,
		})

		uc := NewMonthlyReportUseCase(store, newSummaryUseCase(store))

		output, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Period.Year != 2024 || output.Period.Month != 3 {
			t.Errorf("unexpected period %d-%d", output.Period.Year, output.Period.Month)
		}
		wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !output.Period.StartDate.Equal(wantStart) {
			t.Errorf("expected period start %v, got %v", wantStart, output.Period.StartDate)
		}

		if output.TotalTransactions != 2 {
			t.Errorf("expected 2 transactions, got %d", output.TotalTransactions)
		}
		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 transactions in the list, got %d", len(output.Transactions))
		}
		// Date descending.
		if output.Transactions[0].Transaction.Description != "Supermercado" {
			t.Errorf("expected the newest record first, got %q", output.Transactions[0].Transaction.Description)
		}

		if !output.Summary.TotalIncome.Equal(decimal.NewFromFloat(5000)) {
			t.Errorf("expected income 5000, got %s", output.Summary.TotalIncome)
		}
		if !output.Summary.TotalExpenses.Equal(decimal.NewFromFloat(120.50)) {
			t.Errorf("expected expenses 120.50, got %s", output.Summary.TotalExpenses)
		}
		if !output.Summary.Balance.Equal(decimal.NewFromFloat(4879.50)) {
			t.Errorf("expected balance 4879.50, got %s", output.Summary.Balance)
		}
	})

	t.Run("returns an empty report for a month without records", func(t *testing.T) {
		store := newFakeStore()
		uc := NewMonthlyReportUseCase(store, newSummaryUseCase(store))

		output, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.TotalTransactions != 0 {
			t.Errorf("expected 0 transactions, got %d", output.TotalTransactions)
		}
		if !output.Summary.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", output.Summary.Balance)
		}
	})

	t.Run("excludes other users' records", func(t *testing.T) {
		store := newFakeStore()
		store.addTransaction(&entity.Transaction{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Description: "Supermercado",
			Amount:      decimal.NewFromFloat(50),
			Type:        entity.TransactionTypeExpense,
			CategoryID:  uuid.New(),
		})

		uc := NewMonthlyReportUseCase(store, newSummaryUseCase(store))

		output, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TotalTransactions != 0 {
			t.Errorf("expected 0 transactions, got %d", output.TotalTransactions)
		}
	})

	t.Run("rejects a missing year", func(t *testing.T) {
		store := newFakeStore()
		uc := NewMonthlyReportUseCase(store, newSummaryUseCase(store))

		_, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Month: 3})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidReportYear)
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		store := newFakeStore()
		uc := NewMonthlyReportUseCase(store, newSummaryUseCase(store))

		for _, month := range []int{0, 13, -1} {
			_, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: month})
			assertReportErrorCode(t, err, domainerror.ErrCodeInvalidReportMonth)
		}
	})
}
