package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
)

func TestRenderHTML(t *testing.T) {
	userID := uuid.New()
	food := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Alimentação"}

	doc := adapter.ReportDocument{
		UserName:  "Maria Silva",
		UserEmail: "maria@example.com",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Summary: &entity.Summary{
			TotalIncome:   decimal.NewFromFloat(5000),
			TotalExpenses: decimal.NewFromFloat(120.5),
			Balance:       decimal.NewFromFloat(4879.5),
			ExpensesByCategory: []entity.CategoryExpense{
				{Category: food, Total: decimal.NewFromFloat(120.5), Count: 1},
			},
		},
		Transactions: []*entity.TransactionWithCategory{
			{
				Transaction: &entity.Transaction{
					ID:          uuid.New(),
					UserID:      userID,
					Date:        time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
					Description: "Supermercado",
					Amount:      decimal.NewFromFloat(120.5),
					Type:        entity.TransactionTypeExpense,
					CategoryID:  food.ID,
				},
				Category: food,
			},
		},
	}

	t.Run("renders header, summary and rows", func(t *testing.T) {
		output, err := RenderHTML(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		html := string(output)

		for _, want := range []string{
			"Maria Silva",
			"01/01/2024",
			"31/01/2024",
			"5000.00",
			"120.50",
			"4879.50",
			"Alimentação",
			"Supermercado",
			"10/01/2024",
			"Despesa",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("expected rendered HTML to contain %q", want)
			}
		}
	})

	t.Run("renders the empty state without records", func(t *testing.T) {
		empty := doc
		empty.Transactions = nil
		empty.Summary = &entity.Summary{
			TotalIncome:        decimal.Zero,
			TotalExpenses:      decimal.Zero,
			Balance:            decimal.Zero,
			ExpensesByCategory: []entity.CategoryExpense{},
		}

		output, err := RenderHTML(empty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		html := string(output)

		if !strings.Contains(html, "Nenhum lançamento no período") {
			t.Error("expected the empty state message")
		}
		if strings.Contains(html, "Supermercado") {
			t.Error("did not expect transaction rows")
		}
	})

	t.Run("colors the balance by sign", func(t *testing.T) {
		output, err := RenderHTML(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(output), `class="value income">R$ 4879.50`) {
			t.Error("expected a non-negative balance to carry the income class")
		}

		negative := doc
		negative.Summary = &entity.Summary{
			TotalIncome:        decimal.NewFromFloat(100),
			TotalExpenses:      decimal.NewFromFloat(250),
			Balance:            decimal.NewFromFloat(-150),
			ExpensesByCategory: []entity.CategoryExpense{},
		}

		output, err = RenderHTML(negative)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(output), `class="value expense">R$ -150.00`) {
			t.Error("expected a negative balance to carry the expense class")
		}
	})

	t.Run("escapes markup in descriptions", func(t *testing.T) {
		unsafe := doc
		unsafe.Transactions = []*entity.TransactionWithCategory{
			{
				Transaction: &entity.Transaction{
					ID:          uuid.New(),
					UserID:      userID,
					Date:        time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
					Description: "<script>alert(1)</script>",
					Amount:      decimal.NewFromFloat(10),
					Type:        entity.TransactionTypeExpense,
					CategoryID:  food.ID,
				},
				Category: food,
			},
		}

		output, err := RenderHTML(unsafe)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(output), "<script>alert(1)</script>") {
			t.Error("expected the description to be escaped")
		}
	})
}
