// Package report contains reporting and export use cases.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
)

// csvHeader is the fixed header line of every CSV export.
var csvHeader = []string{"Date", "Description", "Amount", "Type", "Category"}

// CSVReportInput represents the input for a CSV export.
type CSVReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CSVReportOutput represents the output of a CSV export.
type CSVReportOutput struct {
	Content  []byte
	Filename string
}

// CSVReportUseCase exports the transactions of a date window as CSV.
type CSVReportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCSVReportUseCase creates a new CSVReportUseCase instance.
func NewCSVReportUseCase(transactionRepo adapter.TransactionRepository) *CSVReportUseCase {
	return &CSVReportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the CSV export: the fixed header line followed by one row per
// transaction, date descending. A window without matches yields the header only.
func (uc *CSVReportUseCase) Execute(ctx context.Context, input CSVReportInput) (*CSVReportOutput, error) {
	if err := validateExportWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for CSV export: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		categoryName := ""
		if txn.Category != nil {
			categoryName = txn.Category.Name
		} else {
			slog.Warn("CSV export row references unknown category",
				"transaction_id", txn.Transaction.ID,
				"category_id", txn.Transaction.CategoryID,
			)
		}

		row := []string{
			txn.Transaction.Date.Format("2006-01-02"),
			txn.Transaction.Description,
			txn.Transaction.Amount.String(),
			TypeLabel(txn.Transaction.Type),
			categoryName,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &CSVReportOutput{
		Content:  buf.Bytes(),
		Filename: exportFilename(input.StartDate, input.EndDate, "csv"),
	}, nil
}

// TypeLabel returns the localized (pt-BR) label for a transaction type, used
// consistently across CSV and PDF exports.
func TypeLabel(transactionType entity.TransactionType) string {
	if transactionType == entity.TransactionTypeIncome {
		return "Receita"
	}
	return "Despesa"
}
