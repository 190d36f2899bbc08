// Package report contains reporting and export use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/application/usecase/transaction"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

// MonthlyReportInput represents the input for a monthly report.
type MonthlyReportInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// ReportPeriod represents the date boundaries of a report.
type ReportPeriod struct {
	Year      int
	Month     int
	StartDate time.Time
	EndDate   time.Time
}

// MonthlyReportOutput represents the output of a monthly report: the period
// boundaries, the summary, the full unpaginated transaction list and its count.
type MonthlyReportOutput struct {
	Period            ReportPeriod
	Summary           *entity.Summary
	Transactions      []*entity.TransactionWithCategory
	TotalTransactions int
}

// MonthlyReportUseCase builds the report for one calendar month.
type MonthlyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryUseCase  *transaction.GetSummaryUseCase
}

// NewMonthlyReportUseCase creates a new MonthlyReportUseCase instance.
func NewMonthlyReportUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryUseCase *transaction.GetSummaryUseCase,
) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		transactionRepo: transactionRepo,
		summaryUseCase:  summaryUseCase,
	}
}

// Execute builds the monthly report. The record list and the summary are
// fetched concurrently over the same window.
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, input MonthlyReportInput) (*MonthlyReportOutput, error) {
	if err := validateYearMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	startDate, endDate := MonthBounds(input.Year, input.Month)

	var (
		transactions []*entity.TransactionWithCategory
		summary      *entity.Summary
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := uc.transactionRepo.FindByDateRange(gctx, input.UserID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("failed to fetch monthly transactions: %w", err)
		}
		transactions = result
		return nil
	})

	g.Go(func() error {
		output, err := uc.summaryUseCase.Execute(gctx, transaction.GetSummaryInput{
			UserID:    input.UserID,
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		if err != nil {
			return fmt.Errorf("failed to compute monthly summary: %w", err)
		}
		summary = output.Summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MonthlyReportOutput{
		Period: ReportPeriod{
			Year:      input.Year,
			Month:     input.Month,
			StartDate: startDate,
			EndDate:   endDate,
		},
		Summary:           summary,
		Transactions:      transactions,
		TotalTransactions: len(transactions),
	}, nil
}

// validateYearMonth rejects invalid periods before any store query runs.
func validateYearMonth(year, month int) error {
	if year == 0 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year is required",
			domainerror.ErrInvalidReportYear,
		)
	}
	if month < 1 || month > 12 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidReportMonth,
		)
	}
	return nil
}
