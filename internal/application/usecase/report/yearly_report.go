// Package report contains reporting and export use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/expense-control/backend/internal/application/usecase/transaction"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

// YearlyReportInput represents the input for a yearly report.
type YearlyReportInput struct {
	UserID uuid.UUID
	Year   int
}

// MonthlySummary represents one month's aggregate within a yearly report.
type MonthlySummary struct {
	Month     int
	MonthName string
	Summary   *entity.Summary
}

// YearlyReportOutput represents the output of a yearly report: the whole-year
// summary plus the ordered twelve per-month summaries (January first).
type YearlyReportOutput struct {
	Year        int
	Summary     *entity.Summary
	MonthlyData []MonthlySummary
}

// YearlyReportUseCase builds the report for one calendar year by rolling up
// twelve monthly summaries alongside a whole-year aggregate. Only summaries
// are computed per month; no per-month record lists are fetched.
type YearlyReportUseCase struct {
	summaryUseCase *transaction.GetSummaryUseCase
}

// NewYearlyReportUseCase creates a new YearlyReportUseCase instance.
func NewYearlyReportUseCase(summaryUseCase *transaction.GetSummaryUseCase) *YearlyReportUseCase {
	return &YearlyReportUseCase{
		summaryUseCase: summaryUseCase,
	}
}

// Execute builds the yearly report. The twelve monthly aggregations and the
// whole-year aggregation are independent and run concurrently; absent
// concurrent writes the monthly totals reconcile exactly to the yearly total.
func (uc *YearlyReportUseCase) Execute(ctx context.Context, input YearlyReportInput) (*YearlyReportOutput, error) {
	if input.Year == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year is required",
			domainerror.ErrInvalidReportYear,
		)
	}

	monthlyData := make([]MonthlySummary, 12)
	var yearSummary *entity.Summary

	g, gctx := errgroup.WithContext(ctx)

	for month := 1; month <= 12; month++ {
		month := month
		g.Go(func() error {
			startDate, endDate := MonthBounds(input.Year, month)
			output, err := uc.summaryUseCase.Execute(gctx, transaction.GetSummaryInput{
				UserID:    input.UserID,
				StartDate: &startDate,
				EndDate:   &endDate,
			})
			if err != nil {
				return fmt.Errorf("failed to compute summary for month %d: %w", month, err)
			}
			monthlyData[month-1] = MonthlySummary{
				Month:     month,
				MonthName: MonthName(month),
				Summary:   output.Summary,
			}
			return nil
		})
	}

	g.Go(func() error {
		startDate, endDate := YearBounds(input.Year)
		output, err := uc.summaryUseCase.Execute(gctx, transaction.GetSummaryInput{
			UserID:    input.UserID,
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		if err != nil {
			return fmt.Errorf("failed to compute yearly summary: %w", err)
		}
		yearSummary = output.Summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &YearlyReportOutput{
		Year:        input.Year,
		Summary:     yearSummary,
		MonthlyData: monthlyData,
	}, nil
}
