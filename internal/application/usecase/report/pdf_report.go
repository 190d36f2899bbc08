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

// PDFReportInput represents the input for a PDF export.
type PDFReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// PDFReportOutput represents the output of a PDF export.
type PDFReportOutput struct {
	Content  []byte
	Filename string
}

// PDFReportUseCase exports the transactions and summary of a date window as a
// paginated PDF document.
type PDFReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	summaryUseCase  *transaction.GetSummaryUseCase
	renderer        adapter.ReportRenderer
}

// NewPDFReportUseCase creates a new PDFReportUseCase instance.
func NewPDFReportUseCase(
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	summaryUseCase *transaction.GetSummaryUseCase,
	renderer adapter.ReportRenderer,
) *PDFReportUseCase {
	return &PDFReportUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		summaryUseCase:  summaryUseCase,
		renderer:        renderer,
	}
}

// Execute builds the PDF export. Records, summary and the owner profile are
// fetched concurrently; the renderer acquires its rendering resource per call
// and releases it on every exit path, so a rendering failure surfaces here as
// an export failure with nothing left behind.
func (uc *PDFReportUseCase) Execute(ctx context.Context, input PDFReportInput) (*PDFReportOutput, error) {
	if err := validateExportWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	var (
		transactions []*entity.TransactionWithCategory
		summary      *entity.Summary
		user         *entity.User
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := uc.transactionRepo.FindByDateRange(gctx, input.UserID, input.StartDate, input.EndDate)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions for PDF export: %w", err)
		}
		transactions = result
		return nil
	})

	g.Go(func() error {
		output, err := uc.summaryUseCase.Execute(gctx, transaction.GetSummaryInput{
			UserID:    input.UserID,
			StartDate: &input.StartDate,
			EndDate:   &input.EndDate,
		})
		if err != nil {
			return fmt.Errorf("failed to compute summary for PDF export: %w", err)
		}
		summary = output.Summary
		return nil
	})

	g.Go(func() error {
		result, err := uc.userRepo.FindByID(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to load user profile for PDF export: %w", err)
		}
		user = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := adapter.ReportDocument{
		UserName:     user.Name,
		UserEmail:    user.Email,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Summary:      summary,
		Transactions: transactions,
	}

	content, err := uc.renderer.RenderPDF(ctx, doc)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportRenderingFailed,
			"failed to render PDF report",
			err,
		)
	}

	return &PDFReportOutput{
		Content:  content,
		Filename: exportFilename(input.StartDate, input.EndDate, "pdf"),
	}, nil
}

// validateExportWindow rejects export requests with a missing or inverted
// date range before any store query runs.
func validateExportWindow(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReportStartDate,
			"startDate is required",
			domainerror.ErrMissingReportStartDate,
		)
	}
	if endDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReportEndDate,
			"endDate is required",
			domainerror.ErrMissingReportEndDate,
		)
	}
	if endDate.Before(startDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportDateRange,
			"endDate must not be before startDate",
			domainerror.ErrInvalidReportDateRange,
		)
	}
	return nil
}
