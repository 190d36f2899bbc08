// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-control/backend/internal/application/usecase/report"
	domainerror "github.com/expense-control/backend/internal/domain/error"
	"github.com/expense-control/backend/internal/integration/entrypoint/dto"
	"github.com/expense-control/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting and export endpoints.
type ReportController struct {
	monthlyUseCase *report.MonthlyReportUseCase
	yearlyUseCase  *report.YearlyReportUseCase
	csvUseCase     *report.CSVReportUseCase
	pdfUseCase     *report.PDFReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlyUseCase *report.MonthlyReportUseCase,
	yearlyUseCase *report.YearlyReportUseCase,
	csvUseCase *report.CSVReportUseCase,
	pdfUseCase *report.PDFReportUseCase,
) *ReportController {
	return &ReportController{
		monthlyUseCase: monthlyUseCase,
		yearlyUseCase:  yearlyUseCase,
		csvUseCase:     csvUseCase,
		pdfUseCase:     pdfUseCase,
	}
}

// Monthly handles GET /reports/monthly requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, month, ok := c.parseYearMonth(ctx)
	if !ok {
		return
	}

	input := report.MonthlyReportInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// Yearly handles GET /reports/yearly requests.
func (c *ReportController) Yearly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	yearStr := ctx.Query("year")
	year, err := strconv.Atoi(yearStr)
	if yearStr == "" || err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidReportYear),
		})
		return
	}

	input := report.YearlyReportInput{
		UserID: userID,
		Year:   year,
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlyReportResponse(output))
}

// ExportCSV handles GET /reports/export/csv requests. The document is returned
// as an attachment; nothing is stored server side.
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseExportWindow(ctx)
	if !ok {
		return
	}

	input := report.CSVReportInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.csvUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", output.Content)
}

// ExportPDF handles GET /reports/export/pdf requests.
func (c *ReportController) ExportPDF(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseExportWindow(ctx)
	if !ok {
		return
	}

	input := report.PDFReportInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.pdfUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", output.Content)
}

// parseYearMonth parses the required year and month query parameters. On
// failure it writes the error response and returns ok=false.
func (c *ReportController) parseYearMonth(ctx *gin.Context) (year, month int, ok bool) {
	yearStr := ctx.Query("year")
	year, err := strconv.Atoi(yearStr)
	if yearStr == "" || err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidReportYear),
		})
		return 0, 0, false
	}

	monthStr := ctx.Query("month")
	month, err = strconv.Atoi(monthStr)
	if monthStr == "" || err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidReportMonth),
		})
		return 0, 0, false
	}

	return year, month, true
}

// parseExportWindow parses the required startDate and endDate query parameters.
// On failure it writes the error response and returns ok=false.
func (c *ReportController) parseExportWindow(ctx *gin.Context) (startDate, endDate time.Time, ok bool) {
	startDateStr := ctx.Query("startDate")
	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate is required",
			Code:  string(domainerror.ErrCodeMissingReportStartDate),
		})
		return time.Time{}, time.Time{}, false
	}
	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid startDate format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReportDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	endDateStr := ctx.Query("endDate")
	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "endDate is required",
			Code:  string(domainerror.ErrCodeMissingReportEndDate),
		})
		return time.Time{}, time.Time{}, false
	}
	endDate, err = time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid endDate format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReportDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	// The window is inclusive of the whole end day.
	endDate = endDate.Add(24*time.Hour - time.Millisecond)

	return startDate, endDate, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportMonth,
		domainerror.ErrCodeInvalidReportYear,
		domainerror.ErrCodeMissingReportStartDate,
		domainerror.ErrCodeMissingReportEndDate,
		domainerror.ErrCodeInvalidReportDateRange,
		domainerror.ErrCodeInvalidReportDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
