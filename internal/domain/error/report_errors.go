// Package error defines domain-specific errors for the Expense Control application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportMonth is returned when the report month is outside [1, 12].
	ErrInvalidReportMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidReportYear is returned when the report year is missing or zero.
	ErrInvalidReportYear = errors.New("year is required")

	// ErrMissingReportStartDate is returned when an export is requested without a start date.
	ErrMissingReportStartDate = errors.New("startDate is required")

	// ErrMissingReportEndDate is returned when an export is requested without an end date.
	ErrMissingReportEndDate = errors.New("endDate is required")

	// ErrInvalidReportDateRange is returned when the end date precedes the start date.
	ErrInvalidReportDateRange = errors.New("endDate must not be before startDate")

	// ErrReportRenderingFailed is returned when the document rendering resource fails.
	ErrReportRenderingFailed = errors.New("report rendering failed")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth      ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportYear       ReportErrorCode = "RPT-010002"
	ErrCodeMissingReportStartDate  ReportErrorCode = "RPT-010003"
	ErrCodeMissingReportEndDate    ReportErrorCode = "RPT-010004"
	ErrCodeInvalidReportDateRange  ReportErrorCode = "RPT-010005"
	ErrCodeInvalidReportDateFormat ReportErrorCode = "RPT-010006"

	// Rendering errors (03XXXX)
	ErrCodeReportRenderingFailed ReportErrorCode = "RPT-030001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
