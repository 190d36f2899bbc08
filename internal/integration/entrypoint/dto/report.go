// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-control/backend/internal/application/usecase/report"
)

// ReportPeriodResponse represents the date boundaries of a report.
type ReportPeriodResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// MonthlyReportResponse represents the response for a monthly report.
type MonthlyReportResponse struct {
	Period            ReportPeriodResponse  `json:"period"`
	Summary           SummaryResponse       `json:"summary"`
	Transactions      []TransactionResponse `json:"transactions"`
	TotalTransactions int                   `json:"total_transactions"`
}

// MonthlySummaryResponse represents one month's aggregate within a yearly report.
type MonthlySummaryResponse struct {
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Summary   SummaryResponse `json:"summary"`
}

// YearlyReportResponse represents the response for a yearly report.
type YearlyReportResponse struct {
	Year        int                      `json:"year"`
	Summary     SummaryResponse          `json:"summary"`
	MonthlyData []MonthlySummaryResponse `json:"monthly_data"`
}

// ToMonthlyReportResponse converts a MonthlyReportOutput to its response DTO.
func ToMonthlyReportResponse(output *report.MonthlyReportOutput) MonthlyReportResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return MonthlyReportResponse{
		Period: ReportPeriodResponse{
			Year:      output.Period.Year,
			Month:     output.Period.Month,
			StartDate: output.Period.StartDate.Format("2006-01-02"),
			EndDate:   output.Period.EndDate.Format("2006-01-02"),
		},
		Summary:           ToSummaryResponse(output.Summary),
		Transactions:      transactions,
		TotalTransactions: output.TotalTransactions,
	}
}

// ToYearlyReportResponse converts a YearlyReportOutput to its response DTO.
func ToYearlyReportResponse(output *report.YearlyReportOutput) YearlyReportResponse {
	monthlyData := make([]MonthlySummaryResponse, len(output.MonthlyData))
	for i, month := range output.MonthlyData {
		monthlyData[i] = MonthlySummaryResponse{
			Month:     month.Month,
			MonthName: month.MonthName,
			Summary:   ToSummaryResponse(month.Summary),
		}
	}

	return YearlyReportResponse{
		Year:        output.Year,
		Summary:     ToSummaryResponse(output.Summary),
		MonthlyData: monthlyData,
	}
}
