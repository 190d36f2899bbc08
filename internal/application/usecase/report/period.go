// Package report contains reporting and export use cases.
package report

import (
	"fmt"
	"time"
)

// monthNames holds the localized (pt-BR) month labels, January first.
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the localized label for a month in [1, 12].
func MonthName(month int) string {
	return monthNames[month-1]
}

// MonthBounds returns the inclusive date window of a calendar month: the
// first instant of its first day through 23:59:59.999 of its last day, in UTC.
func MonthBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// YearBounds returns the inclusive date window of a calendar year.
func YearBounds(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(1, 0, 0).Add(-time.Millisecond)
	return start, end
}

// exportFilename builds the export filename for a date window.
func exportFilename(startDate, endDate time.Time, extension string) string {
	return fmt.Sprintf("financial_report_%s_%s.%s",
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
		extension,
	)
}
