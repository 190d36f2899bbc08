// Package render produces the printable financial report: an HTML layout
// filled from a report document, then converted to PDF by a headless browser.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/application/usecase/report"
	"github.com/expense-control/backend/internal/domain/entity"
)

//go:embed templates/report.html
var templateFS embed.FS

// reportTemplate is parsed once at startup; a parse failure is a programming
// error and panics immediately.
var reportTemplate = template.Must(
	template.New("report.html").Funcs(template.FuncMap{
		"money": func(amount decimal.Decimal) string {
			return amount.StringFixed(2)
		},
		"formatDate": func(t time.Time) string {
			return t.Format("02/01/2006")
		},
		"typeLabel": report.TypeLabel,
		"categoryName": func(txn *entity.TransactionWithCategory) string {
			if txn.Category == nil {
				return ""
			}
			return txn.Category.Name
		},
	}).ParseFS(templateFS, "templates/report.html"),
)

// RenderHTML fills the report layout with the document's data.
func RenderHTML(doc adapter.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.Bytes(), nil
}
