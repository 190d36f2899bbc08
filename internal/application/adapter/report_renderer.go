// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-control/backend/internal/domain/entity"
)

// ReportDocument carries everything the document renderer needs to produce
// the paginated financial report.
type ReportDocument struct {
	UserName     string
	UserEmail    string
	StartDate    time.Time
	EndDate      time.Time
	Summary      *entity.Summary
	Transactions []*entity.TransactionWithCategory
}

// ReportRenderer converts a report document into a paginated binary (PDF)
// stream. Implementations acquire their rendering resource fresh on every call
// and release it unconditionally before returning, so a renderer instance is
// safe to share across concurrent exports.
type ReportRenderer interface {
	RenderPDF(ctx context.Context, doc ReportDocument) ([]byte, error)
}
