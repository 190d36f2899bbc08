// Package render produces the printable financial report: an HTML layout
// filled from a report document, then converted to PDF by a headless browser.
package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/expense-control/backend/internal/application/adapter"
)

const (
	// A4 paper dimensions in inches, as expected by the print API.
	a4WidthInches  = 8.27
	a4HeightInches = 11.69

	// pageMarginInches is 1cm expressed in inches.
	pageMarginInches = 0.394

	// renderTimeout bounds a single PDF render.
	renderTimeout = 30 * time.Second
)

// chromeRenderer implements adapter.ReportRenderer on a headless browser.
// Every call launches a fresh browser and tears it down on all exit paths, so
// one renderer instance serves concurrent exports safely.
type chromeRenderer struct{}

// NewChromeRenderer creates a new headless browser report renderer.
func NewChromeRenderer() adapter.ReportRenderer {
	return &chromeRenderer{}
}

// RenderPDF fills the report layout with the document's data and prints it to
// an A4 PDF with 1cm margins.
func (r *chromeRenderer) RenderPDF(ctx context.Context, doc adapter.ReportDocument) ([]byte, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(pageMarginInches).
				WithMarginBottom(pageMarginInches).
				WithMarginLeft(pageMarginInches).
				WithMarginRight(pageMarginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print report to PDF: %w", err)
	}

	return pdf, nil
}
