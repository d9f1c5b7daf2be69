// Package export turns rendered résumé HTML into a PDF via a headless
// browser. The browser is the only component that understands the print CSS
// the layout variants rely on.
package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// browserTimeout bounds one print run, browser startup included.
const browserTimeout = 60 * time.Second

// PDFExporter prints HTML documents to A4 PDFs.
type PDFExporter struct {
	// chromePath overrides the browser binary, taken from CHROME_PATH.
	chromePath string
}

// NewPDFExporter builds an exporter honoring the CHROME_PATH override.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{chromePath: os.Getenv("CHROME_PATH")}
}

// ExportPDF prints the document to an A4 PDF with backgrounds, zero margins
// and double scale, matching the on-screen preview.
func (e *PDFExporter) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, browserTimeout)
	defer cancelRun()

	// The document is self-contained (inline CSS, data-URL images), so a
	// file:// navigation needs no sibling assets.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, &ExportError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &ExportError{Message: "failed to write document", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &ExportError{Message: "browser print failed", Cause: err}
	}
	return pdf, nil
}
