package infrastructure

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

// ChromedpRenderer prints HTML to an A4 PDF with headless Chrome. It starts
// a local browser unless RemoteURL points at a running DevTools endpoint.
type ChromedpRenderer struct {
	ExecPath  string
	RemoteURL string
	Timeout   time.Duration
}

func NewChromedpRenderer(execPath, remoteURL string) *ChromedpRenderer {
	return &ChromedpRenderer{ExecPath: execPath, RemoteURL: remoteURL, Timeout: 60 * time.Second}
}

func (r *ChromedpRenderer) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(ctx, r.RemoteURL)
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}
	return chromedp.NewExecAllocator(ctx, opts...)
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	allocCtx, allocCancel := r.allocator(timeoutCtx)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "chromedp print")
	}
	return pdf, nil
}
