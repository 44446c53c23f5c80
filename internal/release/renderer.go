package release

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"cpifetcher/internal/fetcher"
)

// Renderer produces the rendered HTML of a page. The extraction pipeline
// depends only on this interface, so it is testable without a browser.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

const defaultRenderTimeout = 60 * time.Second

// ChromeRenderer renders pages with a headless Chrome instance.
// The browser is acquired and released around a single Render call;
// the deferred cancels guarantee release even when navigation fails.
type ChromeRenderer struct {
	Headless bool
	Timeout  time.Duration
}

// NewChromeRenderer creates a renderer with the default timeout
func NewChromeRenderer(headless bool) *ChromeRenderer {
	return &ChromeRenderer{
		Headless: headless,
		Timeout:  defaultRenderTimeout,
	}
}

// Render navigates to url and returns the document HTML after the body
// is ready. A timeout or navigation failure is a RemoteAPIError.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", r.Headless),
		chromedp.Flag("disable-gpu", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pageHTML string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery),
	)
	if err != nil {
		return "", fetcher.NewTransportError(err)
	}
	return pageHTML, nil
}
