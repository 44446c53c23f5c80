package release

import (
	"context"

	"cpifetcher/internal/cpi"
	"cpifetcher/internal/fetcher"
	"cpifetcher/internal/ratelimit"
)

// Fetcher retrieves the CPI news-release table and normalizes it.
// Rendering is delegated to the injected Renderer capability.
type Fetcher struct {
	renderer Renderer
	url      string
	heading  string
}

// NewFetcher creates a release-page fetcher for the default table heading
func NewFetcher(renderer Renderer, url string) *Fetcher {
	return &Fetcher{
		renderer: renderer,
		url:      url,
		heading:  DefaultHeading,
	}
}

// Fetch renders the release page, extracts the expenditure-category table,
// and returns its normalized records. Any stage failing aborts the call.
func (f *Fetcher) Fetch(ctx context.Context) ([]cpi.Record, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIRelease); err != nil {
		return nil, fetcher.NewTransportError(err)
	}

	pageHTML, err := f.renderer.Render(ctx, f.url)
	if err != nil {
		return nil, err
	}

	table, err := ExtractTable(pageHTML, f.heading)
	if err != nil {
		return nil, err
	}

	return cpi.NormalizeTable(table.Header, table.Rows)
}

// Key returns the hierarchical key for this fetcher
func (f *Fetcher) Key() string {
	return "fetcher:release:cpi"
}
