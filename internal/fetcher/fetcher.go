package fetcher

import (
	"context"

	"cpifetcher/internal/cpi"
)

// Fetcher is the core interface both data sources implement.
// Each fetcher knows how to retrieve one CPI series (from the BLS API or
// the news-release table) and hand it back as normalized records.
type Fetcher interface {
	// Fetch retrieves the series as an ordered, normalized record set.
	// On failure no partial records are returned: the call either yields
	// the complete set or a typed error.
	Fetch(ctx context.Context) ([]cpi.Record, error)

	// Key returns a hierarchical identifier for this fetcher.
	// Format: fetcher:{source}:{identifier}
	// Examples:
	//   - fetcher:bls:CUSR0000SAM
	//   - fetcher:release:cpi
	Key() string
}
