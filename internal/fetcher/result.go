package fetcher

import "cpifetcher/internal/cpi"

// Result is the outcome of one fetcher run, passed from the coordinator
// to whatever consumes the records (exporter, logging).
type Result struct {
	// Key is the hierarchical identifier of the fetcher that produced this
	Key string

	// Records is the complete normalized record set for the series
	Records []cpi.Record

	// Err contains any error that occurred during the fetch operation.
	// If Err is not nil, Records is empty: failed fetches never carry
	// partial data.
	Err error
}
