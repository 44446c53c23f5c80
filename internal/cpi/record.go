package cpi

// Observation is a single raw data point as it arrives from the BLS API
// or the scraped news-release table, before normalization.
// Value stays a string because the bureau publishes suppressed
// observations as marker tokens ("N/A", "-") in place of a number.
type Observation struct {
	Year       int
	Period     string
	PeriodName string
	Value      string
}

// Record is a normalized observation in the schema shared by both sources.
// A nil Value means the observation was suppressed or unavailable; it is
// kept in the series rather than dropped or coerced to zero.
type Record struct {
	Category string
	Year     int
	Period   string
	Value    *float64
}
