// Package cpi holds the shared record schema and the normalization stage
// both data sources feed into: API observations and scraped table rows
// come out as the same ordered []Record.
package cpi

import (
	"fmt"
	"strconv"
	"strings"
)

// monthCodes maps month names and abbreviations to the BLS period code,
// which is the canonical period representation throughout the pipeline.
// API data already arrives as M01..M12 (M13 = annual average); table rows
// carry names like "July" or "Jul.".
var monthCodes = map[string]string{
	"january": "M01", "jan": "M01",
	"february": "M02", "feb": "M02",
	"march": "M03", "mar": "M03",
	"april": "M04", "apr": "M04",
	"may": "M05",
	"june": "M06", "jun": "M06",
	"july": "M07", "jul": "M07",
	"august": "M08", "aug": "M08",
	"september": "M09", "sep": "M09", "sept": "M09",
	"october": "M10", "oct": "M10",
	"november": "M11", "nov": "M11",
	"december": "M12", "dec": "M12",
}

// SchemaMismatchError reports a table row whose cell count does not match
// the header width.
type SchemaMismatchError struct {
	Want int
	Got  int
}

// Error implements the error interface
func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: row has %d cells, want %d", e.Got, e.Want)
}

// CanonicalPeriod maps a source-specific period representation onto the
// canonical BLS code. Codes pass through uppercased, month names are
// translated, anything else is returned trimmed and unchanged.
func CanonicalPeriod(period string) string {
	p := strings.TrimSpace(period)
	if len(p) == 3 && (p[0] == 'M' || p[0] == 'm' || p[0] == 'S' || p[0] == 's') {
		if _, err := strconv.Atoi(p[1:]); err == nil {
			return strings.ToUpper(p)
		}
	}
	key := strings.ToLower(strings.TrimSuffix(p, "."))
	if code, ok := monthCodes[key]; ok {
		return code
	}
	return p
}

// ParseValue parses a published value string into a float. Suppressed or
// otherwise non-numeric values ("N/A", "-", empty) yield nil; this is a
// normal outcome, never an error.
func ParseValue(value string) *float64 {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// FormatValue renders a normalized value back to its string form, the
// empty string for suppressed observations.
func FormatValue(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

// NormalizeObservations converts raw API observations for one category
// into normalized records. Input order is preserved.
func NormalizeObservations(obs []Observation, category string) []Record {
	records := make([]Record, 0, len(obs))
	for _, o := range obs {
		records = append(records, Record{
			Category: category,
			Year:     o.Year,
			Period:   CanonicalPeriod(o.Period),
			Value:    ParseValue(o.Value),
		})
	}
	return records
}

// NormalizeRecords re-applies normalization to an already-normalized set.
// Canonical periods map to themselves, so this is a no-op on any output
// of the normalizer; it exists so callers can re-run the stage safely.
func NormalizeRecords(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		r.Period = CanonicalPeriod(r.Period)
		out = append(out, r)
	}
	return out
}

// NormalizeTable converts an extracted release table into normalized
// records. The first header cell labels the period column; every other
// header cell is an expenditure category. Each data row starts with a
// "<Month> <Year>" cell followed by one value per category.
func NormalizeTable(header []string, rows [][]string) ([]Record, error) {
	if len(header) < 2 {
		return nil, &SchemaMismatchError{Want: 2, Got: len(header)}
	}
	categories := header[1:]

	var records []Record
	for _, row := range rows {
		if len(row) != len(header) {
			return nil, &SchemaMismatchError{Want: len(header), Got: len(row)}
		}
		period, year := parsePeriodCell(row[0])
		for i, category := range categories {
			records = append(records, Record{
				Category: category,
				Year:     year,
				Period:   period,
				Value:    ParseValue(row[i+1]),
			})
		}
	}
	return records, nil
}

// parsePeriodCell splits a "<Month> <Year>" cell. Cells without a trailing
// year keep year zero and the whole cell as the period.
func parsePeriodCell(cell string) (period string, year int) {
	fields := strings.Fields(cell)
	if len(fields) == 2 {
		if y, err := strconv.Atoi(fields[1]); err == nil {
			return CanonicalPeriod(fields[0]), y
		}
	}
	return CanonicalPeriod(cell), 0
}
