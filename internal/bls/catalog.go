// Package bls fetches CPI time series from the BLS public timeseries API:
// category names resolve to series IDs, year ranges are split to honor the
// API's per-request span limit, and chunk responses merge into one series.
package bls

import (
	"fmt"
	"sort"
)

// Catalog maps human-readable CPI expenditure categories to BLS series
// IDs (CPI-U, U.S. city average, seasonally adjusted). Adding a category
// is a data change only; fetch logic is generic over the series ID.
var Catalog = map[string]string{
	"All items":                      "CUSR0000SA0",
	"All items less food and energy": "CUSR0000SA0L1E",
	"Food":                           "CUSR0000SAF1",
	"Energy":                         "CUSR0000SA0E",
	"Apparel":                        "CUSR0000SAA",
	"Education and communication":    "CUSR0000SAE",
	"Other goods and services":       "CUSR0000SAG",
	"Medical care":                   "CUSR0000SAM",
	"Recreation":                     "CUSR0000SAR",
	"Transportation":                 "CUSR0000SAT",
}

// UnknownCategoryError reports a category name with no registered series ID
type UnknownCategoryError struct {
	Category string
}

// Error implements the error interface
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown CPI category: %q", e.Category)
}

// Resolve returns the series ID registered for a category. There is no
// default series: unregistered names fail rather than guess.
func Resolve(category string) (string, error) {
	id, ok := Catalog[category]
	if !ok {
		return "", &UnknownCategoryError{Category: category}
	}
	return id, nil
}

// Categories returns the registered category names in sorted order
func Categories() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
