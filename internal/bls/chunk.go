package bls

import "fmt"

// MaxYearsPerRequest is the largest year span the BLS API serves in a
// single request.
const MaxYearsPerRequest = 10

// Chunk is an inclusive sub-range of years sized for one API request
type Chunk struct {
	StartYear int
	EndYear   int
}

// InvalidRangeError reports a year range that cannot be split into chunks
type InvalidRangeError struct {
	StartYear int
	EndYear   int
	MaxSpan   int
}

// Error implements the error interface
func (e *InvalidRangeError) Error() string {
	if e.MaxSpan < 1 {
		return fmt.Sprintf("invalid range: max span %d must be at least 1", e.MaxSpan)
	}
	return fmt.Sprintf("invalid range: start year %d is after end year %d", e.StartYear, e.EndYear)
}

// SplitRange splits [startYear, endYear] into ordered chunks of at most
// maxSpan years each. Chunks are contiguous, non-overlapping, and cover
// the range exactly: the last chunk ends at endYear, never beyond it.
func SplitRange(startYear, endYear, maxSpan int) ([]Chunk, error) {
	if maxSpan < 1 || startYear > endYear {
		return nil, &InvalidRangeError{StartYear: startYear, EndYear: endYear, MaxSpan: maxSpan}
	}

	var chunks []Chunk
	for start := startYear; start <= endYear; start += maxSpan {
		end := start + maxSpan - 1
		if end > endYear {
			end = endYear
		}
		chunks = append(chunks, Chunk{StartYear: start, EndYear: end})
	}
	return chunks, nil
}
