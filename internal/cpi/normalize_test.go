package cpi

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"123.45", ptr(123.45)},
		{"  310.3 ", ptr(310.3)},
		{"1,234.5", ptr(1234.5)},
		{"-0.4", ptr(-0.4)},
		{"N/A", nil},
		{"-", nil},
		{"", nil},
		{"suppressed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseValue(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.input, *got, *tt.want)
			}
		})
	}
}

func TestCanonicalPeriod(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"M01", "M01"},
		{"m07", "M07"},
		{"M13", "M13"},
		{"S01", "S01"},
		{"January", "M01"},
		{"Jul.", "M07"},
		{"jul", "M07"},
		{"Sept", "M09"},
		{"December", "M12"},
		{" May ", "M05"},
		{"Q1", "Q1"}, // unknown representations pass through
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CanonicalPeriod(tt.input); got != tt.want {
				t.Errorf("CanonicalPeriod(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeObservations(t *testing.T) {
	obs := []Observation{
		{Year: 2023, Period: "M01", PeriodName: "January", Value: "541.2"},
		{Year: 2023, Period: "M02", PeriodName: "February", Value: "N/A"},
	}

	records := NormalizeObservations(obs, "Medical care")
	if len(records) != 2 {
		t.Fatalf("NormalizeObservations() returned %d records, want 2", len(records))
	}

	if records[0].Value == nil || *records[0].Value != 541.2 {
		t.Errorf("first value = %v, want 541.2", records[0].Value)
	}
	if records[1].Value != nil {
		t.Errorf("suppressed value = %v, want nil", *records[1].Value)
	}
	for _, r := range records {
		if r.Category != "Medical care" {
			t.Errorf("category = %q, want %q", r.Category, "Medical care")
		}
	}
}

// Normalization is stable under re-application: records that already went
// through the normalizer come out unchanged.
func TestNormalizeRecords_Idempotent(t *testing.T) {
	obs := []Observation{
		{Year: 2022, Period: "M12", Value: "297.7"},
		{Year: 2023, Period: "M01", Value: "N/A"},
		{Year: 2023, Period: "M13", Value: "302.9"},
	}

	once := NormalizeObservations(obs, "All items")
	twice := NormalizeRecords(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("NormalizeRecords(normalized) = %v, want %v", twice, once)
	}
}

func TestNormalizeTable(t *testing.T) {
	header := []string{"Month", "All items", "Food", "Energy"}
	rows := [][]string{
		{"Jun. 2023", "305.1", "324.0", "N/A"},
		{"Jul. 2023", "305.7", "324.7", "278.2"},
	}

	records, err := NormalizeTable(header, rows)
	if err != nil {
		t.Fatalf("NormalizeTable() returned unexpected error: %v", err)
	}

	if len(records) != 6 {
		t.Fatalf("NormalizeTable() returned %d records, want 6", len(records))
	}

	first := records[0]
	if first.Category != "All items" || first.Year != 2023 || first.Period != "M06" {
		t.Errorf("first record = %+v, want All items 2023 M06", first)
	}
	if first.Value == nil || *first.Value != 305.1 {
		t.Errorf("first value = %v, want 305.1", first.Value)
	}

	// Third cell of the first row is suppressed
	if records[2].Category != "Energy" {
		t.Fatalf("third record category = %q, want Energy", records[2].Category)
	}
	if records[2].Value != nil {
		t.Errorf("suppressed table value = %v, want nil", *records[2].Value)
	}
}

func TestNormalizeTable_SchemaMismatch(t *testing.T) {
	header := []string{"Month", "All items", "Food"}
	rows := [][]string{
		{"Jun. 2023", "305.1", "324.0"},
		{"Jul. 2023", "305.7"}, // short row
	}

	_, err := NormalizeTable(header, rows)
	if err == nil {
		t.Fatal("NormalizeTable() expected error, got nil")
	}
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %T, want *SchemaMismatchError", err)
	}
	if mismatch.Want != 3 || mismatch.Got != 2 {
		t.Errorf("mismatch = want %d got %d, expected want 3 got 2", mismatch.Want, mismatch.Got)
	}
}

func ptr(f float64) *float64 {
	return &f
}
