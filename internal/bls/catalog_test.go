package bls

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"All items", "CUSR0000SA0"},
		{"Medical care", "CUSR0000SAM"},
		{"Food", "CUSR0000SAF1"},
		{"Energy", "CUSR0000SA0E"},
		{"All items less food and energy", "CUSR0000SA0L1E"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got, err := Resolve(tt.category)
			if err != nil {
				t.Fatalf("Resolve() returned unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestResolve_UnknownCategory(t *testing.T) {
	tests := []string{
		"Housing costs",
		"medical care", // category names are case-sensitive
		"",
	}

	for _, category := range tests {
		t.Run(category, func(t *testing.T) {
			_, err := Resolve(category)
			if err == nil {
				t.Fatalf("Resolve(%q) expected error, got nil", category)
			}
			var unknown *UnknownCategoryError
			if !errors.As(err, &unknown) {
				t.Fatalf("error = %T, want *UnknownCategoryError", err)
			}
			if unknown.Category != category {
				t.Errorf("error category = %q, want %q", unknown.Category, category)
			}
		})
	}
}

func TestCategories_Sorted(t *testing.T) {
	names := Categories()
	if len(names) != len(Catalog) {
		t.Fatalf("Categories() returned %d names, want %d", len(names), len(Catalog))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Categories() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
