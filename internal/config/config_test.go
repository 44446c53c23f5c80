package config

import (
	"os"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	envVars := map[string]string{
		"BLS_API_KEY":  "test_bls_key",
		"BLS_BASE_URL": "https://test.bls.gov/api",
		"RELEASE_URL":  "https://test.bls.gov/news.release/cpi.htm",
		"START_YEAR":   "2010",
		"END_YEAR":     "2020",
		"FORMAT":       "csv",
		"OUTPUT_DIR":   "/tmp/cpi",
	}

	for key, value := range envVars {
		os.Setenv(key, value)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"BLSAPIKey", cfg.BLSAPIKey, "test_bls_key"},
		{"BLSBaseURL", cfg.BLSBaseURL, "https://test.bls.gov/api"},
		{"ReleaseURL", cfg.ReleaseURL, "https://test.bls.gov/news.release/cpi.htm"},
		{"Format", cfg.Format, "csv"},
		{"OutputDir", cfg.OutputDir, "/tmp/cpi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.StartYear != 2010 || cfg.EndYear != 2020 {
		t.Errorf("year range = %d-%d, want 2010-2020", cfg.StartYear, cfg.EndYear)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	os.Setenv("BLS_API_KEY", "test_bls_key")
	defer os.Unsetenv("BLS_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.BLSBaseURL != "https://api.bls.gov/publicAPI/v2/timeseries/data/" {
		t.Errorf("BLSBaseURL default = %q", cfg.BLSBaseURL)
	}
	if cfg.ReleaseURL != "https://www.bls.gov/news.release/cpi.htm" {
		t.Errorf("ReleaseURL default = %q", cfg.ReleaseURL)
	}
	if cfg.Format != "xlsx" {
		t.Errorf("Format default = %q, want xlsx", cfg.Format)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0] != "All items" {
		t.Errorf("Categories default = %v, want [All items]", cfg.Categories)
	}
	if cfg.ScrapeRelease {
		t.Error("ScrapeRelease default = true, want false")
	}
	if !cfg.Headless {
		t.Error("Headless default = false, want true")
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	os.Unsetenv("BLS_API_KEY")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error with no API key, got nil")
	}
}

func TestLoad_InvalidYearRange(t *testing.T) {
	os.Setenv("BLS_API_KEY", "test_bls_key")
	os.Setenv("START_YEAR", "2025")
	os.Setenv("END_YEAR", "2020")
	defer func() {
		os.Unsetenv("BLS_API_KEY")
		os.Unsetenv("START_YEAR")
		os.Unsetenv("END_YEAR")
	}()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error with inverted year range, got nil")
	}
}
