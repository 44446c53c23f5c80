package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the CPI fetcher application.
type Config struct {
	// BLS API access
	BLSAPIKey  string `mapstructure:"bls_api_key"`
	BLSBaseURL string `mapstructure:"bls_base_url"`

	// News-release page
	ReleaseURL    string `mapstructure:"release_url"`
	ScrapeRelease bool   `mapstructure:"scrape_release"`
	Headless      bool   `mapstructure:"headless"`

	// Series selection
	Categories []string `mapstructure:"categories"`
	StartYear  int      `mapstructure:"start_year"`
	EndYear    int      `mapstructure:"end_year"`

	// Export
	Format    string `mapstructure:"format"`
	OutputDir string `mapstructure:"output_dir"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - BLS_API_KEY (required)
//   - BLS_BASE_URL (optional, defaults to the public v2 endpoint)
//   - RELEASE_URL (optional, defaults to the CPI news release)
//   - SCRAPE_RELEASE, HEADLESS, START_YEAR, END_YEAR, FORMAT, OUTPUT_DIR (optional)
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("")
	v.AutomaticEnv()

	v.SetDefault("bls_base_url", "https://api.bls.gov/publicAPI/v2/timeseries/data/")
	v.SetDefault("release_url", "https://www.bls.gov/news.release/cpi.htm")
	v.SetDefault("scrape_release", false)
	v.SetDefault("headless", true)
	v.SetDefault("categories", []string{"All items"})
	v.SetDefault("start_year", 2000)
	v.SetDefault("end_year", time.Now().Year())
	v.SetDefault("format", "xlsx")
	v.SetDefault("output_dir", ".")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.cpifetcher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("bls_api_key", "BLS_API_KEY")
	v.BindEnv("bls_base_url", "BLS_BASE_URL")
	v.BindEnv("release_url", "RELEASE_URL")
	v.BindEnv("scrape_release", "SCRAPE_RELEASE")
	v.BindEnv("headless", "HEADLESS")
	v.BindEnv("start_year", "START_YEAR")
	v.BindEnv("end_year", "END_YEAR")
	v.BindEnv("format", "FORMAT")
	v.BindEnv("output_dir", "OUTPUT_DIR")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var missing []string
	if config.BLSAPIKey == "" {
		missing = append(missing, "BLS_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if config.StartYear > config.EndYear {
		return nil, fmt.Errorf("invalid year range: start_year %d is after end_year %d",
			config.StartYear, config.EndYear)
	}

	return config, nil
}
