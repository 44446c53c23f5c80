package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cpifetcher/internal/exporter"
	"cpifetcher/internal/fetcher"
)

// Coordinator runs the configured fetchers and hands each completed record
// set to the exporter. Fetchers run sequentially, one request at a time:
// each source fails or succeeds whole, and a failed source does not stop
// the remaining ones.
type Coordinator struct {
	fetchers []fetcher.Fetcher
	exporter *exporter.Exporter
	format   exporter.Format
}

// New creates a Coordinator with the given fetchers and export target
func New(fetchers []fetcher.Fetcher, exp *exporter.Exporter, format exporter.Format) *Coordinator {
	return &Coordinator{
		fetchers: fetchers,
		exporter: exp,
		format:   format,
	}
}

// Run executes all fetchers in order and exports their record sets.
// It returns an error only when nothing could be fetched at all.
func (c *Coordinator) Run(ctx context.Context) error {
	if len(c.fetchers) == 0 {
		return fmt.Errorf("no fetchers configured")
	}

	var exported int
	for _, f := range c.fetchers {
		result := fetcher.Result{Key: f.Key()}
		result.Records, result.Err = f.Fetch(ctx)

		if result.Err != nil {
			slog.Error("fetch failed",
				slog.String("source", result.Key),
				slog.String("error", result.Err.Error()))
			continue
		}

		path, err := c.exporter.Export(result.Records, c.format, exportName(result.Key))
		if err != nil {
			slog.Error("export failed",
				slog.String("source", result.Key),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("series exported",
			slog.String("source", result.Key),
			slog.Int("records", len(result.Records)),
			slog.String("path", path))
		exported++
	}

	if exported == 0 {
		return fmt.Errorf("all %d sources failed", len(c.fetchers))
	}
	return nil
}

// exportName derives a file base name from a fetcher key, e.g.
// "fetcher:bls:CUSR0000SAM" becomes "bls_CUSR0000SAM".
func exportName(key string) string {
	name := strings.TrimPrefix(key, "fetcher:")
	return strings.ReplaceAll(name, ":", "_")
}
