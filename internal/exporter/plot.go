package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"cpifetcher/internal/cpi"
)

// writePlot renders the record set as a line chart, one series per
// category over a shared year-period axis. Suppressed observations render
// as gaps in the line.
func (e *Exporter) writePlot(records []cpi.Record, name string) (string, error) {
	path := e.path(name, "html")

	labels, byCategory := pivotForPlot(records)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(labels)

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		values := byCategory[category]
		data := make([]opts.LineData, len(labels))
		for i, label := range labels {
			if v, ok := values[label]; ok && v != nil {
				data[i] = opts.LineData{Value: *v}
			} else {
				data[i] = opts.LineData{Value: nil}
			}
		}
		line.AddSeries(category, data)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := line.Render(file); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	slog.Info("wrote plot export",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return path, nil
}

// pivotForPlot builds the sorted year-period axis labels and a
// category → label → value lookup.
func pivotForPlot(records []cpi.Record) ([]string, map[string]map[string]*float64) {
	type point struct {
		year   int
		period string
	}
	seen := make(map[point]bool)
	var points []point
	byCategory := make(map[string]map[string]*float64)

	for _, r := range records {
		p := point{year: r.Year, period: r.Period}
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
		if byCategory[r.Category] == nil {
			byCategory[r.Category] = make(map[string]*float64)
		}
		byCategory[r.Category][plotLabel(r.Year, r.Period)] = r.Value
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].year != points[j].year {
			return points[i].year < points[j].year
		}
		return points[i].period < points[j].period
	})

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = plotLabel(p.year, p.period)
	}
	return labels, byCategory
}

func plotLabel(year int, period string) string {
	return fmt.Sprintf("%d-%s", year, period)
}
