// Package exporter writes normalized CPI records to flat export files:
// xlsx, csv, semicolon-delimited txt, or an HTML line chart.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"cpifetcher/internal/cpi"
)

// Format selects the export file format
type Format string

const (
	// FormatXLSX writes an Excel workbook
	FormatXLSX Format = "xlsx"
	// FormatCSV writes comma-separated text
	FormatCSV Format = "csv"
	// FormatTXT writes semicolon-separated text
	FormatTXT Format = "txt"
	// FormatPlot writes a line chart as a standalone HTML page
	FormatPlot Format = "plot"
)

// columns is the header of every tabular export
var columns = []string{"category", "year", "period", "value"}

// Exporter writes record sets into a target directory
type Exporter struct {
	outDir string
}

// New creates an exporter writing into outDir
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes records in the given format under the given base name and
// returns the written path. An unsupported format falls back to xlsx with
// a warning rather than failing the run.
func (e *Exporter) Export(records []cpi.Record, format Format, name string) (string, error) {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	switch format {
	case FormatXLSX:
		return e.writeXLSX(records, name)
	case FormatCSV:
		return e.writeDelimited(records, name, ',', "csv")
	case FormatTXT:
		return e.writeDelimited(records, name, ';', "txt")
	case FormatPlot:
		return e.writePlot(records, name)
	default:
		slog.Warn("unsupported export format, defaulting to xlsx",
			slog.String("format", string(format)))
		return e.writeXLSX(records, name)
	}
}

func (e *Exporter) path(name, ext string) string {
	return filepath.Join(e.outDir, name+"."+ext)
}

func (e *Exporter) writeDelimited(records []cpi.Record, name string, sep rune, ext string) (string, error) {
	path := e.path(name, ext)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.Comma = sep

	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Category, fmt.Sprintf("%d", r.Year), r.Period, cpi.FormatValue(r.Value)}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush file: %w", err)
	}

	slog.Info("wrote delimited export",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return path, nil
}

func (e *Exporter) writeXLSX(records []cpi.Record, name string) (string, error) {
	path := e.path(name, "xlsx")

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to address row: %w", err)
		}
		row := []any{r.Category, r.Year, r.Period, nil}
		if r.Value != nil {
			row[3] = *r.Value
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write record row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("wrote xlsx export",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return path, nil
}
