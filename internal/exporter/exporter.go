package exporter

import (
	"fmt"
	"log"

	"PortfolioPulse/internal/model"
)

// Column headers for both artifacts, in the report's field declaration
// order. The CSV fallback derives the same headers from the models' csv
// tags; keep these aligned.
var (
	dashboardHeaders = []string{
		"Stock", "Daily Change %", "Weekly Change %", "Monthly Change %",
		"YTD Change %", "Yearly Change %", "PE Ratio", "Industry PE",
		"Market Cap (Cr)", "Dividend Yield %", "Beta",
	}
	newsHeaders = []string{"Stock", "Headline", "Source", "Published At", "URL"}
)

// Exporter serializes the assembled report to disk: a two-sheet
// spreadsheet when possible, two delimited-text files otherwise.
type Exporter struct {
	// OutputPath is the target .xlsx file; the CSV fallback paths are
	// derived from it.
	OutputPath string
}

// NewExporter creates an Exporter writing to the given path.
func NewExporter(outputPath string) *Exporter {
	return &Exporter{OutputPath: outputPath}
}

// Export writes the report. It returns the artifact paths actually
// produced and whether the CSV fallback was taken. An error is returned
// only when the fallback also fails; that is the run's single fatal
// condition.
func (e *Exporter) Export(rows []model.ReportRow, news []model.NewsItem) (artifacts []string, fallback bool, err error) {
	excelErr := e.writeExcel(rows, news)
	if excelErr == nil {
		return []string{e.OutputPath}, false, nil
	}
	log.Printf("[WARN] spreadsheet export failed, falling back to CSV: %v", excelErr)

	paths, err := e.writeCSVFallback(rows, news)
	if err != nil {
		return nil, true, fmt.Errorf("csv fallback: %w", err)
	}
	return paths, true, nil
}
