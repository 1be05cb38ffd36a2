package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"PortfolioPulse/internal/model"
)

// csvPaths derives the fallback file names from the spreadsheet path:
// the dashboard keeps the base name with a .csv extension, the news
// table goes to News_Feed.csv in the same directory.
func (e *Exporter) csvPaths() (dashboard, news string) {
	ext := filepath.Ext(e.OutputPath)
	dashboard = strings.TrimSuffix(e.OutputPath, ext) + ".csv"
	news = filepath.Join(filepath.Dir(e.OutputPath), "News_Feed.csv")
	return dashboard, news
}

// writeCSVFallback emits both tables as separate delimited-text files
// with the same column layout the spreadsheet would have carried.
func (e *Exporter) writeCSVFallback(rows []model.ReportRow, news []model.NewsItem) ([]string, error) {
	dashPath, newsPath := e.csvPaths()

	if err := writeCSV(dashPath, &rows); err != nil {
		return nil, fmt.Errorf("dashboard csv: %w", err)
	}
	if err := writeCSV(newsPath, &news); err != nil {
		return nil, fmt.Errorf("news csv: %w", err)
	}
	return []string{dashPath, newsPath}, nil
}

func writeCSV(path string, records interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(records, f); err != nil {
		return err
	}
	return f.Sync()
}
