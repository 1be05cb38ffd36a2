package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"PortfolioPulse/internal/model"
)

const (
	dashboardSheet = "Dashboard"
	newsSheet      = "News Feed"
)

// writeExcel serializes both tables to a single workbook. Absent numeric
// values become empty cells.
func (e *Exporter) writeExcel(rows []model.ReportRow, news []model.NewsItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dashboardSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(newsSheet); err != nil {
		return fmt.Errorf("create news sheet: %w", err)
	}

	if err := setRow(f, dashboardSheet, 1, toCells(dashboardHeaders)); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []interface{}{
			r.Symbol,
			cell(r.Daily), cell(r.Weekly), cell(r.Monthly), cell(r.YTD), cell(r.Yearly),
			cell(r.TrailingPE), cell(r.ReferencePE), cell(r.MarketCapCr),
			cell(r.DividendYieldPct), cell(r.Beta),
		}
		if err := setRow(f, dashboardSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := setRow(f, newsSheet, 1, toCells(newsHeaders)); err != nil {
		return err
	}
	for i, n := range news {
		cells := []interface{}{n.Symbol, n.Headline, n.Source, n.PublishedAt, n.URL}
		if err := setRow(f, newsSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(e.OutputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, ref, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// cell maps an optional value to its cell content; nil stays an empty cell.
func cell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
