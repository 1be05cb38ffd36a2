package report

import (
	"math"

	"github.com/shopspring/decimal"

	"PortfolioPulse/internal/model"
)

// BuildRows merges collected snapshots into report rows, preserving input
// order. Every numeric field passes through round2, so absent values stay
// absent and present values carry exactly 2 decimals.
func BuildRows(snaps []model.Snapshot) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, model.ReportRow{
			Symbol:           s.Instrument.Symbol,
			Daily:            round2(s.Changes.Daily),
			Weekly:           round2(s.Changes.Weekly),
			Monthly:          round2(s.Changes.Monthly),
			YTD:              round2(s.Changes.YTD),
			Yearly:           round2(s.Changes.Yearly),
			TrailingPE:       round2(s.Fundamentals.TrailingPE),
			ReferencePE:      round2(s.Fundamentals.ReferencePE),
			MarketCapCr:      round2(s.Fundamentals.MarketCapCr),
			DividendYieldPct: round2(s.Fundamentals.DividendYieldPct),
			Beta:             round2(s.Fundamentals.Beta),
		})
	}
	return rows
}

// round2 rounds to 2 decimal places, half away from zero. Non-numeric
// values (NaN, Inf) become absent; absent stays absent.
func round2(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	r, _ := decimal.NewFromFloat(*v).Round(2).Float64()
	return &r
}

// StaticNews returns the fixed placeholder news table. It is produced
// unconditionally, independent of per-instrument fetch results.
func StaticNews() []model.NewsItem {
	return []model.NewsItem{
		{
			Symbol:      "HDFCBANK.NS",
			Headline:    "HDFC Bank sees growth in retail loans",
			Source:      "Economic Times",
			PublishedAt: "2025-01-10",
			URL:         "https://economictimes.indiatimes.com",
		},
		{
			Symbol:      "RELIANCE.NS",
			Headline:    "Reliance Industries reports strong Q3 results",
			Source:      "Business Standard",
			PublishedAt: "2025-01-09",
			URL:         "https://business-standard.com",
		},
	}
}
