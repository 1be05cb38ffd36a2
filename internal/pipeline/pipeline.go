package pipeline

import (
	"log"

	"PortfolioPulse/internal/collector"
	"PortfolioPulse/internal/exporter"
	"PortfolioPulse/internal/model"
	"PortfolioPulse/internal/report"
)

// Pipeline runs the single-pass snapshot: fetch each registry instrument
// sequentially, assemble the report, and export the artifact.
type Pipeline struct {
	Collector   *collector.Collector
	Instruments []model.Instrument
	Exporter    *exporter.Exporter
}

// Summary is the run outcome printed at exit.
type Summary struct {
	Total        int
	Succeeded    int // instruments with a usable price series
	Failed       int
	Artifacts    []string
	UsedFallback bool
}

// New creates a new Pipeline.
func New(col *collector.Collector, instruments []model.Instrument, exp *exporter.Exporter) *Pipeline {
	return &Pipeline{Collector: col, Instruments: instruments, Exporter: exp}
}

// Run processes every instrument in registry order. Per-instrument
// failures are isolated; only an export failure after the CSV fallback
// is returned as an error.
func (p *Pipeline) Run() (*Summary, error) {
	sum := &Summary{Total: len(p.Instruments)}
	snaps := make([]model.Snapshot, 0, len(p.Instruments))

	for _, inst := range p.Instruments {
		log.Printf("[INFO] fetching data for %s (%s)...", inst.Symbol, inst.Category)
		snap := p.Collector.Collect(inst)
		if snap.PriceOK {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
		snaps = append(snaps, snap)
	}

	rows := report.BuildRows(snaps)
	news := report.StaticNews()

	artifacts, fallback, err := p.Exporter.Export(rows, news)
	if err != nil {
		return nil, err
	}
	sum.Artifacts = artifacts
	sum.UsedFallback = fallback
	return sum, nil
}
