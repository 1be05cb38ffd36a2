package collector

import (
	"errors"
	"testing"

	"PortfolioPulse/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestCollect_Success(t *testing.T) {
	fetcher := &MockFetcher{
		Bars: GenerateMockBars(5800, 300),
		Raw: &model.RawFundamentals{
			TrailingPE:    fp(21.5),
			SectorPE:      fp(18.0),
			MarketCap:     fp(9.1e12),
			DividendYield: fp(0.011),
			Beta:          fp(1.05),
		},
	}
	c := NewCollector(fetcher)

	snap := c.Collect(model.Instrument{Symbol: "HDFCBANK.NS", Category: model.CategoryHolding})
	if !snap.PriceOK {
		t.Fatal("expected usable price data")
	}
	if snap.Changes.Daily == nil || snap.Changes.Weekly == nil ||
		snap.Changes.Monthly == nil || snap.Changes.Yearly == nil {
		t.Error("expected all offset windows present for 300 observations")
	}
	if snap.Fundamentals.TrailingPE == nil || *snap.Fundamentals.TrailingPE != 21.5 {
		t.Errorf("trailing P/E: got %v", snap.Fundamentals.TrailingPE)
	}
	if snap.Fundamentals.ReferencePE == nil || *snap.Fundamentals.ReferencePE != 18.0 {
		t.Errorf("reference P/E: got %v", snap.Fundamentals.ReferencePE)
	}
}

func TestCollect_FetchFailureIsIsolated(t *testing.T) {
	fetcher := &MockFetcher{
		BarsErr: errors.New("gateway unavailable"),
		RawErr:  errors.New("gateway unavailable"),
	}
	c := NewCollector(fetcher)

	snap := c.Collect(model.Instrument{Symbol: "BEL.NS", Category: model.CategoryHolding})
	if snap.PriceOK {
		t.Error("expected PriceOK false on fetch failure")
	}
	if snap.Instrument.Symbol != "BEL.NS" {
		t.Error("snapshot must keep the instrument identity")
	}
	if snap.Changes != (model.ChangeSet{}) {
		t.Error("expected all-absent change set on fetch failure")
	}
	if snap.Fundamentals != (model.Fundamentals{}) {
		t.Error("expected all-absent fundamentals on fetch failure")
	}
}

func TestCollect_InsufficientHistory(t *testing.T) {
	fetcher := &MockFetcher{Bars: GenerateMockBars(100, 10)}
	c := NewCollector(fetcher)

	snap := c.Collect(model.Instrument{Symbol: "SILVERBEES.NS", Category: model.CategoryHolding})
	if snap.PriceOK {
		t.Error("expected PriceOK false below minimum observations")
	}
	if snap.Changes != (model.ChangeSet{}) {
		t.Error("expected all-absent change set for insufficient history")
	}
}

func TestCollect_IndexWithoutPE(t *testing.T) {
	fetcher := &MockFetcher{
		Bars: GenerateMockBars(24000, 300),
		Raw:  &model.RawFundamentals{MarketCap: fp(1e12), Beta: fp(1.0)},
	}
	c := NewCollector(fetcher)

	snap := c.Collect(model.Instrument{Symbol: "^NSEI", Category: model.CategoryBenchmark})
	if !snap.PriceOK {
		t.Fatal("expected usable price data")
	}
	if snap.Fundamentals != (model.Fundamentals{}) {
		t.Error("missing trailing P/E must yield all-absent fundamentals")
	}
}
