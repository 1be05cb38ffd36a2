package collector

import (
	"errors"
	"log"
	"time"

	"PortfolioPulse/internal/calculator"
	"PortfolioPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars         []model.PriceBar
	BarsErr      error
	Raw          *model.RawFundamentals
	RawErr       error
	BarsBySymbol map[string][]model.PriceBar
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(symbol string) ([]model.PriceBar, error) {
	if m.BarsBySymbol != nil {
		if bars, ok := m.BarsBySymbol[symbol]; ok {
			return bars, nil
		}
	}
	return m.Bars, m.BarsErr
}

func (m *MockFetcher) FetchFundamentals(_ string) (*model.RawFundamentals, error) {
	return m.Raw, m.RawErr
}

// GenerateMockBars builds a deterministic ascending close series ending today.
func GenerateMockBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		bars[i] = model.PriceBar{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return bars
}

// Collector fetches one instrument's data and derives its change set and
// fundamentals. Per-instrument failures are logged here and never
// propagate; the instrument still yields a snapshot with absent fields.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect performs the two gateway round trips for one instrument and
// computes its derived metrics.
func (c *Collector) Collect(inst model.Instrument) model.Snapshot {
	snap := model.Snapshot{Instrument: inst}

	bars, err := c.Fetcher.FetchDailyHistory(inst.Symbol)
	if err != nil {
		log.Printf("[WARN] %s: price fetch failed: %v", inst.Symbol, err)
	} else {
		changes, calcErr := calculator.ComputeChanges(bars, time.Now())
		switch {
		case errors.Is(calcErr, calculator.ErrNoData):
			log.Printf("[WARN] %s: no usable price data", inst.Symbol)
		case errors.Is(calcErr, calculator.ErrInsufficientHistory):
			log.Printf("[WARN] %s: insufficient history (%d observations, need %d)",
				inst.Symbol, len(bars), calculator.MinObservations)
		case calcErr != nil:
			log.Printf("[WARN] %s: change computation failed: %v", inst.Symbol, calcErr)
		default:
			snap.Changes = changes
			snap.PriceOK = true
		}
	}

	raw, err := c.Fetcher.FetchFundamentals(inst.Symbol)
	if err != nil {
		log.Printf("[WARN] %s: fundamentals fetch failed: %v", inst.Symbol, err)
	} else {
		snap.Fundamentals = calculator.ExtractFundamentals(raw)
		if snap.Fundamentals.TrailingPE == nil {
			log.Printf("[INFO] %s: P/E data not available", inst.Symbol)
		}
	}

	return snap
}
