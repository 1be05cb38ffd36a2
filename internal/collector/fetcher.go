package collector

import "PortfolioPulse/internal/model"

// Fetcher defines the interface for the market data gateway. Both
// operations are single-attempt remote calls; callers log and continue
// on failure.
type Fetcher interface {
	// FetchDailyHistory returns up to one trailing year of daily closes,
	// ascending by date.
	FetchDailyHistory(symbol string) ([]model.PriceBar, error)
	// FetchFundamentals returns the raw fundamentals record for a symbol.
	FetchFundamentals(symbol string) (*model.RawFundamentals, error)
	Name() string
}
