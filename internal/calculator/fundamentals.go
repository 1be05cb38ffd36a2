package calculator

import "PortfolioPulse/internal/model"

// croreDivisor converts a raw market capitalization to crore units.
const croreDivisor = 1e7

// ExtractFundamentals normalizes a raw provider record into report
// fundamentals. A missing or zero trailing P/E means fundamentals are
// unavailable for the instrument (typical for ETFs and indices) and
// yields an all-absent record. Missing upstream values stay nil; zero
// is never substituted.
func ExtractFundamentals(raw *model.RawFundamentals) model.Fundamentals {
	var f model.Fundamentals
	if raw == nil || raw.TrailingPE == nil || *raw.TrailingPE == 0 {
		return f
	}

	f.TrailingPE = raw.TrailingPE
	f.ReferencePE = FirstPresent(raw.IndustryPE, raw.SectorPE, raw.ForwardPE)

	if raw.MarketCap != nil {
		v := *raw.MarketCap / croreDivisor
		f.MarketCapCr = &v
	}
	if raw.DividendYield != nil {
		v := *raw.DividendYield * 100
		f.DividendYieldPct = &v
	}
	f.Beta = raw.Beta

	return f
}

// FirstPresent returns the first non-nil value in order, or nil when
// all candidates are absent.
func FirstPresent(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
