package model

// ChangeSet holds percentage price changes over the five fixed windows.
// A nil field means the series did not contain enough history for that
// window; nil is distinct from a computed zero change.
type ChangeSet struct {
	Daily   *float64
	Weekly  *float64
	Monthly *float64
	YTD     *float64
	Yearly  *float64
}

// RawFundamentals is the provider-shaped fundamentals record.
// Every field is independently optional.
type RawFundamentals struct {
	TrailingPE    *float64
	IndustryPE    *float64
	SectorPE      *float64
	ForwardPE     *float64
	MarketCap     *float64
	DividendYield *float64
	Beta          *float64
}

// Fundamentals holds the normalized valuation/risk metrics.
// MarketCapCr is in crore units (raw / 10,000,000); DividendYieldPct
// is in percentage points (raw fraction * 100).
type Fundamentals struct {
	TrailingPE       *float64
	ReferencePE      *float64
	MarketCapCr      *float64
	DividendYieldPct *float64
	Beta             *float64
}

// Snapshot carries one instrument's collected data from the collector
// to the report assembler. PriceOK reports whether usable price history
// was fetched and computed.
type Snapshot struct {
	Instrument   Instrument
	Changes      ChangeSet
	Fundamentals Fundamentals
	PriceOK      bool
}

// ReportRow is one Dashboard line: instrument identity plus its change
// set and fundamentals, numeric fields rounded to 2 decimals. Column
// order follows field declaration order; csv tags double as headers.
type ReportRow struct {
	Symbol           string   `csv:"Stock"`
	Daily            *float64 `csv:"Daily Change %"`
	Weekly           *float64 `csv:"Weekly Change %"`
	Monthly          *float64 `csv:"Monthly Change %"`
	YTD              *float64 `csv:"YTD Change %"`
	Yearly           *float64 `csv:"Yearly Change %"`
	TrailingPE       *float64 `csv:"PE Ratio"`
	ReferencePE      *float64 `csv:"Industry PE"`
	MarketCapCr      *float64 `csv:"Market Cap (Cr)"`
	DividendYieldPct *float64 `csv:"Dividend Yield %"`
	Beta             *float64 `csv:"Beta"`
}

// NewsItem is one News Feed line. Static demo data in the current scope.
type NewsItem struct {
	Symbol      string `csv:"Stock"`
	Headline    string `csv:"Headline"`
	Source      string `csv:"Source"`
	PublishedAt string `csv:"Published At"`
	URL         string `csv:"URL"`
}
