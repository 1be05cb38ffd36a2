package model

// Category partitions the registry into holdings and benchmarks.
type Category string

const (
	CategoryHolding   Category = "holding"
	CategoryBenchmark Category = "benchmark"
)

// Instrument identifies one tracked equity, ETF or index.
type Instrument struct {
	Symbol   string
	Category Category
}
