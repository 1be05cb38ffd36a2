package model

import "time"

// PriceBar represents a single daily closing observation. A price
// series is an ascending []PriceBar covering up to one trailing year,
// with positive closes and no duplicate dates.
type PriceBar struct {
	Date  time.Time
	Close float64
}
