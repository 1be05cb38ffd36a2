package calculator

import (
	"errors"
	"time"

	"PortfolioPulse/internal/model"
)

// MinObservations is the minimum series length below which no change
// windows are computed for an instrument.
const MinObservations = 30

var (
	// ErrNoData signals that the data source returned no usable series.
	ErrNoData = errors.New("no price data")
	// ErrInsufficientHistory signals data below the minimum-observation threshold.
	ErrInsufficientHistory = errors.New("insufficient price history")
)

// Look-back offsets, counted as index len-k against the last observation.
const (
	dailyOffset   = 2
	weeklyOffset  = 5
	monthlyOffset = 21
	yearlyOffset  = 240
)

// ComputeChanges derives percentage changes over the five fixed windows
// from an ascending daily close series. Each window is evaluated
// independently; a window missing its baseline stays nil. Values are not
// rounded here; rounding happens at the reporting stage.
func ComputeChanges(bars []model.PriceBar, now time.Time) (model.ChangeSet, error) {
	if len(bars) == 0 {
		return model.ChangeSet{}, ErrNoData
	}
	if len(bars) < MinObservations {
		return model.ChangeSet{}, ErrInsufficientHistory
	}
	return computeWindows(bars, now), nil
}

// computeWindows evaluates all five windows independently against the
// chronologically last observation.
func computeWindows(bars []model.PriceBar, now time.Time) model.ChangeSet {
	var cs model.ChangeSet
	last := bars[len(bars)-1].Close

	cs.Daily = changeFromOffset(bars, last, dailyOffset)
	cs.Weekly = changeFromOffset(bars, last, weeklyOffset)
	cs.Monthly = changeFromOffset(bars, last, monthlyOffset)
	cs.Yearly = changeFromOffset(bars, last, yearlyOffset)

	if base, ok := yearStartClose(bars, now.Year()); ok {
		cs.YTD = percentChange(last, base)
	}

	return cs
}

// changeFromOffset computes the change against the close at index len-k,
// or nil when the series is shorter than k.
func changeFromOffset(bars []model.PriceBar, last float64, k int) *float64 {
	if len(bars) < k {
		return nil
	}
	return percentChange(last, bars[len(bars)-k].Close)
}

// yearStartClose returns the first close whose date falls in the given
// calendar year.
func yearStartClose(bars []model.PriceBar, year int) (float64, bool) {
	for _, b := range bars {
		if b.Date.Year() == year {
			return b.Close, true
		}
	}
	return 0, false
}

func percentChange(last, baseline float64) *float64 {
	v := (last - baseline) / baseline * 100
	return &v
}
