// Package stats aggregates catalog-wide figures over a set of firms.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/propdex/internal/domain/firm"
)

// Statistics is the catalog summary. Means are rounded to one decimal place.
type Statistics struct {
	TotalFirms          int
	AvgProfitSplit      float64
	AvgRating           float64
	MostPopularPlatform string
	LowestEvaluationFee int
	HighestPayout       int
}

// Compute summarizes firms given in insertion order. An empty input yields the zero value.
func Compute(firms []firm.Firm) Statistics {
	if len(firms) == 0 {
		return Statistics{}
	}

	var (
		splitSum  = decimal.Zero
		ratingSum = decimal.Zero
		lowestFee int
		haveFee   bool
		highest   int
		counts    = make(map[string]int)
		order     []string
	)
	for i := range firms {
		f := &firms[i]
		splitSum = splitSum.Add(decimal.NewFromInt(int64(f.ProfitSplit.Trader())))
		ratingSum = ratingSum.Add(decimal.NewFromFloat(f.Rating))

		if fee, ok := f.LowestEvaluationFee(); ok && (!haveFee || fee < lowestFee) {
			lowestFee, haveFee = fee, true
		}
		if f.MaximumPayout != nil && *f.MaximumPayout > highest {
			highest = *f.MaximumPayout
		}
		for _, p := range f.TradingPlatforms {
			if _, ok := counts[p]; !ok {
				order = append(order, p)
			}
			counts[p]++
		}
	}

	n := decimal.NewFromInt(int64(len(firms)))
	return Statistics{
		TotalFirms:          len(firms),
		AvgProfitSplit:      splitSum.Div(n).Round(1).InexactFloat64(),
		AvgRating:           ratingSum.Div(n).Round(1).InexactFloat64(),
		MostPopularPlatform: mostPopular(order, counts),
		LowestEvaluationFee: lowestFee,
		HighestPayout:       highest,
	}
}

// mostPopular picks the highest count; ties go to the platform seen first.
func mostPopular(order []string, counts map[string]int) string {
	var best string
	bestCount := 0
	for _, p := range order {
		if counts[p] > bestCount {
			best, bestCount = p, counts[p]
		}
	}
	return best
}
