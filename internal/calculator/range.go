package calculator

import (
	"errors"
	"math"

	"ClosePlot/internal/model"
)

// CalculateRange returns the highest and lowest value in prices.
func CalculateRange(prices []float64) (high, low float64, err error) {
	if len(prices) == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, p := range prices {
		if p > high {
			high = p
		}
		if p < low {
			low = p
		}
	}
	return high, low, nil
}

// Summarize computes the figures logged for a fetched series.
// An empty series yields a zero summary.
func Summarize(prices []float64) model.SeriesSummary {
	s := model.SeriesSummary{Count: len(prices)}
	if len(prices) == 0 {
		return s
	}
	s.High, s.Low, _ = CalculateRange(prices)
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	s.Mean = sum / float64(len(prices))
	s.Final = prices[len(prices)-1]
	return s
}
