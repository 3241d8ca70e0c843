package model

import "time"

// PriceSeries holds the close prices read from one fetch, in source order.
type PriceSeries struct {
	Symbol    string
	Closes    []float64
	FetchedAt time.Time
}

// Len returns the number of data rows the series was built from.
func (s *PriceSeries) Len() int { return len(s.Closes) }
