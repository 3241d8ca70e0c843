package model

// SeriesSummary holds the figures logged after each run.
type SeriesSummary struct {
	Count int
	High  float64
	Low   float64
	Mean  float64
	Final float64 // value at the highest index, whatever the feed's date order
}
