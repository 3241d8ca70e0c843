package collector

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"ClosePlot/internal/model"
	"ClosePlot/internal/parser"
)

// MockFetcher serves fixed CSV text for development and testing.
type MockFetcher struct {
	Body  string
	Err   error
	Calls int
	URLs  []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, url string) (io.ReadCloser, error) {
	m.Calls++
	m.URLs = append(m.URLs, url)
	if m.Err != nil {
		return nil, m.Err
	}
	return io.NopCloser(strings.NewReader(m.Body)), nil
}

// Collector fetches the price CSV and extracts its close column.
type Collector struct {
	Fetcher Fetcher
	URL     string
	Symbol  string
	Column  int
	Missing float64
}

// NewCollector creates a Collector reading the default close column.
func NewCollector(fetcher Fetcher, url, symbol string) *Collector {
	return &Collector{
		Fetcher: fetcher,
		URL:     url,
		Symbol:  symbol,
		Column:  parser.CloseColumn,
	}
}

// Collect performs one fetch and parses it into a PriceSeries.
func (c *Collector) Collect(ctx context.Context) (*model.PriceSeries, error) {
	body, err := c.Fetcher.Fetch(ctx, c.URL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	closes, err := parser.ParseCloses(body, c.Column, c.Missing)
	if err != nil {
		return nil, fmt.Errorf("parse closes: %w", err)
	}
	return &model.PriceSeries{
		Symbol:    c.Symbol,
		Closes:    closes,
		FetchedAt: time.Now(),
	}, nil
}
