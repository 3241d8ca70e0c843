package collector

import (
	"context"
	"io"
)

// Fetcher defines the interface for retrieving the raw price CSV.
// Callers must close the returned body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
	Name() string
}
