package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const userAgent = "Mozilla/5.0"

// HTTPFetcher implements Fetcher with a single plain GET request.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with optional proxy support.
// The client carries no timeout of its own; ctx is the only deadline.
func NewHTTPFetcher(proxyURL string) (*HTTPFetcher, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(u)
	}
	return &HTTPFetcher{
		Client: &http.Client{Transport: transport},
	}, nil
}

func (f *HTTPFetcher) Name() string { return "http" }

func (f *HTTPFetcher) Fetch(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch csv: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("fetch csv: status %d, body: %s", resp.StatusCode, string(body))
	}
	return resp.Body, nil
}
