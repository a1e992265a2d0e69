package scraper

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/devraulu/wordlegen/pkg/process"
)

// Fetcher returns the decoded body of url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher issues a single GET per call. Transport errors are returned
// exactly as the client reports them; non-2xx responses become a
// *process.ScraperError.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
	Log       *slog.Logger
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Add("Accept", "text/html")
	if f.UserAgent != "" {
		req.Header.Add("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	f.logger().Debug("fetched", slog.String("url", url), slog.Int("status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &process.ScraperError{URL: url, StatusCode: resp.StatusCode}
	}

	return process.DecodeBody(resp.Body, resp.Header.Get("Content-Type"))
}

func (f *HTTPFetcher) logger() *slog.Logger {
	if f.Log == nil {
		return slog.Default()
	}
	return f.Log
}
