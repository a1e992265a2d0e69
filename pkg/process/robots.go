package process

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/benjaminestes/robots"
)

// RobotsGate answers whether a URL may be fetched, caching one robots.txt per
// host. Not safe for concurrent use.
type RobotsGate struct {
	client    *http.Client
	userAgent string
	cache     map[string]*robots.Robots
	log       *slog.Logger
}

func NewRobotsGate(client *http.Client, userAgent string, log *slog.Logger) *RobotsGate {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &RobotsGate{
		client:    client,
		userAgent: userAgent,
		cache:     make(map[string]*robots.Robots),
		log:       log,
	}
}

// Check returns a ScraperError when robots.txt disallows url. A robots.txt
// that cannot be located, fetched or parsed allows everything.
func (g *RobotsGate) Check(ctx context.Context, url string) error {
	r := g.lookup(ctx, url)
	if r != nil && !r.Test(g.userAgent, url) {
		return &ScraperError{URL: url, Msg: "disallowed by robots.txt"}
	}
	return nil
}

func (g *RobotsGate) lookup(ctx context.Context, url string) (r *robots.Robots) {
	defer func() {
		if rec := recover(); rec != nil {
			g.log.Warn("panic in robots.txt parsing, assuming allowed", slog.String("url", url), slog.Any("panic", rec))
			r = nil
		}
	}()

	robotsURL, err := robots.Locate(url)
	if err != nil {
		return nil
	}

	if r, ok := g.cache[robotsURL]; ok {
		return r
	}

	r, err = g.fetch(ctx, robotsURL)
	if err != nil {
		g.log.Warn("failed to fetch robots.txt", slog.String("url", robotsURL), slog.Any("err", err))
		g.cache[robotsURL] = nil
		return nil
	}

	g.cache[robotsURL] = r
	return r
}

func (g *RobotsGate) fetch(ctx context.Context, url string) (*robots.Robots, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	g.log.Debug("robots.txt response",
		slog.String("url", url),
		slog.Int("status_code", resp.StatusCode),
		slog.Int("body_length", len(body)),
	)

	return robots.From(resp.StatusCode, bytes.NewReader(body))
}
