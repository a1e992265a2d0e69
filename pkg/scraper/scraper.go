package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/devraulu/wordlegen/pkg/config"
	"github.com/devraulu/wordlegen/pkg/process"
)

var ErrInvalidWordLength = errors.New("word length must be a positive integer")

type ScrapeStats struct {
	StartTime    time.Time
	PagesFetched int
	PageCount    int
	Words        int
}

func (s *ScrapeStats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// Scraper walks every listing page for one word length, strictly in order.
type Scraper struct {
	firstPageURL string
	nthPageURL   string
	fetcher      Fetcher
	robots       *process.RobotsGate
	log          *slog.Logger
	Stats        ScrapeStats
}

type Option func(*Scraper)

func WithFetcher(f Fetcher) Option {
	return func(s *Scraper) { s.fetcher = f }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scraper) { s.log = l }
}

func New(cfg *config.Config, opts ...Option) *Scraper {
	s := &Scraper{
		firstPageURL: cfg.Source.FirstPageURL,
		nthPageURL:   cfg.Source.NthPageURL,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fetcher == nil {
		s.fetcher = &HTTPFetcher{
			Client:    &http.Client{Timeout: cfg.Source.GetTimeout()},
			UserAgent: cfg.Source.UserAgent,
			Log:       s.log,
		}
	}

	if cfg.Politeness.RespectRobots {
		client := &http.Client{Timeout: cfg.Politeness.GetRobotsTimeout()}
		s.robots = process.NewRobotsGate(client, cfg.Source.UserAgent, s.log)
	}

	return s
}

// Scrape returns every word of the given length, page 1 first. Any failure
// aborts the whole scrape and is returned unchanged; no partial result is
// returned.
func (s *Scraper) Scrape(ctx context.Context, wordLength int) ([]string, error) {
	if wordLength < 1 {
		return nil, ErrInvalidWordLength
	}

	s.Stats = ScrapeStats{StartTime: time.Now()}

	doc, err := s.page(ctx, wordLength, 1)
	if err != nil {
		return nil, err
	}

	pageCount, err := process.ExtractPageCount(doc, s.log)
	if err != nil {
		return nil, err
	}
	s.Stats.PageCount = pageCount

	s.log.Debug("start extracting words", slog.Int("word_length", wordLength))
	s.log.Info("parse page", slog.Int("page", 1), slog.Int("pages", pageCount))

	words, err := process.ExtractWords(doc, s.log)
	if err != nil {
		return nil, err
	}

	for page := 2; page <= pageCount; page++ {
		s.log.Info("parse page", slog.Int("page", page), slog.Int("pages", pageCount))

		doc, err := s.page(ctx, wordLength, page)
		if err != nil {
			return nil, err
		}

		pageWords, err := process.ExtractWords(doc, s.log)
		if err != nil {
			return nil, err
		}
		words = append(words, pageWords...)
	}

	s.Stats.Words = len(words)
	s.log.Info("word parsing is successful",
		slog.Int("words", s.Stats.Words),
		slog.Int("pages", s.Stats.PagesFetched),
		slog.Duration("elapsed", s.Stats.Elapsed()),
	)

	return words, nil
}

func (s *Scraper) page(ctx context.Context, wordLength, page int) (*goquery.Document, error) {
	url, err := process.PageURL(s.firstPageURL, s.nthPageURL, wordLength, page)
	if err != nil {
		return nil, err
	}

	if s.robots != nil {
		if err := s.robots.Check(ctx, url); err != nil {
			return nil, err
		}
	}

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	s.Stats.PagesFetched++

	return process.ParseHTML(body), nil
}
