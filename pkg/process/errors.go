package process

import "fmt"

// ScraperError reports a page that was reachable but unusable: a non-2xx
// response, an unparsable page count or a robots.txt disallow.
type ScraperError struct {
	URL        string
	StatusCode int
	Msg        string
}

func (e *ScraperError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s returned HTTP code %d", e.URL, e.StatusCode)
	}
	if e.URL != "" {
		return fmt.Sprintf("%s: %s", e.URL, e.Msg)
	}
	return e.Msg
}

// WordExtractionError is returned when a page has no word-marker element.
// Document holds the rendered page for diagnostics.
type WordExtractionError struct {
	Document string
}

func (e *WordExtractionError) Error() string {
	return fmt.Sprintf("error finding <span class=%q> containing words from HTML:\n%s", WordClass, e.Document)
}
