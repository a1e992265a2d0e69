package process

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageClass marks the pagination anchors of a listing page.
const PageClass = "pg"

// ExtractPageCount reads the page count from the pagination anchors:
//
//	<a class="pg" href="...page2.htm">2</a>
//	<a class="pg" href="...page3.htm">3</a>
//	...
//	<a class="pg" href="...pageN.htm">N</a>
//
// The last anchor in document order is trusted to hold N. A page without
// anchors is a single-page listing. N must be a positive integer.
func ExtractPageCount(doc *goquery.Document, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}

	anchors := doc.Find("a." + PageClass)
	if anchors.Length() == 0 {
		log.Debug("no pagination anchors, single page")
		return 1, nil
	}
	log.Debug("found pagination anchors", slog.Int("count", anchors.Length()))

	last := anchors.Last().Text()
	count, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return 0, &ScraperError{Msg: fmt.Sprintf("error retrieving page count, could not cast %q to an integer", last)}
	}
	if count < 1 {
		return 0, &ScraperError{Msg: fmt.Sprintf("error retrieving page count, %d is not a positive page count", count)}
	}

	log.Debug("page count", slog.Int("pages", count))
	return count, nil
}
