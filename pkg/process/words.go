package process

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WordClass marks the <span> holding every word of a listing page.
const WordClass = "mt"

// ExtractWords returns the words of a listing page, lowercased, in page order.
// Words sit in <span class="mt">WORD1 WORD2 ... WORDN</span>, uppercase and
// separated by spaces.
func ExtractWords(doc *goquery.Document, log *slog.Logger) ([]string, error) {
	if log == nil {
		log = slog.Default()
	}

	span := doc.Find("span." + WordClass).First()
	if span.Length() == 0 {
		return nil, &WordExtractionError{Document: render(doc)}
	}
	log.Debug("found word span", slog.String("class", WordClass))

	text := strings.ReplaceAll(strings.ToLower(span.Text()), "\n", "")
	parts := strings.Split(text, " ")

	words := make([]string, 0, len(parts))
	for _, w := range parts {
		if w != "" {
			words = append(words, w)
		}
	}

	log.Info("parsed words", slog.Int("count", len(words)))
	return words, nil
}
