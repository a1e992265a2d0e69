package process

import (
	"fmt"

	"github.com/PuerkitoBio/purell"
)

func Normalize(url string) (string, error) {
	flags := purell.FlagLowercaseScheme |
		purell.FlagLowercaseHost |
		purell.FlagRemoveDefaultPort |
		purell.FlagRemoveFragment |
		purell.FlagDecodeUnnecessaryEscapes |
		purell.FlagRemoveDuplicateSlashes |
		purell.FlagRemoveDotSegments

	return purell.NormalizeURLString(url, flags)
}

// PageURL builds the URL of one listing page. Page 1 uses firstFmt
// (word length only), later pages use nthFmt (word length, page number).
func PageURL(firstFmt, nthFmt string, wordLength, page int) (string, error) {
	var raw string
	if page <= 1 {
		raw = fmt.Sprintf(firstFmt, wordLength)
	} else {
		raw = fmt.Sprintf(nthFmt, wordLength, page)
	}
	return Normalize(raw)
}
