package process

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ParseHTML never fails: malformed markup is recovered the way browsers do.
func ParseHTML(text string) *goquery.Document {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		// strings.Reader only ever returns io.EOF, which html.Parse swallows.
		doc = &html.Node{Type: html.DocumentNode}
	}
	return goquery.NewDocumentFromNode(doc)
}

// DecodeBody reads body and converts it to UTF-8 using the charset from
// contentType or, failing that, from the document itself.
func DecodeBody(body io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		// unknown charset label, keep the bytes as they are
		return string(raw), nil
	}

	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func render(doc *goquery.Document) string {
	var buf bytes.Buffer
	for _, n := range doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			break
		}
	}
	return buf.String()
}
