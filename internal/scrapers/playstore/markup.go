package playstore

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MarkupLoader parses an html fragment into a queryable document.
type MarkupLoader interface {
	Load(fragment string) (*goquery.Document, error)
}

type GoqueryLoader struct{}

func (GoqueryLoader) Load(fragment string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}
