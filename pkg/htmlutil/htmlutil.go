package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// OwnText returns the text directly contained in the selected elements,
// ignoring any text that belongs to child elements. This is the same as the
// text left over after removing all the child elements.
func OwnText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				buffer.WriteString(child.Data)
			}
		}
	}
	return buffer.String()
}

// StyleProperty returns the value of a property in an inline style declaration
// (the contents of a `style` attribute), the last declaration wins like it does
// in the browser.
func StyleProperty(style, property string) (string, bool) {
	property = strings.ToLower(strings.TrimSpace(property))

	value := ""
	found := false
	for _, decl := range strings.Split(style, ";") {
		name, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(name)) != property {
			continue
		}
		value = strings.TrimSpace(v)
		found = true
	}
	return value, found
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// Normalize trims the string and collapses runs of whitespace into a single space.
func Normalize(s string) string {
	return innerWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}
