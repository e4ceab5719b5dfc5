// Package markup wraps goquery with the handful of structural queries the
// question extractor relies on: class-substring selection, attribute reads and
// the element's own leading text.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse reads UTF-8 markup into a navigable document.
func Parse(r io.Reader) (*goquery.Document, error) {
	if r == nil {
		return nil, fmt.Errorf("markup: reader is nil")
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("markup: parse document: %w", err)
	}
	return doc, nil
}

// ParseBytes is Parse over an in-memory payload.
func ParseBytes(data []byte) (*goquery.Document, error) {
	return Parse(bytes.NewReader(data))
}

// ClassContains builds a selector matching elements whose class attribute
// contains token as a substring, like XPath contains(@class, token).
func ClassContains(token string) string {
	return fmt.Sprintf("[class*=%q]", token)
}

// HasClassToken reports whether the first element's class attribute contains
// token as a substring.
func HasClassToken(sel *goquery.Selection, token string) bool {
	class, ok := sel.Attr("class")
	if !ok {
		return false
	}
	return strings.Contains(class, token)
}

// Attr returns the named attribute of the first element, reporting whether it
// was present.
func Attr(sel *goquery.Selection, name string) (string, bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}
	return sel.Attr(name)
}

// LeadingText returns the text of the first node in sel up to its first
// non-text child. Elements and comments both end the run, so nested element
// text (required asterisks, help spans) is never included.
func LeadingText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for child := sel.Get(0).FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.TextNode {
			break
		}
		b.WriteString(child.Data)
	}
	return b.String()
}
