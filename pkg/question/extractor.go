package question

import "github.com/PuerkitoBio/goquery"

// Extractor turns a parsed markup document into an ordered question list. The
// result is deterministic for a given document: blocks are never reordered or
// skipped, and numbering starts at 1.
type Extractor interface {
	Extract(doc *goquery.Document) ([]Question, error)
}
