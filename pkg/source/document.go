package source

import "errors"

// Document wraps the UTF-8 markup of a form page and its origin.
type Document struct {
	source Source
	markup []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, markup []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: source is required")
	}
	if len(markup) == 0 {
		return Document{}, errors.New("source: markup is empty")
	}

	clone := append([]byte(nil), markup...)
	return Document{source: src, markup: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, markup []byte) Document {
	doc, err := NewDocument(src, markup)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Markup returns a copy of the document payload.
func (d Document) Markup() []byte {
	return append([]byte(nil), d.markup...)
}
