package question

import (
	"errors"
	"fmt"
)

// Type is the closed set of question kinds the extractor can detect.
type Type string

const (
	TypeRadio         Type = "radio"
	TypeCheckbox      Type = "checkbox"
	TypeSelect        Type = "select"
	TypeText          Type = "text"
	TypeParagraphText Type = "paragraph-text"
	TypeUnknown       Type = "unknown"
)

const (
	// OtherOptionValue marks the free-text "other" choice in radio and
	// checkbox groups.
	OtherOptionValue = "__other_option__"

	// UnknownName and UnknownLabel replace the real name and label of blocks
	// that match no structural signal. Treat them as a detection failure.
	UnknownName  = "none"
	UnknownLabel = "label"
)

// ErrMalformedDocument reports that an expected structural element is missing
// from the source markup. Extraction aborts on the first occurrence.
var ErrMalformedDocument = errors.New("question: malformed document")

// Valid reports whether t is one of the known types, including unknown.
func (t Type) Valid() bool {
	switch t {
	case TypeRadio, TypeCheckbox, TypeSelect, TypeText, TypeParagraphText, TypeUnknown:
		return true
	}
	return false
}

// Choice is one selectable option of a radio, checkbox or select question.
type Choice struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Question is a single form field block extracted from the source markup.
//
// Choices is only populated for radio, checkbox and select questions;
// ChoiceOther only for radio and checkbox; InputType only for text. For radio
// and checkbox groups Name is read from the first control and assumed to be
// shared by the whole group.
type Question struct {
	Label       string   `json:"label" yaml:"label"`
	Number      int      `json:"question_number" yaml:"question_number"`
	Type        Type     `json:"qtype" yaml:"qtype"`
	Required    bool     `json:"required" yaml:"required"`
	Name        string   `json:"name" yaml:"name"`
	Choices     []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
	ChoiceOther bool     `json:"choice_other,omitempty" yaml:"choice_other,omitempty"`
	InputType   string   `json:"type,omitempty" yaml:"type,omitempty"`
}

// Key returns the data file key for the question (q_1, q_2, ...).
func (q Question) Key() string {
	return KeyFor(q.Number)
}

// HasChoices reports whether the question carries a choice list.
func (q Question) HasChoices() bool {
	switch q.Type {
	case TypeRadio, TypeCheckbox, TypeSelect:
		return true
	}
	return len(q.Choices) > 0
}

// KeyFor formats the data file key for a 1-based question number.
func KeyFor(number int) string {
	return fmt.Sprintf("q_%d", number)
}
