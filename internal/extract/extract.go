// Package extract classifies survey form markup into typed question records.
//
// Classification checks the item block's class attribute against a fixed,
// priority-ordered signal table; the first signal that matches selects the
// extraction function for that variant. Blocks that match nothing become
// unknown questions with placeholder name and label.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-formsite/internal/markup"
	"github.com/goliatone/go-formsite/pkg/question"
)

const (
	classQuestion = "ss-form-question"
	classItem     = "ss-item"
	classTitle    = "ss-q-title"
	classRequired = "ss-item-required"
)

type extractFunc func(item *goquery.Selection, q *question.Question) error

type signal struct {
	class   string
	extract extractFunc
}

// signals is evaluated in order; the first class found on the item block wins.
var signals = []signal{
	{class: "ss-radio", extract: choiceGroup(question.TypeRadio)},
	{class: "ss-text", extract: extractText},
	{class: "ss-paragraph-text", extract: extractParagraphText},
	{class: "ss-checkbox", extract: choiceGroup(question.TypeCheckbox)},
	{class: "ss-select", extract: extractSelect},
}

// MalformedError reports a missing structural element for a question block.
type MalformedError struct {
	Question int
	Element  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("extract: question %d: missing %s", e.Question, e.Element)
}

// Unwrap lets callers match question.ErrMalformedDocument with errors.Is.
func (e *MalformedError) Unwrap() error {
	return question.ErrMalformedDocument
}

// Extractor implements question.Extractor for the ss-* form markup.
type Extractor struct{}

var _ question.Extractor = (*Extractor)(nil)

// New constructs an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns one question per question block in document order. Any
// missing required element aborts the whole extraction.
func (e *Extractor) Extract(doc *goquery.Document) ([]question.Question, error) {
	if doc == nil {
		return nil, fmt.Errorf("extract: document is nil")
	}

	blocks := doc.Find(markup.ClassContains(classQuestion))
	questions := make([]question.Question, 0, blocks.Length())
	for i := range blocks.Nodes {
		q, err := extractBlock(blocks.Eq(i), i+1)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func extractBlock(block *goquery.Selection, number int) (question.Question, error) {
	item := block.ChildrenFiltered(markup.ClassContains(classItem)).First()
	if item.Length() == 0 {
		return question.Question{}, &MalformedError{Question: number, Element: "item block"}
	}

	title := item.Find(markup.ClassContains(classTitle)).First()
	if title.Length() == 0 {
		return question.Question{}, &MalformedError{Question: number, Element: "question title"}
	}

	q := question.Question{
		Label:    strings.TrimSpace(markup.LeadingText(title)),
		Number:   number,
		Type:     question.TypeUnknown,
		Required: markup.HasClassToken(item, classRequired),
	}

	for _, sig := range signals {
		if !markup.HasClassToken(item, sig.class) {
			continue
		}
		if err := sig.extract(item, &q); err != nil {
			var malformed *MalformedError
			if errors.As(err, &malformed) {
				malformed.Question = number
			}
			return question.Question{}, err
		}
		return q, nil
	}

	q.Name = question.UnknownName
	q.Label = question.UnknownLabel
	return q, nil
}

func choiceGroup(kind question.Type) extractFunc {
	selector := fmt.Sprintf("input[type=%q]", string(kind))
	return func(item *goquery.Selection, q *question.Question) error {
		controls := item.Find(selector)
		if controls.Length() == 0 {
			return &MalformedError{Element: selector}
		}
		name, ok := markup.Attr(controls.First(), "name")
		if !ok {
			return &MalformedError{Element: selector + " name"}
		}

		choices := make([]question.Choice, 0, controls.Length())
		for i := range controls.Nodes {
			value, ok := markup.Attr(controls.Eq(i), "value")
			if !ok {
				return &MalformedError{Element: selector + " value"}
			}
			choices = append(choices, question.Choice{Label: value, Value: value})
		}

		other := item.Find(fmt.Sprintf("input[value=%q]", question.OtherOptionValue))

		q.Type = kind
		q.Name = name
		q.Choices = choices
		q.ChoiceOther = other.Length() > 0
		return nil
	}
}

func extractSelect(item *goquery.Selection, q *question.Question) error {
	control := item.Find("select").First()
	if control.Length() == 0 {
		return &MalformedError{Element: "select"}
	}
	name, ok := markup.Attr(control, "name")
	if !ok {
		return &MalformedError{Element: "select name"}
	}

	options := control.ChildrenFiltered("option")
	choices := make([]question.Choice, 0, options.Length())
	for i := range options.Nodes {
		option := options.Eq(i)
		// Empty-valued options are placeholders ("Choose").
		value, _ := markup.Attr(option, "value")
		if value == "" {
			continue
		}
		choices = append(choices, question.Choice{
			Label: markup.LeadingText(option),
			Value: value,
		})
	}

	q.Type = question.TypeSelect
	q.Name = name
	q.Choices = choices
	return nil
}

func extractText(item *goquery.Selection, q *question.Question) error {
	input := item.Find("input").First()
	if input.Length() == 0 {
		return &MalformedError{Element: "input"}
	}
	name, label, err := namedControl(input, "input")
	if err != nil {
		return err
	}
	inputType, ok := markup.Attr(input, "type")
	if !ok {
		return &MalformedError{Element: "input type"}
	}

	q.Type = question.TypeText
	q.Name = name
	q.Label = label
	q.InputType = inputType
	return nil
}

func extractParagraphText(item *goquery.Selection, q *question.Question) error {
	area := item.Find("textarea").First()
	if area.Length() == 0 {
		return &MalformedError{Element: "textarea"}
	}
	name, label, err := namedControl(area, "textarea")
	if err != nil {
		return err
	}

	q.Type = question.TypeParagraphText
	q.Name = name
	q.Label = label
	return nil
}

// namedControl reads the field name and the trimmed accessible label, which
// replaces the block title for free-text questions.
func namedControl(control *goquery.Selection, element string) (string, string, error) {
	name, ok := markup.Attr(control, "name")
	if !ok {
		return "", "", &MalformedError{Element: element + " name"}
	}
	label, ok := markup.Attr(control, "aria-label")
	if !ok {
		return "", "", &MalformedError{Element: element + " aria-label"}
	}
	return name, strings.TrimSpace(label), nil
}
