package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formsite/pkg/question"
)

const (
	otherLabel  = "Other..."
	otherSuffix = ".other_option_response"
)

// Previewer prompts for every question in a catalog.
type Previewer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	validate     *validator.Validate
}

// New constructs a Previewer. The survey driver is used unless
// WithPromptDriver overrides it.
func New(options ...Option) *Previewer {
	p := &Previewer{
		outputFormat: OutputFormatJSON,
		validate:     validator.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver()
	}
	return p
}

// Collect prompts for each question in order and returns the answers keyed
// by field name. Checkbox answers are string slices; every other answer is a
// string. Unknown questions are announced and skipped.
func (p *Previewer) Collect(ctx context.Context, questions []question.Question) (map[string]any, error) {
	values := make(map[string]any, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.prompt(ctx, q, values); err != nil {
			return nil, fmt.Errorf("preview: question %d: %w", q.Number, err)
		}
	}
	return values, nil
}

// Render collects answers and serializes them in the configured format.
func (p *Previewer) Render(ctx context.Context, questions []question.Question) ([]byte, error) {
	values, err := p.Collect(ctx, questions)
	if err != nil {
		return nil, err
	}
	return p.serialize(values)
}

func (p *Previewer) prompt(ctx context.Context, q question.Question, values map[string]any) error {
	switch q.Type {
	case question.TypeText:
		return p.promptText(ctx, q, values)
	case question.TypeParagraphText:
		answer, err := p.driver.TextArea(ctx, TextAreaConfig{
			Message:  displayLabel(q),
			Required: q.Required,
		})
		if err != nil {
			return err
		}
		values[q.Name] = answer
	case question.TypeRadio, question.TypeSelect:
		return p.promptSingle(ctx, q, values)
	case question.TypeCheckbox:
		return p.promptMulti(ctx, q, values)
	default:
		return p.driver.Info(ctx, fmt.Sprintf("Skipping question %d: unsupported field", q.Number))
	}
	return nil
}

func (p *Previewer) promptText(ctx context.Context, q question.Question, values map[string]any) error {
	cfg := InputConfig{
		Message:  displayLabel(q),
		Required: q.Required,
	}
	if tag := validationTag(q.InputType); tag != "" {
		cfg.Validator = func(value string) error {
			if value == "" {
				return nil
			}
			if err := p.validate.Var(value, tag); err != nil {
				return fmt.Errorf("expected a valid %s", q.InputType)
			}
			return nil
		}
	}
	answer, err := p.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	values[q.Name] = answer
	return nil
}

func (p *Previewer) promptSingle(ctx context.Context, q question.Question, values map[string]any) error {
	options, choices := choiceOptions(q)
	if len(options) == 0 {
		return ErrNoChoices
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:  displayLabel(q),
		Options:  options,
		Required: q.Required,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(choices) {
		return fmt.Errorf("selection %d out of range", idx)
	}

	values[q.Name] = choices[idx]
	if choices[idx] == question.OtherOptionValue {
		return p.promptOther(ctx, q, values)
	}
	return nil
}

func (p *Previewer) promptMulti(ctx context.Context, q question.Question, values map[string]any) error {
	options, choices := choiceOptions(q)
	if len(options) == 0 {
		return ErrNoChoices
	}

	picked, err := p.driver.MultiSelect(ctx, SelectConfig{
		Message:  displayLabel(q),
		Options:  options,
		Required: q.Required,
	})
	if err != nil {
		return err
	}

	selected := make([]string, 0, len(picked))
	other := false
	for _, idx := range picked {
		if idx < 0 || idx >= len(choices) {
			return fmt.Errorf("selection %d out of range", idx)
		}
		selected = append(selected, choices[idx])
		other = other || choices[idx] == question.OtherOptionValue
	}
	values[q.Name] = selected

	if other {
		return p.promptOther(ctx, q, values)
	}
	return nil
}

func (p *Previewer) promptOther(ctx context.Context, q question.Question, values map[string]any) error {
	answer, err := p.driver.Input(ctx, InputConfig{
		Message:  displayLabel(q) + " (other)",
		Required: true,
	})
	if err != nil {
		return err
	}
	values[q.Name+otherSuffix] = answer
	return nil
}

func (p *Previewer) serialize(values map[string]any) ([]byte, error) {
	switch p.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(values)), nil
	default:
		return json.MarshalIndent(values, "", "  ")
	}
}

// choiceOptions returns prompt labels and the matching submitted values. The
// other sentinel is shown with a readable label.
func choiceOptions(q question.Question) ([]string, []string) {
	options := make([]string, 0, len(q.Choices))
	choices := make([]string, 0, len(q.Choices))
	for _, c := range q.Choices {
		label := c.Label
		if c.Value == question.OtherOptionValue {
			label = otherLabel
		}
		options = append(options, label)
		choices = append(choices, c.Value)
	}
	return options, choices
}

func displayLabel(q question.Question) string {
	label := strings.TrimSpace(q.Label)
	if q.Required {
		label += " *"
	}
	return label
}

func validationTag(inputType string) string {
	switch inputType {
	case "email":
		return "email"
	case "url":
		return "url"
	case "number":
		return "numeric"
	}
	return ""
}

func encodeForm(values map[string]any) string {
	form := url.Values{}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch v := values[key].(type) {
		case []string:
			for _, item := range v {
				form.Add(key, item)
			}
		default:
			form.Add(key, fmt.Sprint(v))
		}
	}
	return form.Encode()
}
