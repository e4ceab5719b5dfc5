package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/goliatone/go-formsite/pkg/question"
	"github.com/goliatone/go-formsite/pkg/render/template"
	"github.com/goliatone/go-formsite/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formsite/pkg/sink"
)

const (
	defaultLanguage = "en"

	configTemplate = "_config.yml"
	dataFile       = "_data/questions.yml"
	formLayout     = "_layouts/form.html"
	staticDir      = "static"

	formHead  = "form/form_head.html"
	fieldHead = "form/field_head.html"
	formTail  = "form/form_tail.html"

	fragmentSeparator = "\n\n"
)

// page maps a language template onto its output path below the language
// directory.
type page struct {
	template string
	output   string
}

var languagePages = []page{
	{template: "lang/index.html", output: "index.html"},
	{template: "lang/thanks.html", output: "thanks/index.html"},
	{template: "lang/about.html", output: "about/index.html"},
}

// verbatim files are copied without rendering.
var verbatim = []string{
	"Gemfile",
	"index.html",
	"_layouts/base.html",
	"_layouts/default.html",
	"_layouts/page.html",
}

// Scaffolder writes the site tree for a question catalog.
type Scaffolder struct {
	templates fs.FS
	renderer  template.TemplateRenderer
	sink      sink.Sink
	language  string
	encoding  encoding.Encoding
	logger    *slog.Logger
}

// New constructs a Scaffolder. A template tree and a sink are required; the
// renderer defaults to a pongo2 engine over the template tree. The language
// is seeded as a renderer global visible to every template.
func New(options ...Option) (*Scaffolder, error) {
	s := &Scaffolder{
		language: defaultLanguage,
		encoding: unicode.UTF8,
		logger:   slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.templates == nil {
		return nil, errors.New("scaffold: template tree is required")
	}
	if s.sink == nil {
		return nil, errors.New("scaffold: sink is required")
	}
	globals := map[string]any{"language": s.language}
	if s.renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(s.templates),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("scaffold: build renderer: %w", err)
		}
		s.renderer = engine
	} else if err := s.renderer.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("scaffold: seed renderer globals: %w", err)
	}
	return s, nil
}

// Language returns the configured language code.
func (s *Scaffolder) Language() string {
	return s.language
}

// Scaffold writes every output for questions. key is the form identifier
// rendered into the site config. The first failing step aborts the run;
// files written before it are left in place.
func (s *Scaffolder) Scaffold(ctx context.Context, questions []question.Question, key string) error {
	if ctx == nil {
		return errors.New("scaffold: context is required")
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"config", func() error { return s.renderFile(configTemplate, map[string]any{"key": key}, configTemplate) }},
		{"pages", s.renderPages},
		{"copy", s.copyFiles},
		{"static", func() error { return s.sink.ReplaceDir(s.templates, staticDir) }},
		{"data", func() error { return s.writeData(questions) }},
		{"form", func() error { return s.scaffoldForm(questions) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.logger.Debug("scaffold step", slog.String("step", step.name))
		if err := step.run(); err != nil {
			return fmt.Errorf("scaffold: %s: %w", step.name, err)
		}
	}

	s.logger.Info("site scaffolded",
		slog.Int("questions", len(questions)),
		slog.String("language", s.language),
	)
	return nil
}

func (s *Scaffolder) renderPages() error {
	for _, p := range languagePages {
		if err := s.renderFile(p.template, nil, path.Join(s.language, p.output)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) copyFiles() error {
	for _, name := range verbatim {
		if err := s.sink.CopyFile(s.templates, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) writeData(questions []question.Question) error {
	data, err := MarshalData(questions, s.language)
	if err != nil {
		return err
	}
	return s.sink.WriteFile(dataFile, data)
}

// renderFile renders name with data and writes it to output. A missing
// template produces an empty file.
func (s *Scaffolder) renderFile(name string, data map[string]any, output string) error {
	rendered, err := s.renderer.RenderTemplate(name, data)
	if err != nil {
		return err
	}
	encoded, err := s.encode(rendered)
	if err != nil {
		return err
	}
	return s.sink.WriteFile(output, encoded)
}

// scaffoldForm assembles the form layout: the head fragment, one field head
// plus type fragment per question in numbering order, then the tail. A
// per-question template form/q_<n>.html overrides the type fragment.
func (s *Scaffolder) scaffoldForm(questions []question.Question) error {
	if questions == nil {
		questions = []question.Question{}
	}
	ctx := map[string]any{"questions": questions}

	var buf bytes.Buffer
	if err := s.renderInto(&buf, ctx, formHead); err != nil {
		return err
	}
	buf.WriteString(fragmentSeparator)

	for _, q := range questions {
		ctx["question"] = q
		if err := s.renderInto(&buf, ctx, fieldHead); err != nil {
			return err
		}
		if err := s.renderInto(&buf, ctx, FragmentCandidates(q)...); err != nil {
			return err
		}
		buf.WriteString(fragmentSeparator)
	}

	if err := s.renderInto(&buf, ctx, formTail); err != nil {
		return err
	}

	encoded, err := s.encode(buf.String())
	if err != nil {
		return err
	}
	return s.sink.WriteFile(formLayout, encoded)
}

func (s *Scaffolder) renderInto(buf *bytes.Buffer, data map[string]any, candidates ...string) error {
	tpl, err := s.renderer.Resolve(candidates...)
	if err != nil {
		return err
	}
	_, err = tpl.Execute(data, buf)
	return err
}

func (s *Scaffolder) encode(text string) ([]byte, error) {
	out, err := s.encoding.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return []byte(out), nil
}

// FragmentCandidates lists the templates tried for a question's form
// fragment, most specific first.
func FragmentCandidates(q question.Question) []string {
	return []string{
		fmt.Sprintf("form/%s.html", q.Key()),
		fmt.Sprintf("form/form_%s.html", q.Type),
	}
}
