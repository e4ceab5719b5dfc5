// Package formsite turns a published survey form into a Jekyll site: it
// fetches the form page, extracts the typed question catalog and scaffolds
// the site from a template set.
package formsite

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-formsite/pkg/config"
	"github.com/goliatone/go-formsite/pkg/orchestrator"
	"github.com/goliatone/go-formsite/pkg/question"
	"github.com/goliatone/go-formsite/pkg/scaffold"
	"github.com/goliatone/go-formsite/pkg/sink"
	"github.com/goliatone/go-formsite/pkg/source"
)

// Result aliases orchestrator.Result for callers of the root package.
type Result = orchestrator.Result

// Option customises the facade helpers.
type Option func(*settings)

type settings struct {
	logger        *slog.Logger
	loaderOptions []source.LoaderOption
	sink          sink.Sink
	key           string
}

// WithLogger sets the logger handed to the pipeline stages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLoaderOptions configures the document loader.
func WithLoaderOptions(options ...source.LoaderOption) Option {
	return func(s *settings) {
		s.loaderOptions = append(s.loaderOptions, options...)
	}
}

// WithSink replaces the on-disk output rooted at Config.OutputDir.
func WithSink(out sink.Sink) Option {
	return func(s *settings) {
		s.sink = out
	}
}

// WithKey sets the form key rendered into the site config. It takes
// precedence over the key derived from a URL and is the only way to supply
// one for file sources.
func WithKey(key string) Option {
	return func(s *settings) {
		s.key = strings.TrimSpace(key)
	}
}

func newSettings(options []Option) settings {
	s := settings{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Generate fetches the form at location (URL or file path), extracts its
// questions and scaffolds the site described by cfg. Unless WithKey is given,
// the form key for URLs is the path segment before the final slash and is
// empty for files.
func Generate(ctx context.Context, location string, cfg config.Config, options ...Option) (Result, error) {
	src, err := source.Parse(location)
	if err != nil {
		return Result{}, err
	}
	s := newSettings(options)
	return run(ctx, orchestrator.Request{Source: src, Key: s.key}, cfg, options)
}

// GenerateFromMarkup scaffolds the site from markup already in memory. key is
// rendered into the site config as-is.
func GenerateFromMarkup(ctx context.Context, markup []byte, key string, cfg config.Config, options ...Option) (Result, error) {
	return run(ctx, orchestrator.Request{Markup: markup, Key: key}, cfg, options)
}

// Extract returns the question catalog for src without writing anything.
func Extract(ctx context.Context, src source.Source, options ...Option) ([]question.Question, error) {
	s := newSettings(options)
	orch := orchestrator.New(
		orchestrator.WithLoader(NewLoader(s.loaderOptions...)),
		orchestrator.WithLogger(s.logger),
	)
	result, err := orch.Extract(ctx, orchestrator.Request{Source: src})
	if err != nil {
		return nil, err
	}
	return result.Questions, nil
}

// NewScaffolder builds a Scaffolder for cfg. An empty TemplateDir selects
// DefaultTemplates.
func NewScaffolder(cfg config.Config, options ...Option) (*scaffold.Scaffolder, error) {
	resolved, err := config.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	s := newSettings(options)

	enc, err := resolved.TextEncoding()
	if err != nil {
		return nil, err
	}

	out := s.sink
	if out == nil {
		out = sink.NewOS(resolved.OutputDir)
	}

	return scaffold.New(
		scaffold.WithTemplates(templatesFor(resolved)),
		scaffold.WithSink(out),
		scaffold.WithLanguage(resolved.Language),
		scaffold.WithEncoding(enc),
		scaffold.WithLogger(s.logger),
	)
}

func run(ctx context.Context, req orchestrator.Request, cfg config.Config, options []Option) (Result, error) {
	s := newSettings(options)

	scaffolder, err := NewScaffolder(cfg, options...)
	if err != nil {
		return Result{}, fmt.Errorf("formsite: %w", err)
	}

	orch := orchestrator.New(
		orchestrator.WithLoader(NewLoader(s.loaderOptions...)),
		orchestrator.WithScaffolder(scaffolder),
		orchestrator.WithLogger(s.logger),
	)
	return orch.Generate(ctx, req)
}

func templatesFor(cfg config.Config) fs.FS {
	if cfg.TemplateDir == "" {
		return DefaultTemplates()
	}
	return os.DirFS(cfg.TemplateDir)
}
