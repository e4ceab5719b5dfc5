package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goliatone/go-formsite/internal/extract"
	"github.com/goliatone/go-formsite/internal/markup"
	internalLoader "github.com/goliatone/go-formsite/internal/source/loader"
	"github.com/goliatone/go-formsite/pkg/question"
	"github.com/goliatone/go-formsite/pkg/source"
)

// Scaffolder writes the site for an extracted catalog. *scaffold.Scaffolder
// satisfies it.
type Scaffolder interface {
	Scaffold(ctx context.Context, questions []question.Question, key string) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom question extractor.
func WithExtractor(extractor question.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithScaffolder sets the site writer. Generate fails without one.
func WithScaffolder(scaffolder Scaffolder) Option {
	return func(o *Orchestrator) {
		o.scaffolder = scaffolder
	}
}

// WithLogger sets the logger used for stage boundaries.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from form markup to generated site.
// Missing loader and extractor dependencies fall back to the built-in
// implementations.
type Orchestrator struct {
	loader     source.Loader
	extractor  question.Extractor
	scaffolder Scaffolder
	logger     *slog.Logger
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of one generation run.
type Request struct {
	// Source identifies where the form markup lives. Optional when Markup is
	// supplied.
	Source source.Source

	// Markup bypasses the loader when callers already hold the page.
	Markup []byte

	// Key is the form identifier rendered into the site config. When empty
	// and Source is a URL, it is derived with source.DocsKey.
	Key string
}

// Result reports what a run produced.
type Result struct {
	RunID     string
	Key       string
	Questions []question.Question
}

// Generate executes load -> parse -> extract -> scaffold and returns the
// extracted catalog.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if o.scaffolder == nil {
		return Result{}, errors.New("orchestrator: scaffolder is required")
	}

	result, logger, err := o.extract(ctx, req)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if result.Key == "" {
		logger.Warn("form key is empty, site config will carry no form identifier")
	}
	if err := o.scaffolder.Scaffold(ctx, result.Questions, result.Key); err != nil {
		return Result{}, fmt.Errorf("orchestrator: scaffold site: %w", err)
	}

	logger.Info("generation complete", slog.Int("questions", len(result.Questions)))
	return result, nil
}

// Extract runs load -> parse -> extract without writing anything.
func (o *Orchestrator) Extract(ctx context.Context, req Request) (Result, error) {
	result, _, err := o.extract(ctx, req)
	return result, err
}

func (o *Orchestrator) extract(ctx context.Context, req Request) (Result, *slog.Logger, error) {
	if ctx == nil {
		return Result{}, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, nil, err
	}

	result := Result{RunID: uuid.NewString()}
	logger := o.logger.With(slog.String("run", result.RunID))

	key, err := resolveKey(req)
	if err != nil {
		return Result{}, nil, err
	}
	result.Key = key

	payload, err := o.resolveMarkup(ctx, req)
	if err != nil {
		return Result{}, nil, err
	}
	logger.Debug("markup loaded", slog.Int("bytes", len(payload)))

	if err := ctx.Err(); err != nil {
		return Result{}, nil, err
	}
	doc, err := markup.ParseBytes(payload)
	if err != nil {
		return Result{}, nil, fmt.Errorf("orchestrator: parse markup: %w", err)
	}

	questions, err := o.extractor.Extract(doc)
	if err != nil {
		return Result{}, nil, fmt.Errorf("orchestrator: extract questions: %w", err)
	}
	result.Questions = questions
	logger.Debug("questions extracted", slog.Int("count", len(questions)))

	return result, logger, nil
}

func (o *Orchestrator) resolveMarkup(ctx context.Context, req Request) ([]byte, error) {
	if len(req.Markup) > 0 {
		return req.Markup, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or markup is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc.Markup(), nil
}

func resolveKey(req Request) (string, error) {
	if req.Key != "" || req.Source == nil || req.Source.Kind() != source.SourceKindURL {
		return req.Key, nil
	}
	key, err := source.DocsKey(req.Source.Location())
	if err != nil {
		return "", fmt.Errorf("orchestrator: derive key: %w", err)
	}
	return key, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions())
	}
	if o.extractor == nil {
		o.extractor = extract.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
}
