package scaffold

import (
	"io/fs"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/goliatone/go-formsite/pkg/render/template"
	"github.com/goliatone/go-formsite/pkg/sink"
)

// Option customises a Scaffolder.
type Option func(*Scaffolder)

// WithTemplates sets the template tree used for verbatim copies and, unless
// WithRenderer is given, for rendering.
func WithTemplates(files fs.FS) Option {
	return func(s *Scaffolder) {
		s.templates = files
	}
}

// WithRenderer injects the template renderer.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(s *Scaffolder) {
		s.renderer = renderer
	}
}

// WithSink sets the output destination.
func WithSink(out sink.Sink) Option {
	return func(s *Scaffolder) {
		s.sink = out
	}
}

// WithLanguage sets the language code used for page directories and the data
// file section.
func WithLanguage(language string) Option {
	return func(s *Scaffolder) {
		if language = strings.TrimSpace(language); language != "" {
			s.language = language
		}
	}
}

// WithEncoding sets the text encoding applied to rendered files.
func WithEncoding(enc encoding.Encoding) Option {
	return func(s *Scaffolder) {
		if enc != nil {
			s.encoding = enc
		}
	}
}

// WithLogger sets the logger used for step boundaries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scaffolder) {
		if logger != nil {
			s.logger = logger
		}
	}
}
