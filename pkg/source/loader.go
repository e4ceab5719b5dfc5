package source

import (
	"context"
	"io/fs"
	"net/http"
)

// Loader fetches form documents from files, an fs.FS or HTTP.
// Implementations live under internal/source but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS

	// HTTPClient replaces the default transport used for URL sources. No
	// timeout is applied unless the client carries one.
	HTTPClient *http.Client

	// UserAgent overrides the request User-Agent header.
	UserAgent string
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceKindFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithUserAgent sets the User-Agent header sent with URL fetches.
func WithUserAgent(agent string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.UserAgent = agent
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level formsite package to prevent import cycles.
