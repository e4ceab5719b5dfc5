package formsite

import (
	internalLoader "github.com/goliatone/go-formsite/internal/source/loader"
	"github.com/goliatone/go-formsite/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
