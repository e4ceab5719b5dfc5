package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/go-resty/resty/v2"

	pkgsource "github.com/goliatone/go-formsite/pkg/source"
)

// Loader implements pkgsource.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level formsite package.
type Loader struct {
	fs   fs.FS
	http *resty.Client
}

// Ensure the implementation satisfies the public interface.
var _ pkgsource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgsource.LoaderOptions) pkgsource.Loader {
	return &Loader{
		fs:   options.FileSystem,
		http: newHTTPClient(options),
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgsource.Source) (pkgsource.Document, error) {
	if src == nil {
		return pkgsource.Document{}, errors.New("source loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgsource.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgsource.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgsource.SourceKindURL:
		data, err = loadHTTP(ctx, l.http, src.Location())
	default:
		err = errors.New("source loader: unsupported source kind")
	}
	if err != nil {
		return pkgsource.Document{}, err
	}

	return pkgsource.NewDocument(src, data)
}
