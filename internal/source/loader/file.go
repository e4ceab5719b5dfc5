package loader

import (
	"context"
	"errors"
	"os"

	pkgsource "github.com/goliatone/go-formsite/pkg/source"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("source loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pkgsource.FetchError{Location: path, Err: err}
	}
	return decode(data, "")
}
