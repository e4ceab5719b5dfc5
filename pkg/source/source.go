package source

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a form document originated.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// FromFS returns a Source identifying a resource inside an fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// FromURL validates raw and returns a Source for it.
func FromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("source: empty URL")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// MustFromURL panics if raw is not a valid URL. Useful for tests.
func MustFromURL(raw string) Source {
	src, err := FromURL(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// Parse picks a URL source for http(s) locations and a file source otherwise.
func Parse(raw string) (Source, error) {
	if isHTTP(raw) {
		return FromURL(raw)
	}
	if raw == "" {
		return nil, fmt.Errorf("source: empty location")
	}
	return FromFile(raw), nil
}

func isHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
