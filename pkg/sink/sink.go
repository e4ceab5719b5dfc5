// Package sink writes the generated site tree. All paths are slash-separated
// and relative to the sink root; parent directories are created on demand and
// existing files are overwritten.
package sink

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// ErrOutputWrite is matched by every error the sink returns.
var ErrOutputWrite = errors.New("sink: output write failed")

// WriteError describes a failed filesystem operation.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("sink: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrOutputWrite, e.Err}
}

// Sink is the output collaborator used by the scaffolder.
type Sink interface {
	MkdirAll(name string) error
	WriteFile(name string, data []byte) error
	CopyFile(src fs.FS, name string) error
	ReplaceDir(src fs.FS, name string) error
}

// FS implements Sink on top of a billy filesystem.
type FS struct {
	fs billy.Filesystem
}

var _ Sink = (*FS)(nil)

// New wraps an existing billy filesystem (osfs, memfs, chroot).
func New(filesystem billy.Filesystem) *FS {
	return &FS{fs: filesystem}
}

// NewOS returns a sink rooted at dir on the local disk.
func NewOS(dir string) *FS {
	return New(osfs.New(dir))
}

// Filesystem exposes the underlying billy filesystem.
func (s *FS) Filesystem() billy.Filesystem {
	return s.fs
}

// MkdirAll creates name and any missing parents. Existing directories are not
// an error.
func (s *FS) MkdirAll(name string) error {
	name = clean(name)
	if name == "." {
		return nil
	}
	if err := s.fs.MkdirAll(name, dirPerm); err != nil {
		return &WriteError{Op: "mkdir", Path: name, Err: err}
	}
	return nil
}

// WriteFile replaces name with data.
func (s *FS) WriteFile(name string, data []byte) error {
	name = clean(name)
	if err := s.MkdirAll(path.Dir(name)); err != nil {
		return err
	}
	if err := util.WriteFile(s.fs, name, data, filePerm); err != nil {
		return &WriteError{Op: "write", Path: name, Err: err}
	}
	return nil
}

// CopyFile copies name from src to the same relative path in the sink.
func (s *FS) CopyFile(src fs.FS, name string) error {
	name = clean(name)
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return &WriteError{Op: "copy", Path: name, Err: err}
	}
	return s.WriteFile(name, data)
}

// ReplaceDir removes the destination tree and copies name from src in its
// place. The result never merges with a previous tree.
func (s *FS) ReplaceDir(src fs.FS, name string) error {
	name = clean(name)
	if name == "." {
		return &WriteError{Op: "replace", Path: name, Err: errors.New("refusing to replace sink root")}
	}
	if _, err := fs.Stat(src, name); err != nil {
		return &WriteError{Op: "replace", Path: name, Err: err}
	}
	if err := util.RemoveAll(s.fs, name); err != nil {
		return &WriteError{Op: "remove", Path: name, Err: err}
	}

	return fs.WalkDir(src, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return &WriteError{Op: "replace", Path: p, Err: err}
		}
		if d.IsDir() {
			return s.MkdirAll(p)
		}
		return s.CopyFile(src, p)
	})
}

func clean(name string) string {
	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
