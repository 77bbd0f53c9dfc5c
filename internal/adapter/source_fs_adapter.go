// Package adapter contains infrastructure adapters for the cmock CLI: file
// system access, external binutils and report persistence.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "cmock.dev/pkg/cmock/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on. It hides direct `os` access so the workflow logic can be
// tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// CreateTemp writes content to a new, uniquely named file in dir (the
	// system temp dir when empty) and returns its path.
	CreateTemp(ctx context.Context, dir, pattern string, content []byte) (m.Path, error)

	// Remove deletes a single file.
	Remove(ctx context.Context, path m.Path) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - paths are supplied by the build system invoking cmock
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// CreateTemp writes content to a fresh temp file and returns its path. The
// file is removed again if the write fails.
func (a *LocalSourceFSAdapter) CreateTemp(ctx context.Context, dir, pattern string, content []byte) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}

	path := f.Name()

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return "", err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return m.Path(path), nil
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(_ context.Context, path m.Path) error {
	return os.Remove(string(path))
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
