package domain

import (
	"context"
	"log/slog"

	"cmock.dev/pkg/cmock/internal/adapter"
	m "cmock.dev/pkg/cmock/internal/model"
)

const reroutedFilePattern = "cmock-rerouted-*.txt"

// Rewriter renames undefined references of an object file to their mock symbols.
type Rewriter interface {
	// Rewrite renames every name in names to prefix+name inside target.
	// An empty set leaves the file alone without invoking the renamer.
	Rewrite(ctx context.Context, target m.Path, names m.SymbolSet) error
}

type rewriter struct {
	fsAdapter adapter.SourceFSAdapter
	renamer   adapter.SymbolRenamer
	prefix    string
	tempDir   string
}

// NewRewriter constructs a Rewriter. Rename maps are written to tempDir, or
// to the system temp directory when tempDir is empty.
func NewRewriter(fsAdapter adapter.SourceFSAdapter, renamer adapter.SymbolRenamer, prefix, tempDir string) Rewriter {
	return &rewriter{
		fsAdapter: fsAdapter,
		renamer:   renamer,
		prefix:    prefix,
		tempDir:   tempDir,
	}
}

func (r *rewriter) Rewrite(ctx context.Context, target m.Path, names m.SymbolSet) error {
	if names.Len() == 0 {
		slog.Debug("Nothing to reroute", "file", target)
		return nil
	}

	content, err := RenderRenameMap(m.NewRenameMap(names, r.prefix))
	if err != nil {
		return err
	}

	mapFile, err := r.fsAdapter.CreateTemp(ctx, r.tempDir, reroutedFilePattern, content)
	if err != nil {
		slog.Error("Failed to write rename map", "file", target, "error", err)
		return &m.IOError{Op: "write rename map for", Path: target, Err: err}
	}

	defer r.removeMapFile(ctx, mapFile)

	if err := r.renamer.RedefineSymbols(ctx, target, mapFile); err != nil {
		slog.Error("Failed to redefine symbols", "file", target, "map", mapFile, "error", err)
		return &m.RewriteError{Path: target, Err: err}
	}

	return nil
}

func (r *rewriter) removeMapFile(ctx context.Context, mapFile m.Path) {
	if err := r.fsAdapter.Remove(ctx, mapFile); err != nil {
		slog.Error("Failed to remove rename map", "map", mapFile, "error", err)
	}
}
