package adapter

import (
	"context"

	m "cmock.dev/pkg/cmock/internal/model"
)

// SymbolRenamer applies a rename-map file to an object file in place.
type SymbolRenamer interface {
	// RedefineSymbols renames every symbol listed in mapFile ("old new" per
	// line) inside file.
	RedefineSymbols(ctx context.Context, file m.Path, mapFile m.Path) error
}

// ObjcopyRenamer renames symbols by running binutils objcopy.
type ObjcopyRenamer struct {
	runner CommandRunner
	tool   string
}

// NewObjcopyRenamer constructs an ObjcopyRenamer. An empty tool defaults to "objcopy".
func NewObjcopyRenamer(runner CommandRunner, tool string) *ObjcopyRenamer {
	if tool == "" {
		tool = "objcopy"
	}

	return &ObjcopyRenamer{runner: runner, tool: tool}
}

// RedefineSymbols runs `objcopy --redefine-syms=<mapFile> <file>`.
func (a *ObjcopyRenamer) RedefineSymbols(ctx context.Context, file m.Path, mapFile m.Path) error {
	_, err := a.runner.Run(ctx, a.tool, "--redefine-syms="+string(mapFile), string(file))
	return err
}
