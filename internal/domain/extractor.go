package domain

import (
	"context"
	"log/slog"
	"strings"

	"cmock.dev/pkg/cmock/internal/adapter"
	m "cmock.dev/pkg/cmock/internal/model"
)

// DefaultPrefix distinguishes mock implementations from the real functions.
const DefaultPrefix = "proxy_"

// SymbolExtractor lists the function symbols the reroute step works with.
type SymbolExtractor interface {
	// DefinedFunctions returns the global text symbols of file that carry the
	// mock prefix, with the prefix stripped.
	DefinedFunctions(ctx context.Context, file m.Path) (m.SymbolSet, error)

	// UndefinedFunctions returns every symbol file references but does not define.
	UndefinedFunctions(ctx context.Context, file m.Path) (m.SymbolSet, error)
}

type symbolExtractor struct {
	inspector adapter.SymbolInspector
	prefix    string
}

// NewSymbolExtractor constructs a SymbolExtractor backed by inspector.
func NewSymbolExtractor(inspector adapter.SymbolInspector, prefix string) SymbolExtractor {
	return &symbolExtractor{
		inspector: inspector,
		prefix:    prefix,
	}
}

func (e *symbolExtractor) DefinedFunctions(ctx context.Context, file m.Path) (m.SymbolSet, error) {
	symbols, err := e.inspector.DefinedTextSymbols(ctx, file)
	if err != nil {
		slog.Error("Failed to list defined symbols", "file", file, "error", err)
		return nil, &m.ExtractionError{Path: file, Err: err}
	}

	defined := m.NewSymbolSet()

	for _, symbol := range symbols {
		name, ok := strings.CutPrefix(string(symbol), e.prefix)
		if !ok || name == "" {
			continue
		}

		defined.Add(m.Symbol(name))
	}

	slog.Debug("Listed mock functions", "file", file, "count", defined.Len())

	return defined, nil
}

func (e *symbolExtractor) UndefinedFunctions(ctx context.Context, file m.Path) (m.SymbolSet, error) {
	symbols, err := e.inspector.UndefinedSymbols(ctx, file)
	if err != nil {
		slog.Error("Failed to list undefined symbols", "file", file, "error", err)
		return nil, &m.ExtractionError{Path: file, Err: err}
	}

	undefined := m.NewSymbolSet(symbols...)
	slog.Debug("Listed undefined symbols", "file", file, "count", undefined.Len())

	return undefined, nil
}
