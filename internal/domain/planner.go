package domain

import (
	"context"
	"log/slog"

	m "cmock.dev/pkg/cmock/internal/model"
)

// Planner decides which undefined references of an object file get rerouted.
type Planner interface {
	// BuildRegistry unions the mock functions defined by every mock file.
	BuildRegistry(ctx context.Context, mockFiles []m.Path) (m.SymbolSet, error)

	// Plan returns the undefined symbols of target that have a mock in registry.
	Plan(ctx context.Context, target m.Path, registry m.SymbolSet) (m.SymbolSet, error)
}

type planner struct {
	SymbolExtractor
}

// NewPlanner constructs a Planner on top of extractor.
func NewPlanner(extractor SymbolExtractor) Planner {
	return &planner{SymbolExtractor: extractor}
}

func (p *planner) BuildRegistry(ctx context.Context, mockFiles []m.Path) (m.SymbolSet, error) {
	registry := m.NewSymbolSet()

	for _, file := range mockFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		defined, err := p.DefinedFunctions(ctx, file)
		if err != nil {
			return nil, err
		}

		registry.Union(defined)
	}

	return registry, nil
}

// Plan only looks at undefined references. A name the target defines itself
// is never listed as undefined, so it is never rerouted.
func (p *planner) Plan(ctx context.Context, target m.Path, registry m.SymbolSet) (m.SymbolSet, error) {
	undefined, err := p.UndefinedFunctions(ctx, target)
	if err != nil {
		return nil, err
	}

	names := undefined.Intersect(registry)
	slog.Debug("Planned reroute", "file", target, "undefined", undefined.Len(), "rerouted", names.Len())

	return names, nil
}
