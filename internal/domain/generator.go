package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cmock.dev/pkg/cmock/internal/adapter"
	"cmock.dev/pkg/cmock/internal/domain/header"
	m "cmock.dev/pkg/cmock/internal/model"
)

const proxyExtension = ".cpp"

// ProxyGenerator turns headers declaring mockable classes into proxy sources.
type ProxyGenerator interface {
	// ScanHeader parses one header. The boolean is false when the header
	// declares no mockable class.
	ScanHeader(ctx context.Context, headerPath, outDir m.Path) (m.ProxySource, bool, error)

	// GenerateProxies writes a proxy source to outDir for every header that
	// declares a mockable class and returns the written paths in input order.
	GenerateProxies(ctx context.Context, headers []m.Path, outDir m.Path) ([]m.Path, error)

	// ProxyOutputs returns the paths GenerateProxies would write, without
	// touching the disk.
	ProxyOutputs(ctx context.Context, headers []m.Path, outDir m.Path) ([]m.Path, error)
}

type proxyGenerator struct {
	adapter.SourceFSAdapter
}

// NewProxyGenerator constructs a ProxyGenerator reading and writing through fsAdapter.
func NewProxyGenerator(fsAdapter adapter.SourceFSAdapter) ProxyGenerator {
	return &proxyGenerator{SourceFSAdapter: fsAdapter}
}

func (g *proxyGenerator) ScanHeader(ctx context.Context, headerPath, outDir m.Path) (m.ProxySource, bool, error) {
	src, err := g.ReadFile(ctx, headerPath)
	if err != nil {
		slog.Error("Failed to read header", "file", headerPath, "error", err)
		return m.ProxySource{}, false, &m.IOError{Op: "read header", Path: headerPath, Err: err}
	}

	classes, err := header.Parse(src)
	if err != nil {
		var syntaxErr *header.SyntaxError
		if errors.As(err, &syntaxErr) {
			return m.ProxySource{}, false, &m.ParseError{Path: headerPath, Line: syntaxErr.Line, Msg: syntaxErr.Msg}
		}

		return m.ProxySource{}, false, &m.ParseError{Path: headerPath, Msg: err.Error()}
	}

	if len(classes) == 0 {
		slog.Debug("No mockable class in header", "file", headerPath)
		return m.ProxySource{}, false, nil
	}

	base := filepath.Base(string(headerPath))
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return m.ProxySource{
		Header:  headerPath,
		Output:  g.JoinPath(ctx, string(outDir), name+proxyExtension),
		Classes: classes,
	}, true, nil
}

func (g *proxyGenerator) GenerateProxies(ctx context.Context, headers []m.Path, outDir m.Path) ([]m.Path, error) {
	sources, err := g.scanAll(ctx, headers, outDir)
	if err != nil {
		return nil, err
	}

	if len(sources) == 0 {
		return nil, nil
	}

	if err := g.MkdirAll(ctx, outDir); err != nil {
		return nil, &m.IOError{Op: "create output directory", Path: outDir, Err: err}
	}

	written := make([]m.Path, 0, len(sources))

	for _, source := range sources {
		content, err := RenderProxy(filepath.Base(string(source.Header)), source.Classes)
		if err != nil {
			return nil, fmt.Errorf("render proxy for %s: %w", source.Header, err)
		}

		if err := g.WriteFile(ctx, source.Output, content, 0o644); err != nil {
			slog.Error("Failed to write proxy source", "file", source.Output, "error", err)
			return nil, &m.IOError{Op: "write proxy source", Path: source.Output, Err: err}
		}

		slog.Info("Generated proxy source", "header", source.Header, "output", source.Output, "methods", source.MethodCount())
		written = append(written, source.Output)
	}

	return written, nil
}

func (g *proxyGenerator) ProxyOutputs(ctx context.Context, headers []m.Path, outDir m.Path) ([]m.Path, error) {
	sources, err := g.scanAll(ctx, headers, outDir)
	if err != nil {
		return nil, err
	}

	outputs := make([]m.Path, 0, len(sources))
	for _, source := range sources {
		outputs = append(outputs, source.Output)
	}

	return outputs, nil
}

// scanAll scans every header and rejects two headers mapping to the same output.
func (g *proxyGenerator) scanAll(ctx context.Context, headers []m.Path, outDir m.Path) ([]m.ProxySource, error) {
	var sources []m.ProxySource

	owners := make(map[m.Path]m.Path, len(headers))

	for _, headerPath := range headers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		source, ok, err := g.ScanHeader(ctx, headerPath, outDir)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		if owner, taken := owners[source.Output]; taken {
			if owner == headerPath {
				continue
			}

			return nil, fmt.Errorf("headers %s and %s both map to %s", owner, headerPath, source.Output)
		}

		owners[source.Output] = headerPath
		sources = append(sources, source)
	}

	return sources, nil
}
