package domain

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"cmock.dev/pkg/cmock/internal/adapter"
	m "cmock.dev/pkg/cmock/internal/model"
)

// RenameMapExtractor builds rename maps from generated proxy sources.
type RenameMapExtractor interface {
	// CollectProxyFunctions returns the function names of every proxy line
	// found in sources.
	CollectProxyFunctions(ctx context.Context, sources []m.Path) (m.SymbolSet, error)

	// WriteRenameMap collects the proxy functions of sources and writes their
	// rename map to out.
	WriteRenameMap(ctx context.Context, sources []m.Path, out m.Path) (m.RenameMap, error)
}

type renameMapExtractor struct {
	adapter.SourceFSAdapter
	prefix string
}

// NewRenameMapExtractor constructs a RenameMapExtractor.
func NewRenameMapExtractor(fsAdapter adapter.SourceFSAdapter, prefix string) RenameMapExtractor {
	return &renameMapExtractor{
		SourceFSAdapter: fsAdapter,
		prefix:          prefix,
	}
}

func (e *renameMapExtractor) CollectProxyFunctions(ctx context.Context, sources []m.Path) (m.SymbolSet, error) {
	names := m.NewSymbolSet()

	for _, source := range sources {
		content, err := e.ReadFile(ctx, source)
		if err != nil {
			slog.Error("Failed to read proxy source", "file", source, "error", err)
			return nil, &m.IOError{Op: "read proxy source", Path: source, Err: err}
		}

		found, err := proxyFunctions(source, content)
		if err != nil {
			return nil, err
		}

		slog.Debug("Collected proxy functions", "file", source, "count", len(found))
		names.Add(found...)
	}

	return names, nil
}

func (e *renameMapExtractor) WriteRenameMap(ctx context.Context, sources []m.Path, out m.Path) (m.RenameMap, error) {
	names, err := e.CollectProxyFunctions(ctx, sources)
	if err != nil {
		return nil, err
	}

	renames := m.NewRenameMap(names, e.prefix)

	content, err := RenderRenameMap(renames)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(string(out)); dir != "." {
		if err := e.MkdirAll(ctx, m.Path(dir)); err != nil {
			return nil, &m.IOError{Op: "create directory for", Path: out, Err: err}
		}
	}

	if err := e.WriteFile(ctx, out, content, 0o644); err != nil {
		slog.Error("Failed to write rename map", "file", out, "error", err)
		return nil, &m.IOError{Op: "write rename map", Path: out, Err: err}
	}

	slog.Info("Wrote rename map", "file", out, "entries", len(renames))

	return renames, nil
}

// proxyFunctions scans content line by line for proxy macro invocations.
func proxyFunctions(source m.Path, content []byte) ([]m.Symbol, error) {
	var names []m.Symbol

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		name, ok, msg := proxyFunctionName(scanner.Text())
		if msg != "" {
			return nil, &m.ParseError{Path: source, Line: lineNo, Msg: msg}
		}

		if ok {
			names = append(names, m.Symbol(name))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &m.IOError{Op: "scan proxy source", Path: source, Err: err}
	}

	return names, nil
}

// proxyFunctionName returns the third argument of the proxy macro on line.
// A non-empty message reports a malformed invocation.
func proxyFunctionName(line string) (string, bool, string) {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return "", false, ""
	}

	at := strings.Index(line, ProxyFunctionMacro)
	macro := ProxyFunctionMacro

	if at < 0 {
		at = strings.Index(line, ProxyConstFunctionMacro)
		macro = ProxyConstFunctionMacro
	}

	if at < 0 {
		return "", false, ""
	}

	rest := line[at+len(macro):]

	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return "", false, macro + " without an argument list"
	}

	fields := splitTopLevel(rest[open+1:])
	if len(fields) < 3 {
		return "", false, macro + " needs at least three arguments"
	}

	name := strings.TrimSpace(fields[2])
	if name == "" || strings.ContainsAny(name, " \t()") {
		return "", false, "invalid function name " + strings.TrimSpace(fields[2]) + " in " + macro
	}

	return name, true, ""
}

// splitTopLevel splits s at commas outside brackets, stopping at the bracket
// closing the argument list.
func splitTopLevel(s string) []string {
	var fields []string

	depth, start := 0, 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth == 0 {
				return append(fields, s[start:i])
			}

			depth--
		case ',':
			if depth == 0 {
				fields = append(fields, s[start:i])
				start = i + 1
			}
		}
	}

	return append(fields, s[start:])
}
