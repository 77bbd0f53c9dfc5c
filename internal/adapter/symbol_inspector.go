package adapter

import (
	"bufio"
	"context"
	"debug/elf"
	"errors"
	"fmt"
	"strings"

	m "cmock.dev/pkg/cmock/internal/model"
)

// Inspector backend names accepted by NewSymbolInspector.
const (
	InspectorNm  = "nm"
	InspectorELF = "elf"
)

// SymbolInspector lists symbols of an object file without modifying it.
type SymbolInspector interface {
	// DefinedTextSymbols returns every global symbol defined in a text
	// section of the file.
	DefinedTextSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error)

	// UndefinedSymbols returns every symbol the file references but does not define.
	UndefinedSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error)
}

// NewSymbolInspector selects an inspector backend by name.
func NewSymbolInspector(kind string, runner CommandRunner, nmTool string) (SymbolInspector, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", InspectorNm:
		return NewNmInspector(runner, nmTool), nil
	case InspectorELF:
		return NewELFInspector(), nil
	}

	return nil, fmt.Errorf("unknown symbol inspector %q (want %q or %q)", kind, InspectorNm, InspectorELF)
}

// NmInspector lists symbols by running binutils nm.
type NmInspector struct {
	runner CommandRunner
	tool   string
}

// NewNmInspector constructs an NmInspector. An empty tool defaults to "nm".
func NewNmInspector(runner CommandRunner, tool string) *NmInspector {
	if tool == "" {
		tool = "nm"
	}

	return &NmInspector{runner: runner, tool: tool}
}

// DefinedTextSymbols runs `nm --defined-only` and keeps type T entries.
func (a *NmInspector) DefinedTextSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error) {
	out, err := a.runner.Run(ctx, a.tool, "--defined-only", string(file))
	if err != nil {
		return nil, err
	}

	return parseNmOutput(out, func(kind string) bool { return kind == "T" }), nil
}

// UndefinedSymbols runs `nm --undefined-only` and keeps every entry.
func (a *NmInspector) UndefinedSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error) {
	out, err := a.runner.Run(ctx, a.tool, "--undefined-only", string(file))
	if err != nil {
		return nil, err
	}

	return parseNmOutput(out, func(string) bool { return true }), nil
}

// parseNmOutput reads lines of the form "[value] type name". Archive member
// headers ("foo.o:") and blank lines are skipped.
func parseNmOutput(out string, keep func(kind string) bool) []m.Symbol {
	var symbols []m.Symbol

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		kind := fields[len(fields)-2]
		if !keep(kind) {
			continue
		}

		symbols = append(symbols, m.Symbol(fields[len(fields)-1]))
	}

	return symbols
}

// ELFInspector reads ELF symbol tables in process with debug/elf.
type ELFInspector struct{}

// NewELFInspector constructs an ELFInspector.
func NewELFInspector() *ELFInspector {
	return &ELFInspector{}
}

// DefinedTextSymbols returns global symbols defined in executable sections,
// the entries nm prints with type T.
func (a *ELFInspector) DefinedTextSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error) {
	var symbols []m.Symbol

	err := a.visit(ctx, file, func(f *elf.File, sym elf.Symbol) {
		if sym.Section == elf.SHN_UNDEF || sym.Section >= elf.SHN_LORESERVE {
			return
		}

		if elf.ST_BIND(sym.Info) != elf.STB_GLOBAL {
			return
		}

		if int(sym.Section) >= len(f.Sections) {
			return
		}

		if f.Sections[sym.Section].Flags&elf.SHF_EXECINSTR == 0 {
			return
		}

		symbols = append(symbols, m.Symbol(sym.Name))
	})

	return symbols, err
}

// UndefinedSymbols returns every named SHN_UNDEF symbol, weak references included.
func (a *ELFInspector) UndefinedSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error) {
	var symbols []m.Symbol

	err := a.visit(ctx, file, func(_ *elf.File, sym elf.Symbol) {
		if sym.Section != elf.SHN_UNDEF || sym.Name == "" {
			return
		}

		symbols = append(symbols, m.Symbol(sym.Name))
	})

	return symbols, err
}

func (a *ELFInspector) visit(ctx context.Context, file m.Path, fn func(*elf.File, elf.Symbol)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := elf.Open(string(file))
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	syms, err := f.Symbols()
	if err != nil {
		if errors.Is(err, elf.ErrNoSymbols) {
			return nil
		}

		return err
	}

	for _, sym := range syms {
		fn(f, sym)
	}

	return nil
}
