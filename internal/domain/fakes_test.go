package domain_test

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	m "cmock.dev/pkg/cmock/internal/model"
)

type fakeObject struct {
	defined   []m.Symbol
	undefined []m.Symbol
}

// fakeInspector is an in-memory symbol table keyed by object path.
type fakeInspector struct {
	mu      sync.Mutex
	objects map[m.Path]*fakeObject
	fail    map[m.Path]error
}

func newFakeInspector() *fakeInspector {
	return &fakeInspector{
		objects: map[m.Path]*fakeObject{},
		fail:    map[m.Path]error{},
	}
}

func (f *fakeInspector) addObject(path m.Path, defined, undefined []string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	obj := &fakeObject{}
	for _, name := range defined {
		obj.defined = append(obj.defined, m.Symbol(name))
	}

	for _, name := range undefined {
		obj.undefined = append(obj.undefined, m.Symbol(name))
	}

	f.objects[path] = obj
}

func (f *fakeInspector) lookup(ctx context.Context, file m.Path) (*fakeObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := f.fail[file]; err != nil {
		return nil, err
	}

	obj, ok := f.objects[file]
	if !ok {
		return nil, fmt.Errorf("%s: no such file", file)
	}

	return obj, nil
}

func (f *fakeInspector) DefinedTextSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	obj, err := f.lookup(ctx, file)
	if err != nil {
		return nil, err
	}

	return append([]m.Symbol(nil), obj.defined...), nil
}

func (f *fakeInspector) UndefinedSymbols(ctx context.Context, file m.Path) ([]m.Symbol, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	obj, err := f.lookup(ctx, file)
	if err != nil {
		return nil, err
	}

	return append([]m.Symbol(nil), obj.undefined...), nil
}

// fakeRenamer applies rename maps to the symbol tables of a fakeInspector,
// the way objcopy --redefine-syms rewrites an object file.
type fakeRenamer struct {
	inspector *fakeInspector

	mu    sync.Mutex
	calls []m.Path
	maps  map[m.Path]string
	fail  map[m.Path]error
}

func newFakeRenamer(inspector *fakeInspector) *fakeRenamer {
	return &fakeRenamer{
		inspector: inspector,
		maps:      map[m.Path]string{},
		fail:      map[m.Path]error{},
	}
}

func (r *fakeRenamer) RedefineSymbols(_ context.Context, file, mapFile m.Path) error {
	content, err := os.ReadFile(string(mapFile))
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.calls = append(r.calls, file)
	r.maps[file] = string(content)
	failure := r.fail[file]
	r.mu.Unlock()

	if failure != nil {
		return failure
	}

	renames := map[m.Symbol]m.Symbol{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return fmt.Errorf("bad rename line %q", scanner.Text())
		}

		renames[m.Symbol(fields[0])] = m.Symbol(fields[1])
	}

	r.inspector.mu.Lock()
	defer r.inspector.mu.Unlock()

	obj := r.inspector.objects[file]
	for i, name := range obj.undefined {
		if to, ok := renames[name]; ok {
			obj.undefined[i] = to
		}
	}

	return nil
}

func (r *fakeRenamer) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

func symbols(names ...string) m.SymbolSet {
	set := m.NewSymbolSet()
	for _, name := range names {
		set.Add(m.Symbol(name))
	}

	return set
}
