package model

import "sort"

// Symbol is a function name as it appears in an object file's symbol table.
type Symbol string

// SymbolSet is an unordered set of symbol names.
type SymbolSet map[Symbol]struct{}

// NewSymbolSet builds a set from the given names, dropping duplicates.
func NewSymbolSet(names ...Symbol) SymbolSet {
	set := make(SymbolSet, len(names))
	set.Add(names...)

	return set
}

// Add inserts names into the set.
func (s SymbolSet) Add(names ...Symbol) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// Has reports whether name is in the set.
func (s SymbolSet) Has(name Symbol) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s SymbolSet) Len() int {
	return len(s)
}

// Union adds every name of other to s.
func (s SymbolSet) Union(other SymbolSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// Intersect returns a new set holding the names present in both s and other.
func (s SymbolSet) Intersect(other SymbolSet) SymbolSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(SymbolSet)

	for name := range small {
		if large.Has(name) {
			out[name] = struct{}{}
		}
	}

	return out
}

// IsSubsetOf reports whether every name of s is also in other.
func (s SymbolSet) IsSubsetOf(other SymbolSet) bool {
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}

	return true
}

// Equal reports whether both sets hold exactly the same names.
func (s SymbolSet) Equal(other SymbolSet) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Sorted returns the names in lexical order.
func (s SymbolSet) Sorted() []Symbol {
	names := make([]Symbol, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})

	return names
}
