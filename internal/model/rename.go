package model

// RenameEntry maps a plain symbol to the prefixed mock symbol that replaces it.
type RenameEntry struct {
	From Symbol
	To   Symbol
}

// RenameMap is the ordered list of renames applied to a single object file.
type RenameMap []RenameEntry

// NewRenameMap builds the plain -> prefix+plain mapping for names, sorted by
// plain name so the rendered file is deterministic.
func NewRenameMap(names SymbolSet, prefix string) RenameMap {
	sorted := names.Sorted()
	renames := make(RenameMap, 0, len(sorted))

	for _, name := range sorted {
		renames = append(renames, RenameEntry{
			From: name,
			To:   Symbol(prefix) + name,
		})
	}

	return renames
}
