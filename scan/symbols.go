package scan

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnresolvedSymbol is returned when a back-reference names an id that
// was never defined earlier in the stream.
var ErrUnresolvedSymbol = errors.New("unresolved symbol")

// Symbol is one binding of the symbol table.
type Symbol struct {
	ID   string `cbor:"id" yaml:"id"`
	Name string `cbor:"name" yaml:"name"`
}

// SymbolTable maps the textual numeric id of an identifier to its name.
// Bindings are append-only: once an id is bound it is never rebound.
type SymbolTable struct {
	names map[string]string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{names: make(map[string]string)}
}

// Add binds id to name. It reports false when id was already bound, in
// which case the existing binding is kept.
func (t *SymbolTable) Add(id, name string) bool {
	if _, ok := t.names[id]; ok {
		return false
	}
	t.names[id] = name
	return true
}

// Lookup returns the name bound to id.
func (t *SymbolTable) Lookup(id string) (string, error) {
	name, ok := t.names[id]
	if !ok {
		return "", fmt.Errorf("%w: id %s", ErrUnresolvedSymbol, id)
	}
	return name, nil
}

// Len returns the number of bindings.
func (t *SymbolTable) Len() int {
	return len(t.names)
}

// Snapshot returns all bindings ordered by numeric id.
func (t *SymbolTable) Snapshot() []Symbol {
	out := make([]Symbol, 0, len(t.names))
	for id, name := range t.names {
		out = append(out, Symbol{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].ID)
		b, errB := strconv.Atoi(out[j].ID)
		if errA != nil || errB != nil {
			return out[i].ID < out[j].ID
		}
		return a < b
	})
	return out
}
