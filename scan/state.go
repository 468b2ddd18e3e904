// Package scan holds the decode session state for a JSXBIN stream: the
// byte cursor, the format version, the recursion budget and the symbol
// table. One State serves exactly one decode and is not safe for
// concurrent use.
package scan

import (
	"errors"

	"github.com/tliron/commonlog"
)

// ---------------------------------------------------------------------------
// Limits
// ---------------------------------------------------------------------------

// DefaultDepthBudget is the number of guarded decode calls a session may
// make before every further decode short-circuits to its neutral value.
const DefaultDepthBudget = 1 << 24

// DefaultNestingLimit bounds how deeply node decodes may nest.
const DefaultNestingLimit = 4096

// ErrUnexpectedEOF is recorded when a read runs past the end of the buffer.
var ErrUnexpectedEOF = errors.New("unexpected end of jsxbin data")

var log = commonlog.GetLogger("jsxbin.scan")

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// State is the cursor over a fully materialized JSXBIN body.
type State struct {
	data    []byte // borrowed, never written
	offset  int
	version Version

	budget    int
	exhausted bool
	nesting   int
	maxNest   int

	symbols    *SymbolTable
	unblind    bool
	unresolved int

	err error // sticky, first read past the end
}

// Option configures a State.
type Option func(*State)

// WithDepthBudget sets the recursion budget. Values < 1 keep the default.
func WithDepthBudget(n int) Option {
	return func(s *State) {
		if n > 0 {
			s.budget = n
		}
	}
}

// WithNestingLimit sets the maximum node nesting. Values < 1 keep the default.
func WithNestingLimit(n int) Option {
	return func(s *State) {
		if n > 0 {
			s.maxNest = n
		}
	}
}

// WithUnblind asks node decoders to replace names that are not valid
// identifiers with generated ones.
func WithUnblind(on bool) Option {
	return func(s *State) { s.unblind = on }
}

// New creates a State over data.
func New(data []byte, version Version, opts ...Option) *State {
	s := &State{
		data:    data,
		version: version,
		budget:  DefaultDepthBudget,
		maxNest: DefaultNestingLimit,
		symbols: NewSymbolTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Version returns the declared format version.
func (s *State) Version() Version { return s.version }

// Unblind reports whether generated names replace invalid identifiers.
func (s *State) Unblind() bool { return s.unblind }

// Offset returns the current read position.
func (s *State) Offset() int { return s.offset }

// Len returns the size of the buffer.
func (s *State) Len() int { return len(s.data) }

// Remaining returns the number of unread bytes.
func (s *State) Remaining() int {
	if s.offset >= len(s.data) {
		return 0
	}
	return len(s.data) - s.offset
}

// Err returns ErrUnexpectedEOF once a read went past the end, else nil.
func (s *State) Err() error { return s.err }

// ---------------------------------------------------------------------------
// Cursor
// ---------------------------------------------------------------------------

// Pop returns the next byte and advances. Past the end it returns 0 and
// records ErrUnexpectedEOF.
func (s *State) Pop() byte {
	if s.offset >= len(s.data) {
		s.markEOF()
		return 0
	}
	b := s.data[s.offset]
	s.offset++
	return b
}

// Peek returns the byte offset positions ahead without advancing.
func (s *State) Peek(offset int) byte {
	i := s.offset + offset
	if i < 0 || i >= len(s.data) {
		return 0
	}
	return s.data[i]
}

// Step advances one byte without reading it.
func (s *State) Step() {
	if s.offset >= len(s.data) {
		s.markEOF()
		return
	}
	s.offset++
}

func (s *State) markEOF() {
	if s.err == nil {
		s.err = ErrUnexpectedEOF
		log.Debugf("read past end of data at offset %d", s.offset)
	}
}

// ---------------------------------------------------------------------------
// Recursion guard
// ---------------------------------------------------------------------------

// DecrementDepth consumes one unit of the budget. It returns true, meaning
// "abort and return the neutral value", once the budget is spent or the
// cursor has run past the end of the data.
func (s *State) DecrementDepth() bool {
	if s.exhausted || s.err != nil {
		return true
	}
	if s.budget <= 0 {
		s.exhausted = true
		log.Noticef("recursion budget exhausted at offset %d", s.offset)
		return true
	}
	s.budget--
	return false
}

// Exhausted reports whether decoding can no longer make progress, either
// because the budget is spent or the data ran out.
func (s *State) Exhausted() bool {
	return s.exhausted || s.err != nil
}

// BudgetExhausted reports whether the recursion budget tripped.
func (s *State) BudgetExhausted() bool { return s.exhausted }

// Enter records entry into a nested node decode. It returns false when the
// nesting limit is reached; the caller must not call Leave in that case.
func (s *State) Enter() bool {
	if s.nesting >= s.maxNest {
		if !s.exhausted {
			log.Noticef("node nesting limit %d reached at offset %d", s.maxNest, s.offset)
		}
		s.exhausted = true
		return false
	}
	s.nesting++
	return true
}

// Leave undoes a successful Enter.
func (s *State) Leave() {
	if s.nesting > 0 {
		s.nesting--
	}
}

// ---------------------------------------------------------------------------
// Symbol table
// ---------------------------------------------------------------------------

// AddSymbol binds id to name. Rebinding an existing id is ignored.
func (s *State) AddSymbol(id, name string) {
	if !s.symbols.Add(id, name) {
		log.Debugf("symbol %s already bound, keeping first binding", id)
	}
}

// Symbol resolves a previously bound id. An unbound id yields an error
// wrapping ErrUnresolvedSymbol.
func (s *State) Symbol(id string) (string, error) {
	name, err := s.symbols.Lookup(id)
	if err != nil {
		s.unresolved++
	}
	return name, err
}

// Unresolved returns how many lookups failed so far.
func (s *State) Unresolved() int { return s.unresolved }

// Symbols returns the symbol table.
func (s *State) Symbols() *SymbolTable { return s.symbols }
