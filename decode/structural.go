package decode

import (
	"strconv"

	"github.com/chazu/jsxbin/scan"
)

// Length decodes a literal number and returns its absolute value.
func Length(st *scan.State) int {
	n := atoi(Literal(st))
	if n < 0 {
		return -n
	}
	return n
}

// Ident decodes an identifier. The 'z' marker introduces a definition:
// name and id follow and the binding is added to the symbol table. Any
// other byte starts a use, an id resolved against earlier definitions.
// An unresolved use returns the id text and an error wrapping
// scan.ErrUnresolvedSymbol.
func Ident(st *scan.State) (name, id string, err error) {
	if st.DecrementDepth() {
		return "", "", nil
	}

	if st.Peek(0) != MarkerIDReference {
		id = strconv.Itoa(Length(st))
		name, err = st.Symbol(id)
		if err != nil {
			log.Warningf("offset %d: %v", st.Offset(), err)
			return "", id, err
		}
		return name, id, nil
	}

	st.Step()
	name = String(st)
	id = strconv.Itoa(Length(st))
	st.AddSymbol(id, name)
	return name, id, nil
}

// Reference is an identifier together with the flag that follows it in
// version 2.0 streams.
type Reference struct {
	ID         string
	Name       string
	Flag       bool
	Unresolved bool
}

// Ref decodes an identifier and, for V20 and later, the extra flag.
func Ref(st *scan.State) Reference {
	name, id, err := Ident(st)
	ref := Reference{ID: id, Name: name, Unresolved: err != nil}
	if st.Version().AtLeast(scan.V20) {
		ref.Flag = Bool(st)
	}
	return ref
}

// SignatureEntry is one name of a function signature with its encoded id.
type SignatureEntry struct {
	Name       string
	SymbolID   string
	ID         int
	Unresolved bool
}

// Signature is a decoded function signature. Parameters and locals come
// from one record stream, split by the encoded id.
type Signature struct {
	Parameters []SignatureEntry
	LocalVars  []SignatureEntry
	Header1    int
	Type       int
	Header3    int
	Name       string
	NameID     string
	Header5    int

	// NameUnresolved is set when the function name referenced an id that
	// was never defined.
	NameUnresolved bool
}

// ParameterNames returns the parameter names in decode order.
func (s *Signature) ParameterNames() []string {
	out := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		out[i] = p.Name
	}
	return out
}

// IsParameterID reports whether an encoded signature id denotes a
// parameter. The window was found empirically and is kept verbatim.
func IsParameterID(id int) bool {
	return id > parameterWindowLow && id < parameterWindowHigh
}

// FunctionSignature decodes the parameter/local list followed by the five
// fixed header fields.
func FunctionSignature(st *scan.State) Signature {
	var sig Signature

	n := Length(st)
	for i := 0; i < n && !st.Exhausted(); i++ {
		name, symbolID, err := Ident(st)
		entry := SignatureEntry{Name: name, SymbolID: symbolID, Unresolved: err != nil}
		entry.ID = Length(st)
		if IsParameterID(entry.ID) {
			sig.Parameters = upsert(sig.Parameters, entry)
		} else {
			sig.LocalVars = upsert(sig.LocalVars, entry)
		}
	}

	sig.Header1 = Length(st)
	sig.Type = Length(st)
	sig.Header3 = Length(st)
	var err error
	sig.Name, sig.NameID, err = Ident(st)
	sig.NameUnresolved = err != nil
	sig.Header5 = LiteralNum(st)
	return sig
}

// upsert keeps one entry per name; a repeated name updates the id in place.
// Unresolved entries have no name and are kept apart by symbol id.
func upsert(entries []SignatureEntry, e SignatureEntry) []SignatureEntry {
	for i := range entries {
		if entries[i].Unresolved != e.Unresolved {
			continue
		}
		same := entries[i].Name == e.Name
		if e.Unresolved {
			same = entries[i].SymbolID == e.SymbolID
		}
		if same {
			entries[i].ID = e.ID
			return entries
		}
	}
	return append(entries, e)
}
