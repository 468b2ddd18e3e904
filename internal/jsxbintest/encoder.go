// Package jsxbintest builds synthetic JSXBIN byte streams for tests. It
// writes the same markers and raw byte alphabet the decoders read.
package jsxbintest

import (
	"encoding/binary"
	"math"
)

const rawAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef"

// Encoder accumulates an encoded stream.
type Encoder struct {
	buf []byte
}

// New returns an empty encoder.
func New() *Encoder {
	return &Encoder{buf: make([]byte, 0, 64)}
}

// Bytes returns the encoded stream.
func (e *Encoder) Bytes() []byte { return e.buf }

// Raw appends bytes verbatim (tags, markers).
func (e *Encoder) Raw(b ...byte) *Encoder {
	e.buf = append(e.buf, b...)
	return e
}

// Tag appends a node tag.
func (e *Encoder) Tag(t byte) *Encoder { return e.Raw(t) }

// Byte appends one raw byte in the one- or two-character form.
func (e *Encoder) Byte(b byte) *Encoder {
	if b < 32 {
		return e.Raw(rawAlphabet[b])
	}
	return e.Raw('g'+b/32, rawAlphabet[b%32])
}

// Pair appends a two-character raw byte with an explicit band character.
func (e *Encoder) Pair(first, second byte) *Encoder {
	return e.Raw(first, second)
}

// Num appends a literal number using the narrowest form.
func (e *Encoder) Num(n int) *Encoder {
	if n < 0 {
		e.Raw('y')
		n = -n
	}
	switch {
	case n < 256:
		return e.Byte(byte(n))
	case n < 1<<16:
		e.Raw('2')
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		return e.Byte(b[0]).Byte(b[1])
	default:
		e.Raw('4')
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		for _, x := range b {
			e.Byte(x)
		}
		return e
	}
}

// Num2 appends a literal number in the explicit 2-byte form.
func (e *Encoder) Num2(n uint16) *Encoder {
	e.Raw('2')
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], n)
	return e.Byte(b[0]).Byte(b[1])
}

// Double appends an 8-byte IEEE-754 number.
func (e *Encoder) Double(f float64) *Encoder {
	e.Raw('8')
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	for _, x := range b {
		e.Byte(x)
	}
	return e
}

// Str appends a length-prefixed Latin-1 string. Runes above 0xFF are
// truncated to their low byte.
func (e *Encoder) Str(s string) *Encoder {
	runes := []rune(s)
	e.Num(len(runes))
	for _, r := range runes {
		e.Byte(byte(r))
	}
	return e
}

// Bool appends a boolean marker.
func (e *Encoder) Bool(v bool) *Encoder {
	if v {
		return e.Raw('t')
	}
	return e.Raw('f')
}

// Def appends an identifier definition.
func (e *Encoder) Def(name string, id int) *Encoder {
	return e.Raw('z').Str(name).Num(id)
}

// Use appends an identifier back-reference.
func (e *Encoder) Use(id int) *Encoder {
	return e.Num(id)
}

// Null appends a null variant.
func (e *Encoder) Null() *Encoder { return e.Raw('b') }

// Absent appends the no-value variant.
func (e *Encoder) Absent() *Encoder { return e.Raw('n') }

// VarBool appends a boolean variant.
func (e *Encoder) VarBool(v bool) *Encoder { return e.Raw('c').Bool(v) }

// VarNum appends a number variant with a literal number.
func (e *Encoder) VarNum(n int) *Encoder { return e.Raw('d').Num(n) }

// VarDouble appends a number variant with an 8-byte double.
func (e *Encoder) VarDouble(f float64) *Encoder { return e.Raw('d').Double(f) }

// VarStr appends a string variant.
func (e *Encoder) VarStr(s string) *Encoder { return e.Raw('e').Str(s) }
