// Package decode implements the primitive and structural decoders of the
// JSXBIN format. Every function reads from a *scan.State, consults the
// recursion guard first and returns a best-effort value; none of them
// panic on malformed input.
package decode

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chazu/jsxbin/scan"
	"github.com/tliron/commonlog"
	"golang.org/x/text/encoding/charmap"
)

var log = commonlog.GetLogger("jsxbin.decode")

// literalKind selects how the single-byte fallback of Literal is rendered.
type literalKind int

const (
	literalNumber literalKind = iota
	literalChar
)

// Byte decodes one raw byte. A character of rawAlphabet maps to its
// position (0-31). Any other character starts a pair: its distance from
// 'g' selects a band of 32 and the second character's alphabet position
// is added, with 8-bit wraparound.
func Byte(st *scan.State) byte {
	if st.DecrementDepth() {
		return 0
	}

	cur := st.Pop()
	if i := strings.IndexByte(rawAlphabet, cur); i >= 0 {
		return byte(i)
	}

	band := (int(cur) - pairBase) * 32
	second := strings.IndexByte(rawAlphabet, st.Pop())
	// A second character outside the alphabet contributes -1.
	return byte(band + second)
}

// NumberPrimitive reads length raw bytes and reinterprets them as a
// little-endian uint16 (2), uint32 (4) or float64 (8). The textual result
// is negated when negative is set. Unknown lengths yield "".
func NumberPrimitive(st *scan.State, length int, negative bool) string {
	if length != 2 && length != 4 && length != 8 {
		return ""
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = Byte(st)
	}

	switch length {
	case 2:
		v := int64(binary.LittleEndian.Uint16(buf))
		if negative {
			v = -v
		}
		return strconv.FormatInt(v, 10)
	case 4:
		v := int64(binary.LittleEndian.Uint32(buf))
		if negative {
			v = -v
		}
		return strconv.FormatInt(v, 10)
	default:
		f := math.Float64frombits(binary.LittleEndian.Uint64(buf))
		if negative {
			f = -f
		}
		return FormatDouble(f)
	}
}

// FormatDouble renders a float64 as source text with full precision.
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// literal decodes a sign marker, then a 4-byte number, a 2-byte number or
// a single raw byte.
func literal(st *scan.State, kind literalKind) string {
	if st.DecrementDepth() {
		return ""
	}

	negative := false
	if st.Peek(0) == MarkerNegative {
		negative = true
		st.Step()
	}

	switch st.Peek(0) {
	case MarkerNumber4:
		st.Step()
		return NumberPrimitive(st, 4, negative)
	case MarkerNumber2:
		st.Step()
		return NumberPrimitive(st, 2, negative)
	}

	b := Byte(st)
	if negative {
		return strconv.Itoa(-int(b))
	}
	if kind == literalNumber {
		return strconv.Itoa(int(b))
	}
	return latin1(b)
}

// latin1 converts one ISO-8859-1 byte to its UTF-8 encoding.
func latin1(b byte) string {
	r := charmap.ISO8859_1.DecodeByte(b)
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return string(buf[:n])
}

// Literal decodes a literal primitive as a number and returns its text.
func Literal(st *scan.State) string {
	return literal(st, literalNumber)
}

// LiteralChar decodes a literal primitive as one Latin-1 character,
// returned as UTF-8.
func LiteralChar(st *scan.State) string {
	return literal(st, literalChar)
}

// LiteralNum decodes a literal number as an int; the empty result is 0.
func LiteralNum(st *scan.State) int {
	return atoi(Literal(st))
}

// Number decodes a general numeric field: an 8-byte double when the
// marker says so, else a literal number. The empty result is "0".
func Number(st *scan.State) string {
	var num string
	if st.Peek(0) == MarkerNumber8 {
		st.Step()
		num = NumberPrimitive(st, 8, false)
	} else {
		num = Literal(st)
	}
	if num == "" {
		return "0"
	}
	return num
}

// Bool decodes a boolean marker. Anything other than 't'/'f' is logged and
// decodes as false.
func Bool(st *scan.State) bool {
	if st.DecrementDepth() {
		return false
	}
	switch marker := st.Pop(); marker {
	case MarkerTrue:
		return true
	case MarkerFalse:
		return false
	default:
		if !st.Exhausted() {
			log.Warningf("unexpected boolean marker 0x%02X at offset %d", marker, st.Offset()-1)
		}
		return false
	}
}

// String decodes a length-prefixed Latin-1 string into UTF-8. A zero
// length reads nothing further.
func String(st *scan.State) string {
	if st.DecrementDepth() {
		return ""
	}

	length := atoi(Literal(st))
	if length <= 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < length && !st.Exhausted(); i++ {
		sb.WriteString(LiteralChar(st))
	}
	return sb.String()
}

// atoi parses decimal text; empty or malformed text is 0.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
