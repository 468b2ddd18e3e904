package decode

import (
	"strings"

	"github.com/chazu/jsxbin/scan"
)

// VariantKind tags the value held by a Variant.
type VariantKind int

const (
	VariantAbsent VariantKind = iota
	VariantNull
	VariantBool
	VariantNumber
	VariantString
	VariantInvalid
)

var variantKindNames = [...]string{
	VariantAbsent:  "absent",
	VariantNull:    "null",
	VariantBool:    "bool",
	VariantNumber:  "number",
	VariantString:  "string",
	VariantInvalid: "invalid",
}

func (k VariantKind) String() string {
	if int(k) < len(variantKindNames) {
		return variantKindNames[k]
	}
	return "unknown"
}

// Variant is a self-tagged scalar. Numbers are kept as decimal text since
// some encoded magnitudes do not survive a float round trip.
type Variant struct {
	Kind VariantKind
	Bool bool
	Text string // number text or raw (unescaped) string value
}

// Present reports whether the variant carries a value.
func (v Variant) Present() bool {
	return v.Kind != VariantAbsent && v.Kind != VariantInvalid
}

// Source renders the variant as source text: null, true/false, the number
// text, or a double-quoted escaped string. Absent and invalid variants
// render as "".
func (v Variant) Source() string {
	switch v.Kind {
	case VariantNull:
		return "null"
	case VariantBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VariantNumber:
		return v.Text
	case VariantString:
		return Quote(v.Text)
	}
	return ""
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Quote escapes backslash, double quote, newline, tab and carriage return
// and wraps s in double quotes.
func Quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// DecodeVariant reads one selector byte and the value it announces.
func DecodeVariant(st *scan.State) Variant {
	if st.DecrementDepth() {
		return Variant{Kind: VariantAbsent}
	}

	tag := st.Pop()
	switch selector := tag - variantTagOrigin; selector {
	case selectorNull, selectorNullAlt:
		return Variant{Kind: VariantNull}
	case selectorBool:
		return Variant{Kind: VariantBool, Bool: Bool(st)}
	case selectorNumber:
		return Variant{Kind: VariantNumber, Text: Number(st)}
	case selectorString:
		return Variant{Kind: VariantString, Text: String(st)}
	case selectorAbsent:
		return Variant{Kind: VariantAbsent}
	default:
		if !st.Exhausted() {
			log.Warningf("unexpected variant tag %q at offset %d", tag, st.Offset()-1)
		}
		return Variant{Kind: VariantInvalid}
	}
}

// VariantSource decodes a variant and returns its source text.
func VariantSource(st *scan.State) string {
	return DecodeVariant(st).Source()
}
