package decode

// ---------------------------------------------------------------------------
// Frozen marker bytes of the JSXBIN encoding.
//
// IMPORTANT: these values are part of the format produced by the closed
// compiler and must match bit for bit.
// ---------------------------------------------------------------------------

const (
	MarkerIDReference byte = 0x7A // 'z': identifier definition (name + id follow)
	MarkerNegative    byte = 0x79 // 'y': next literal number is negative
	MarkerNumber8     byte = 0x38 // '8': 8 raw bytes follow (IEEE-754 double)
	MarkerNumber4     byte = 0x34 // '4': 4 raw bytes follow (uint32)
	MarkerNumber2     byte = 0x32 // '2': 2 raw bytes follow (uint16)
	MarkerTrue        byte = 0x74 // 't'
	MarkerFalse       byte = 0x66 // 'f'
)

// Variant selectors, relative to 'a'.
const (
	selectorNull     = 0
	selectorNullAlt  = 1
	selectorBool     = 2
	selectorNumber   = 3
	selectorString   = 4
	selectorAbsent   = 13
	variantTagOrigin = 'a'
)

// rawAlphabet is the single-character range of the raw byte encoding.
// Position in the alphabet is the decoded value.
const rawAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef"

// pairBase is the first character of a two-character raw byte. Its offset
// from pairBase selects a band of 32.
const pairBase = 'g'

// Parameters are the signature entries whose encoded id falls strictly
// between these bounds; every other entry is a local variable.
const (
	parameterWindowLow  = 0x1ffffc70
	parameterWindowHigh = 0x202fbf00
)
