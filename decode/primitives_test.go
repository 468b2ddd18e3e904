package decode

import (
	"testing"

	"github.com/chazu/jsxbin/internal/jsxbintest"
	"github.com/chazu/jsxbin/scan"
)

func newState(e *jsxbintest.Encoder) *scan.State {
	return scan.New(e.Bytes(), scan.V20)
}

func TestByteSingleCharacter(t *testing.T) {
	for v := 0; v < 32; v++ {
		st := scan.New([]byte{rawAlphabet[v]}, scan.V20)
		if got := Byte(st); int(got) != v {
			t.Errorf("Byte(%q) = %d, want %d", rawAlphabet[v], got, v)
		}
		if st.Offset() != 1 {
			t.Errorf("Byte(%q) consumed %d bytes, want 1", rawAlphabet[v], st.Offset())
		}
	}
}

func TestBytePairs(t *testing.T) {
	tests := []struct {
		in   string
		want byte
	}{
		{"gA", 0},
		{"hA", 32},
		{"hB", 33},
		{"mD", 0xC3},
		{"nf", 255},
		{"oA", 0}, // 256 wraps
		{"oB", 1},
		{"of", 31},
	}
	for _, tt := range tests {
		st := scan.New([]byte(tt.in), scan.V20)
		if got := Byte(st); got != tt.want {
			t.Errorf("Byte(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestByteRoundTripAllValues(t *testing.T) {
	for v := 0; v < 256; v++ {
		st := newState(jsxbintest.New().Byte(byte(v)))
		if got := Byte(st); int(got) != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}

func TestNumberPrimitive(t *testing.T) {
	tests := []struct {
		name     string
		enc      *jsxbintest.Encoder
		length   int
		negative bool
		want     string
	}{
		{"uint16", jsxbintest.New().Byte(0x34).Byte(0x12), 2, false, "4660"},
		{"uint16 negative", jsxbintest.New().Byte(0x34).Byte(0x12), 2, true, "-4660"},
		{"uint32", jsxbintest.New().Byte(0x78).Byte(0x56).Byte(0x34).Byte(0x12), 4, false, "305419896"},
		{"uint32 max", jsxbintest.New().Byte(0xFF).Byte(0xFF).Byte(0xFF).Byte(0xFF), 4, false, "4294967295"},
		// 1.5 = 0x3FF8000000000000
		{"double", jsxbintest.New().Byte(0).Byte(0).Byte(0).Byte(0).Byte(0).Byte(0).Byte(0xF8).Byte(0x3F), 8, false, "1.5"},
		{"double negative", jsxbintest.New().Byte(0).Byte(0).Byte(0).Byte(0).Byte(0).Byte(0).Byte(0xF8).Byte(0x3F), 8, true, "-1.5"},
		{"bad length", jsxbintest.New(), 3, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberPrimitive(newState(tt.enc), tt.length, tt.negative)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		enc  *jsxbintest.Encoder
		want string
	}{
		{"single byte", jsxbintest.New().Num(7), "7"},
		{"two byte", jsxbintest.New().Num2(5), "5"},
		{"four byte", jsxbintest.New().Num(100000), "100000"},
		{"negative byte", jsxbintest.New().Num(-3), "-3"},
		{"negative two byte", jsxbintest.New().Num(-1000), "-1000"},
		{"double", jsxbintest.New().Double(0.1), "0.1"},
		{"empty", jsxbintest.New(), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(newState(tt.enc)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLiteralCharLatin1(t *testing.T) {
	st := newState(jsxbintest.New().Byte(0xE9))
	if got := LiteralChar(st); got != "é" {
		t.Errorf("LiteralChar(0xE9) = %q, want %q", got, "é")
	}
	if got := latin1(0xC3); got != "\xc3\x83" {
		t.Errorf("latin1(0xC3) = % x, want c3 83", got)
	}
}

func TestBool(t *testing.T) {
	if !Bool(scan.New([]byte("t"), scan.V20)) {
		t.Error("Bool('t') = false")
	}
	if Bool(scan.New([]byte("f"), scan.V20)) {
		t.Error("Bool('f') = true")
	}
	st := scan.New([]byte("Q"), scan.V20)
	if Bool(st) {
		t.Error("Bool('Q') should default to false")
	}
	if st.Offset() != 1 {
		t.Errorf("malformed marker should still be consumed, offset = %d", st.Offset())
	}
}

func TestStringZeroLength(t *testing.T) {
	st := newState(jsxbintest.New().Num(0).Raw('X', 'Y'))
	if got := String(st); got != "" {
		t.Errorf("String = %q, want empty", got)
	}
	if st.Offset() != 1 {
		t.Errorf("offset after empty string = %d, want 1", st.Offset())
	}
}

func TestStringLatin1(t *testing.T) {
	st := newState(jsxbintest.New().Num(3).Byte(0x41).Byte(0xC3).Byte(0x09))
	got := String(st)
	if got != "AÃ\t" {
		t.Errorf("String = %q, want %q", got, "AÃ\t")
	}
	if q := Quote(got); q != `"AÃ\t"` {
		t.Errorf("Quote = %s, want %s", q, `"AÃ\t"`)
	}
}
