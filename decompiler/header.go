package decompiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chazu/jsxbin/scan"
)

// Magic is the prefix of every JSXBIN envelope. The version and a closing
// '@' follow it: @JSXBIN@ES@2.0@.
const Magic = "@JSXBIN@ES@"

var (
	ErrMissingHeader = errors.New("missing @JSXBIN@ES@ header")
	ErrCorruptHeader = errors.New("corrupt jsxbin header")
)

// Header is the parsed envelope of a JSXBIN text.
type Header struct {
	Version scan.Version
	Raw     string // version text as written, e.g. "2.0"
	Offset  int    // position of the magic in the input
}

// ParseHeader locates the envelope in text and returns it together with the
// encoded body that follows. The envelope may be embedded in a script, as
// in eval("@JSXBIN@ES@2.0@..."); the body then ends at the closing quote.
func ParseHeader(text string) (Header, string, error) {
	start := strings.Index(text, Magic)
	if start < 0 {
		return Header{}, "", ErrMissingHeader
	}

	rest := text[start+len(Magic):]
	end := strings.IndexByte(rest, '@')
	if end < 0 {
		return Header{}, "", fmt.Errorf("%w: unterminated version", ErrCorruptHeader)
	}

	h := Header{Raw: rest[:end], Offset: start}
	v, err := scan.ParseVersion(h.Raw)
	if err != nil {
		return Header{}, "", err
	}
	h.Version = v

	body := rest[end+1:]
	if start > 0 {
		if q := text[start-1]; q == '"' || q == '\'' {
			if i := strings.IndexByte(body, q); i >= 0 {
				body = body[:i]
			}
		}
	}
	return h, body, nil
}

// Normalize removes line breaks, backslash continuations and whitespace that
// editors and exporters insert into long JSXBIN strings.
func Normalize(body string) []byte {
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\n', '\r', '\t', ' ', '\\':
		default:
			out = append(out, c)
		}
	}
	return out
}
