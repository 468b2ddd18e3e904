package ast

import (
	"github.com/chazu/jsxbin/internal/jsxbintest"
	"github.com/chazu/jsxbin/scan"
)

// enc is a small builder on top of the test encoder with node helpers.
type enc struct {
	*jsxbintest.Encoder
}

func newEnc() *enc { return &enc{jsxbintest.New()} }

func (e *enc) tag(t Tag) *enc {
	e.Tag(byte(t))
	return e
}

func (e *enc) empty() *enc { return e.tag(TagEmpty) }

// line writes a line-info record with no body and no labels.
func (e *enc) line(n int) *enc {
	e.Num(n)
	e.empty()
	e.Num(0)
	return e
}

// defID writes an IdNode defining name under id (V20: with flag).
func (e *enc) defID(name string, id int, declared bool) *enc {
	e.tag(TagIdNode)
	e.Def(name, id).Bool(false).Bool(declared)
	return e
}

// useID writes an IdNode referencing id.
func (e *enc) useID(id int) *enc {
	e.tag(TagIdNode)
	e.Use(id).Bool(false).Bool(false)
	return e
}

// num writes a ValueNode holding a number.
func (e *enc) num(n int) *enc {
	e.tag(TagValueNode)
	e.VarNum(n)
	return e
}

func (e *enc) state() *scan.State {
	return scan.New(e.Bytes(), scan.V20)
}

func (e *enc) decode() Node {
	return Decode(e.state())
}
