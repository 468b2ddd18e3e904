package ast

import (
	"github.com/chazu/jsxbin/decode"
	"github.com/chazu/jsxbin/scan"
)

// ---------------------------------------------------------------------------
// E4X expressions
// ---------------------------------------------------------------------------

// XMLLiteralExpr is an inline XML literal, rendered verbatim.
type XMLLiteralExpr struct {
	Text string
}

func (n *XMLLiteralExpr) Tag() Tag              { return TagXMLLiteralExpr }
func (n *XMLLiteralExpr) Children() []Node      { return nil }
func (n *XMLLiteralExpr) decode(st *scan.State) { n.Text = decode.String(st) }
func (n *XMLLiteralExpr) Render(p *Printer)     { p.Write(n.Text) }

// XMLAccessorExpr is child or attribute access: xml.child, xml.@attr.
type XMLAccessorExpr struct {
	Object    Node
	Member    Node
	Attribute bool
}

func (n *XMLAccessorExpr) Tag() Tag         { return TagXMLAccessorExpr }
func (n *XMLAccessorExpr) Children() []Node { return nonNil(n.Object, n.Member) }

func (n *XMLAccessorExpr) decode(st *scan.State) {
	n.Object = Decode(st)
	n.Member = Decode(st)
	n.Attribute = decode.Bool(st)
}

func (n *XMLAccessorExpr) Render(p *Printer) {
	p.Object(n.Object)
	p.Write(".")
	if n.Attribute {
		p.Write("@")
	}
	p.Expr(n.Member)
}

// XMLDescendantsExpr is the descendants accessor: xml..name.
type XMLDescendantsExpr struct {
	Object Node
	Name   Name
	Flag   bool
}

func (n *XMLDescendantsExpr) Tag() Tag         { return TagXMLDescendantsExpr }
func (n *XMLDescendantsExpr) Children() []Node { return nonNil(n.Object) }

func (n *XMLDescendantsExpr) decode(st *scan.State) {
	n.Object = Decode(st)
	ref := decode.Ref(st)
	n.Name = refName(st, ref, false)
	n.Flag = ref.Flag
}

func (n *XMLDescendantsExpr) Render(p *Printer) {
	p.Object(n.Object)
	p.Write("..")
	p.Name(n.Name)
}

// XMLNamespaceExpr is a qualified name: xml.ns::id, or ns::id without an
// object.
type XMLNamespaceExpr struct {
	Namespace Name
	Flag      bool
	Object    Node
	XMLID     string
}

func (n *XMLNamespaceExpr) Tag() Tag         { return TagXMLNamespaceExpr }
func (n *XMLNamespaceExpr) Children() []Node { return nonNil(n.Object) }

func (n *XMLNamespaceExpr) decode(st *scan.State) {
	ref := decode.Ref(st)
	n.Namespace = refName(st, ref, false)
	n.Flag = ref.Flag
	n.Object = Decode(st)
	n.XMLID = decode.String(st)
}

func (n *XMLNamespaceExpr) Render(p *Printer) {
	if n.Object != nil {
		p.Object(n.Object)
		p.Write(".")
	}
	p.Name(n.Namespace)
	p.Write("::" + n.XMLID)
}

// XMLQueryExpr is a filtering predicate: xml.(predicate).
type XMLQueryExpr struct {
	Object    Node
	Predicate Node
}

func (n *XMLQueryExpr) Tag() Tag         { return TagXMLQueryExpr }
func (n *XMLQueryExpr) Children() []Node { return nonNil(n.Object, n.Predicate) }

func (n *XMLQueryExpr) decode(st *scan.State) {
	n.Object = Decode(st)
	n.Predicate = Decode(st)
}

func (n *XMLQueryExpr) Render(p *Printer) {
	p.Object(n.Object)
	p.Write(".(")
	p.Expr(n.Predicate)
	p.Write(")")
}
