package ast

import (
	"fmt"
	"strings"

	"github.com/chazu/jsxbin/decode"
)

// DefaultIndent is the indentation unit of rendered source.
const DefaultIndent = "    "

// DefaultUnresolved is the placeholder pattern for names whose id was never
// defined; %s receives the id.
const DefaultUnresolved = "__unresolved_%s"

// Printer accumulates rendered source text.
type Printer struct {
	sb         strings.Builder
	indent     string
	level      int
	unresolved string
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithIndent sets the indentation unit.
func WithIndent(indent string) PrinterOption {
	return func(p *Printer) { p.indent = indent }
}

// WithUnresolved sets the placeholder pattern for unresolved names.
func WithUnresolved(pattern string) PrinterOption {
	return func(p *Printer) {
		if pattern != "" {
			p.unresolved = pattern
		}
	}
}

// NewPrinter creates a Printer.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{indent: DefaultIndent, unresolved: DefaultUnresolved}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Source renders n to source text.
func Source(n Node, opts ...PrinterOption) string {
	if n == nil {
		return ""
	}
	p := NewPrinter(opts...)
	if _, ok := n.(Statement); ok {
		p.Statement(n)
	} else {
		n.Render(p)
	}
	return p.String()
}

// String returns everything written so far.
func (p *Printer) String() string { return p.sb.String() }

// Write appends raw text.
func (p *Printer) Write(s string) { p.sb.WriteString(s) }

// Writef appends formatted text.
func (p *Printer) Writef(format string, args ...any) {
	fmt.Fprintf(&p.sb, format, args...)
}

func (p *Printer) newline() {
	p.sb.WriteByte('\n')
	for i := 0; i < p.level; i++ {
		p.sb.WriteString(p.indent)
	}
}

// Name writes a resolved name or the unresolved placeholder.
func (p *Printer) Name(n Name) {
	if n.Unresolved {
		p.Writef(p.unresolved, n.ID)
		return
	}
	p.Write(n.Text)
}

// Expr renders an expression inline. A nil node renders nothing.
func (p *Printer) Expr(n Node) {
	if n != nil {
		n.Render(p)
	}
}

// ExprOr renders n, or the literal's source text when n is nil.
func (p *Printer) ExprOr(n Node, literal string) {
	if n != nil {
		n.Render(p)
		return
	}
	p.Write(literal)
}

// Operand renders an operand, parenthesized when it is itself a compound
// expression.
func (p *Printer) Operand(n Node) {
	if needsParens(n) {
		p.Write("(")
		n.Render(p)
		p.Write(")")
		return
	}
	p.Expr(n)
}

func needsParens(n Node) bool {
	switch n.(type) {
	case *BinaryExpr, *LogicalExpr, *TernaryExpr, *AssignmentExpr,
		*MemberAssignmentExpr, *CommaExpr, *FunctionExpr:
		return true
	}
	return false
}

// Object renders the object of a member access, index or call. Besides
// compound expressions this parenthesizes unary and update expressions and
// number literals, which would otherwise bind differently: (typeof x).length,
// (-1).toFixed().
func (p *Printer) Object(n Node) {
	if needsParens(n) || needsObjectParens(n) {
		p.Write("(")
		n.Render(p)
		p.Write(")")
		return
	}
	p.Expr(n)
}

func needsObjectParens(n Node) bool {
	switch v := n.(type) {
	case *UnaryExpr, *DeleteExpr, *VoidExpr, *IncrementExpr, *IndexingIncrementExpr:
		return true
	case *ValueNode:
		return v.Value.Kind == decode.VariantNumber
	}
	return false
}

// capture renders fn into a separate buffer with the same settings and
// returns the text.
func (p *Printer) capture(fn func(q *Printer)) string {
	q := &Printer{indent: p.indent, level: p.level, unresolved: p.unresolved}
	fn(q)
	return q.String()
}

// List renders nodes separated by ", ".
func (p *Printer) List(nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			p.Write(", ")
		}
		p.Expr(n)
	}
}

// Statement renders one statement; bare expressions get a semicolon.
func (p *Printer) Statement(n Node) {
	if n == nil {
		p.Write(";")
		return
	}
	if l, ok := n.(Lined); ok {
		p.labels(l.LineInfo())
	}
	n.Render(p)
	if _, ok := n.(Statement); !ok {
		p.Write(";")
	}
}

func (p *Printer) labels(li *LineInfo) {
	for _, label := range li.Labels {
		p.Name(label)
		p.Write(": ")
	}
}

// Statements renders a statement sequence, one per line, at the current
// indentation. The first statement starts at the current position.
func (p *Printer) Statements(nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			p.newline()
		}
		p.Statement(n)
	}
}

// Block renders "{", the statements indented one level, and "}".
func (p *Printer) Block(nodes []Node) {
	if len(nodes) == 0 {
		p.Write("{}")
		return
	}
	p.Write("{")
	p.level++
	p.newline()
	p.Statements(nodes)
	p.level--
	p.newline()
	p.Write("}")
}

// Body renders a loop or branch body as a block. A StatementList supplies
// its statements directly; any other node is wrapped.
func (p *Printer) Body(n Node) {
	switch b := n.(type) {
	case nil:
		p.Write("{}")
	case *StatementList:
		p.Block(b.Statements)
	default:
		p.Block([]Node{n})
	}
}

// Indented runs fn one level deeper, starting on a fresh line.
func (p *Printer) Indented(fn func()) {
	p.level++
	p.newline()
	fn()
	p.level--
}

// Newline starts a new line at the current indentation.
func (p *Printer) Newline() { p.newline() }
