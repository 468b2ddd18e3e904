package ast

import (
	"strings"

	"github.com/chazu/jsxbin/decode"
	"github.com/chazu/jsxbin/scan"
)

// ---------------------------------------------------------------------------
// Lists and literals
// ---------------------------------------------------------------------------

// ArgumentList is the argument list of a call.
type ArgumentList struct {
	Arguments []Node
}

func (n *ArgumentList) Tag() Tag              { return TagArgumentList }
func (n *ArgumentList) Children() []Node      { return n.Arguments }
func (n *ArgumentList) decode(st *scan.State) { n.Arguments = DecodeChildren(st) }
func (n *ArgumentList) Render(p *Printer)     { p.List(n.Arguments) }

// ArrayExpr is an array literal.
type ArrayExpr struct {
	Elements []Node
}

func (n *ArrayExpr) Tag() Tag              { return TagArrayExpr }
func (n *ArrayExpr) Children() []Node      { return n.Elements }
func (n *ArrayExpr) decode(st *scan.State) { n.Elements = DecodeChildren(st) }

func (n *ArrayExpr) Render(p *Printer) {
	p.Write("[")
	p.List(n.Elements)
	p.Write("]")
}

// CommaExpr is a comma-separated expression sequence.
type CommaExpr struct {
	Expressions []Node
}

func (n *CommaExpr) Tag() Tag              { return TagCommaExpr }
func (n *CommaExpr) Children() []Node      { return n.Expressions }
func (n *CommaExpr) decode(st *scan.State) { n.Expressions = DecodeChildren(st) }
func (n *CommaExpr) Render(p *Printer)     { p.List(n.Expressions) }

// ValueNode is a scalar literal.
type ValueNode struct {
	Value decode.Variant
}

func (n *ValueNode) Tag() Tag              { return TagValueNode }
func (n *ValueNode) Children() []Node      { return nil }
func (n *ValueNode) decode(st *scan.State) { n.Value = decode.DecodeVariant(st) }
func (n *ValueNode) Render(p *Printer)     { p.Write(n.Value.Source()) }

// RegExpLiteral is a regular expression literal.
type RegExpLiteral struct {
	Pattern string
	Flags   string
}

func (n *RegExpLiteral) Tag() Tag         { return TagRegExpLiteral }
func (n *RegExpLiteral) Children() []Node { return nil }

func (n *RegExpLiteral) decode(st *scan.State) {
	n.Pattern = decode.String(st)
	n.Flags = decode.String(st)
}

func (n *RegExpLiteral) Render(p *Printer) {
	p.Write("/" + n.Pattern + "/" + n.Flags)
}

// ObjectProperty is one key/value pair of an object literal.
type ObjectProperty struct {
	Key   Name
	Value Node
}

// ObjectExpr is an object literal.
type ObjectExpr struct {
	Properties []ObjectProperty
}

func (n *ObjectExpr) Tag() Tag { return TagObjectExpr }

func (n *ObjectExpr) Children() []Node {
	out := make([]Node, 0, len(n.Properties))
	for _, prop := range n.Properties {
		if prop.Value != nil {
			out = append(out, prop.Value)
		}
	}
	return out
}

func (n *ObjectExpr) decode(st *scan.State) {
	count := decode.Length(st)
	for i := 0; i < count && !st.Exhausted(); i++ {
		key := decodeName(st, false)
		n.Properties = append(n.Properties, ObjectProperty{Key: key, Value: Decode(st)})
	}
}

func (n *ObjectExpr) Render(p *Printer) {
	if len(n.Properties) == 0 {
		p.Write("{}")
		return
	}
	p.Write("{")
	for i, prop := range n.Properties {
		if i > 0 {
			p.Write(", ")
		}
		switch {
		case prop.Key.Unresolved:
			p.Name(prop.Key)
		case ValidIdentifier(prop.Key.Text), IsInteger(prop.Key.Text):
			p.Write(prop.Key.Text)
		default:
			p.Write(decode.Quote(prop.Key.Text))
		}
		p.Write(": ")
		p.Expr(prop.Value)
	}
	p.Write("}")
}

// ThisExpr is the this keyword.
type ThisExpr struct{}

func (n *ThisExpr) Tag() Tag              { return TagThisExpr }
func (n *ThisExpr) Children() []Node      { return nil }
func (n *ThisExpr) decode(st *scan.State) {}
func (n *ThisExpr) Render(p *Printer)     { p.Write("this") }

// ---------------------------------------------------------------------------
// Names and member access
// ---------------------------------------------------------------------------

// IdNode is a variable reference, optionally a var declaration.
type IdNode struct {
	Name     Name
	Flag     bool
	Declared bool
}

func (n *IdNode) Tag() Tag         { return TagIdNode }
func (n *IdNode) Children() []Node { return nil }

func (n *IdNode) decode(st *scan.State) {
	ref := decode.Ref(st)
	n.Name = refName(st, ref, true)
	n.Flag = ref.Flag
	n.Declared = decode.Bool(st)
}

func (n *IdNode) Render(p *Printer) {
	if n.Declared {
		p.Write("var ")
	}
	p.Name(n.Name)
}

// IdRefExpr is a member access by name: obj.name.
type IdRefExpr struct {
	Member Name
	Flag   bool
	Object Node
}

func (n *IdRefExpr) Tag() Tag         { return TagIdRefExpr }
func (n *IdRefExpr) Children() []Node { return nonNil(n.Object) }

func (n *IdRefExpr) decode(st *scan.State) {
	ref := decode.Ref(st)
	n.Member = refName(st, ref, false)
	n.Flag = ref.Flag
	n.Object = Decode(st)
}

func (n *IdRefExpr) Render(p *Printer) {
	p.Object(n.Object)
	renderMember(p, n.Object != nil, n.Member)
}

// renderMember writes ".name", "[3]" or `["odd name"]`.
func renderMember(p *Printer, hasObject bool, m Name) {
	switch {
	case m.Unresolved:
		p.Write("[")
		p.Name(m)
		p.Write("]")
	case IsInteger(m.Text):
		p.Write("[" + m.Text + "]")
	case ValidIdentifier(m.Text):
		if hasObject {
			p.Write(".")
		}
		p.Write(m.Text)
	default:
		p.Write("[" + decode.Quote(m.Text) + "]")
	}
}

// IndexingExpr is a computed member access: obj[index].
type IndexingExpr struct {
	Object Node
	Index  Node
}

func (n *IndexingExpr) Tag() Tag         { return TagIndexingExpr }
func (n *IndexingExpr) Children() []Node { return nonNil(n.Object, n.Index) }

func (n *IndexingExpr) decode(st *scan.State) {
	n.Object = Decode(st)
	n.Index = Decode(st)
}

func (n *IndexingExpr) Render(p *Printer) {
	p.Object(n.Object)
	p.Write("[")
	p.Expr(n.Index)
	p.Write("]")
}

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

// AssignmentExpr assigns to a variable. Declared assignments render with
// var; shorthand assignments whose value is a binary expression on the same
// target render as compound assignment (x += y).
type AssignmentExpr struct {
	Target    Node
	Value     Node
	Literal   decode.Variant
	Shorthand bool
	Declared  bool
}

func (n *AssignmentExpr) Tag() Tag         { return TagAssignmentExpr }
func (n *AssignmentExpr) Children() []Node { return nonNil(n.Target, n.Value) }

func (n *AssignmentExpr) decode(st *scan.State) {
	n.Target = Decode(st)
	n.Value = Decode(st)
	n.Literal = decode.DecodeVariant(st)
	n.Shorthand = decode.Bool(st)
	n.Declared = decode.Bool(st)
}

func (n *AssignmentExpr) Render(p *Printer) {
	if id, ok := n.Target.(*IdNode); n.Declared || (ok && id.Declared) {
		p.Write("var ")
	}
	renderAssignment(p, n.Target, n.Value, n.Literal, n.Shorthand)
}

func renderAssignment(p *Printer, target, value Node, literal decode.Variant, shorthand bool) {
	if id, ok := target.(*IdNode); ok {
		p.Name(id.Name)
	} else {
		p.Expr(target)
	}

	if bin, ok := value.(*BinaryExpr); ok && shorthand {
		p.Write(" " + bin.Op.Text + "= ")
		p.ExprOr(bin.Right, bin.RightLiteral.Source())
		return
	}
	p.Write(" = ")
	p.ExprOr(value, literal.Source())
}

// MemberAssignmentExpr assigns to a member or indexed target.
type MemberAssignmentExpr struct {
	Target    Node
	Value     Node
	Literal   decode.Variant
	Shorthand bool
}

func (n *MemberAssignmentExpr) Tag() Tag         { return TagMemberAssignmentExpr }
func (n *MemberAssignmentExpr) Children() []Node { return nonNil(n.Target, n.Value) }

func (n *MemberAssignmentExpr) decode(st *scan.State) {
	n.Target = Decode(st)
	n.Value = Decode(st)
	n.Literal = decode.DecodeVariant(st)
	n.Shorthand = decode.Bool(st)
}

func (n *MemberAssignmentExpr) Render(p *Printer) {
	renderAssignment(p, n.Target, n.Value, n.Literal, n.Shorthand)
}

// BinaryExpr is an arithmetic, comparison or bitwise operation. An absent
// operand node is replaced by its literal.
type BinaryExpr struct {
	Op           Name
	Left         Node
	Right        Node
	LeftLiteral  decode.Variant
	RightLiteral decode.Variant
}

func (n *BinaryExpr) Tag() Tag         { return TagBinaryExpr }
func (n *BinaryExpr) Children() []Node { return nonNil(n.Left, n.Right) }

func (n *BinaryExpr) decode(st *scan.State) {
	n.Op = decodeName(st, false)
	n.Left = Decode(st)
	n.Right = Decode(st)
	n.LeftLiteral = decode.DecodeVariant(st)
	n.RightLiteral = decode.DecodeVariant(st)
}

func (n *BinaryExpr) Render(p *Printer) {
	renderInfix(p, n.Op, n.Left, n.Right, n.LeftLiteral, n.RightLiteral)
}

func renderInfix(p *Printer, op Name, left, right Node, leftLit, rightLit decode.Variant) {
	if left != nil {
		p.Operand(left)
	} else {
		p.Write(leftLit.Source())
	}
	p.Write(" ")
	p.Name(op)
	p.Write(" ")
	if right != nil {
		p.Operand(right)
	} else {
		p.Write(rightLit.Source())
	}
}

// LogicalExpr is a short-circuit && or || expression.
type LogicalExpr struct {
	Op           Name
	Left         Node
	Right        Node
	LeftLiteral  decode.Variant
	RightLiteral decode.Variant
}

func (n *LogicalExpr) Tag() Tag         { return TagLogicalExpr }
func (n *LogicalExpr) Children() []Node { return nonNil(n.Left, n.Right) }

func (n *LogicalExpr) decode(st *scan.State) {
	n.Op = decodeName(st, false)
	n.Left = Decode(st)
	n.Right = Decode(st)
	n.LeftLiteral = decode.DecodeVariant(st)
	n.RightLiteral = decode.DecodeVariant(st)
}

func (n *LogicalExpr) Render(p *Printer) {
	renderInfix(p, n.Op, n.Left, n.Right, n.LeftLiteral, n.RightLiteral)
}

// UnaryExpr is a prefix operator applied to one operand.
type UnaryExpr struct {
	Op      Name
	Operand Node
	Literal decode.Variant
}

func (n *UnaryExpr) Tag() Tag         { return TagUnaryExpr }
func (n *UnaryExpr) Children() []Node { return nonNil(n.Operand) }

func (n *UnaryExpr) decode(st *scan.State) {
	n.Op = decodeName(st, false)
	n.Operand = Decode(st)
	n.Literal = decode.DecodeVariant(st)
}

func (n *UnaryExpr) Render(p *Printer) {
	p.Name(n.Op)
	if ValidIdentifier(n.Op.Text) {
		// typeof, void and friends
		p.Write(" ")
	}
	operand := n.Literal.Source()
	if n.Operand != nil {
		operand = p.capture(func(q *Printer) { q.Operand(n.Operand) })
	}
	// -(-x) must not print as the decrement --x.
	if (n.Op.Text == "+" || n.Op.Text == "-") && (strings.HasPrefix(operand, "+") || strings.HasPrefix(operand, "-")) {
		operand = "(" + operand + ")"
	}
	p.Write(operand)
}

// TernaryExpr is the conditional operator.
type TernaryExpr struct {
	Condition Node
	Then      Node
	Else      Node
}

func (n *TernaryExpr) Tag() Tag         { return TagTernaryExpr }
func (n *TernaryExpr) Children() []Node { return nonNil(n.Condition, n.Then, n.Else) }

func (n *TernaryExpr) decode(st *scan.State) {
	n.Condition = Decode(st)
	n.Then = Decode(st)
	n.Else = Decode(st)
}

func (n *TernaryExpr) Render(p *Printer) {
	p.Operand(n.Condition)
	p.Write(" ? ")
	p.Operand(n.Then)
	p.Write(" : ")
	p.Operand(n.Else)
}

// IncrementExpr is ++/-- applied to a variable.
type IncrementExpr struct {
	Name    Name
	Flag    bool
	Amount  int
	Postfix bool
}

func (n *IncrementExpr) Tag() Tag         { return TagIncrementExpr }
func (n *IncrementExpr) Children() []Node { return nil }

func (n *IncrementExpr) decode(st *scan.State) {
	ref := decode.Ref(st)
	n.Name = refName(st, ref, true)
	n.Flag = ref.Flag
	n.Amount = decode.LiteralNum(st)
	n.Postfix = decode.Bool(st)
}

func (n *IncrementExpr) Render(p *Printer) {
	renderIncrement(p, n.Amount, n.Postfix, func() { p.Name(n.Name) })
}

func renderIncrement(p *Printer, amount int, postfix bool, target func()) {
	op := "++"
	if amount < 0 {
		op = "--"
	}
	if !postfix {
		p.Write(op)
	}
	target()
	if postfix {
		p.Write(op)
	}
}

// IndexingIncrementExpr is ++/-- applied to obj[index].
type IndexingIncrementExpr struct {
	Object  Node
	Index   Node
	Amount  int
	Postfix bool
}

func (n *IndexingIncrementExpr) Tag() Tag         { return TagIndexingIncrementExpr }
func (n *IndexingIncrementExpr) Children() []Node { return nonNil(n.Object, n.Index) }

func (n *IndexingIncrementExpr) decode(st *scan.State) {
	n.Object = Decode(st)
	n.Index = Decode(st)
	n.Amount = decode.LiteralNum(st)
	n.Postfix = decode.Bool(st)
}

func (n *IndexingIncrementExpr) Render(p *Printer) {
	renderIncrement(p, n.Amount, n.Postfix, func() {
		p.Object(n.Object)
		p.Write("[")
		p.Expr(n.Index)
		p.Write("]")
	})
}

// DeleteExpr is the delete operator.
type DeleteExpr struct {
	Operand Node
}

func (n *DeleteExpr) Tag() Tag              { return TagDeleteExpr }
func (n *DeleteExpr) Children() []Node      { return nonNil(n.Operand) }
func (n *DeleteExpr) decode(st *scan.State) { n.Operand = Decode(st) }

func (n *DeleteExpr) Render(p *Printer) {
	p.Write("delete ")
	p.Operand(n.Operand)
}

// VoidExpr is the void operator.
type VoidExpr struct {
	Operand Node
}

func (n *VoidExpr) Tag() Tag              { return TagVoidExpr }
func (n *VoidExpr) Children() []Node      { return nonNil(n.Operand) }
func (n *VoidExpr) decode(st *scan.State) { n.Operand = Decode(st) }

func (n *VoidExpr) Render(p *Printer) {
	p.Write("void ")
	p.Operand(n.Operand)
}

// ---------------------------------------------------------------------------
// Calls and functions
// ---------------------------------------------------------------------------

// CallExpr is a function call or, when Construct is set, a new expression.
type CallExpr struct {
	Callee    Node
	Arguments Node
	Construct bool
}

func (n *CallExpr) Tag() Tag         { return TagCallExpr }
func (n *CallExpr) Children() []Node { return nonNil(n.Callee, n.Arguments) }

func (n *CallExpr) decode(st *scan.State) {
	n.Callee = Decode(st)
	n.Arguments = Decode(st)
	n.Construct = decode.Bool(st)
}

func (n *CallExpr) Render(p *Printer) {
	if n.Construct {
		p.Write("new ")
		if containsCall(n.Callee) {
			// new (f())() and new (a.b().c)() construct the call result.
			p.Write("(")
			p.Expr(n.Callee)
			p.Write(")")
		} else {
			p.Object(n.Callee)
		}
	} else {
		p.Object(n.Callee)
	}
	p.Write("(")
	p.Expr(n.Arguments)
	p.Write(")")
}

// containsCall reports whether a callee's member chain includes a call.
func containsCall(n Node) bool {
	for n != nil {
		switch v := n.(type) {
		case *CallExpr:
			return true
		case *IdRefExpr:
			n = v.Object
		case *IndexingExpr:
			n = v.Object
		default:
			return false
		}
	}
	return false
}

// FunctionExpr is a function used as a value. It owns the declaration
// node that holds the signature and body.
type FunctionExpr struct {
	Function Node
}

func (n *FunctionExpr) Tag() Tag              { return TagFunctionExpr }
func (n *FunctionExpr) Children() []Node      { return nonNil(n.Function) }
func (n *FunctionExpr) decode(st *scan.State) { n.Function = Decode(st) }

func (n *FunctionExpr) Render(p *Printer) { p.Expr(n.Function) }
