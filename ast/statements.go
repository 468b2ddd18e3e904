package ast

import (
	"github.com/chazu/jsxbin/decode"
	"github.com/chazu/jsxbin/scan"
)

// lined is embedded by statements that start with a line-info record.
type lined struct {
	Info LineInfo
}

func (l *lined) LineInfo() *LineInfo { return &l.Info }
func (l *lined) stmt()               {}

// ---------------------------------------------------------------------------
// Containers
// ---------------------------------------------------------------------------

// Program is the root node: the top-level statement sequence.
type Program struct {
	Statements []Node
}

func (n *Program) Tag() Tag              { return TagProgram }
func (n *Program) Children() []Node      { return n.Statements }
func (n *Program) stmt()                 {}
func (n *Program) decode(st *scan.State) { n.Statements = DecodeChildren(st) }
func (n *Program) Render(p *Printer)     { p.Statements(n.Statements) }

// StatementList is a braced block.
type StatementList struct {
	Statements []Node
}

func (n *StatementList) Tag() Tag              { return TagStatementList }
func (n *StatementList) Children() []Node      { return n.Statements }
func (n *StatementList) stmt()                 {}
func (n *StatementList) decode(st *scan.State) { n.Statements = DecodeChildren(st) }
func (n *StatementList) Render(p *Printer)     { p.Block(n.Statements) }

// ExprStatement is an expression evaluated for effect. The expression is
// the body of its line info.
type ExprStatement struct {
	lined
}

func (n *ExprStatement) Tag() Tag              { return TagExprStatement }
func (n *ExprStatement) Children() []Node      { return nonNil(n.Info.Body) }
func (n *ExprStatement) decode(st *scan.State) { n.Info = DecodeLineInfo(st) }

func (n *ExprStatement) Render(p *Printer) {
	if s, ok := n.Info.Body.(Statement); ok {
		s.Render(p)
		return
	}
	p.Expr(n.Info.Body)
	p.Write(";")
}

// ---------------------------------------------------------------------------
// Functions
// ---------------------------------------------------------------------------

// FunctionDeclaration is a named function with its signature and body.
type FunctionDeclaration struct {
	lined
	Signature decode.Signature
	Name      Name
	Params    []Name
	Body      []Node
}

func (n *FunctionDeclaration) Tag() Tag { return TagFunctionDeclaration }

func (n *FunctionDeclaration) Children() []Node {
	return append(nonNil(n.Info.Body), n.Body...)
}

func (n *FunctionDeclaration) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Signature = decode.FunctionSignature(st)
	n.Name = signatureName(st, n.Signature.Name, n.Signature.NameID, n.Signature.NameUnresolved)
	for _, param := range n.Signature.Parameters {
		n.Params = append(n.Params, signatureName(st, param.Name, param.SymbolID, param.Unresolved))
	}
	n.Body = DecodeChildren(st)
}

func signatureName(st *scan.State, text, id string, unresolved bool) Name {
	return refName(st, decode.Reference{ID: id, Name: text, Unresolved: unresolved}, true)
}

func (n *FunctionDeclaration) Render(p *Printer) {
	p.Write("function")
	if n.Name.Text != "" || n.Name.Unresolved {
		p.Write(" ")
		p.Name(n.Name)
	}
	p.Write("(")
	for i, param := range n.Params {
		if i > 0 {
			p.Write(", ")
		}
		p.Name(param)
	}
	p.Write(") ")
	p.Block(n.Body)
}

// ---------------------------------------------------------------------------
// Control flow
// ---------------------------------------------------------------------------

// IfStatement is if/else. The then-branch is the line info body.
type IfStatement struct {
	lined
	Condition Node
	Else      Node
}

func (n *IfStatement) Tag() Tag { return TagIfStatement }

func (n *IfStatement) Children() []Node {
	return nonNil(n.Condition, n.Info.Body, n.Else)
}

func (n *IfStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Condition = Decode(st)
	n.Else = Decode(st)
}

func (n *IfStatement) Render(p *Printer) {
	p.Write("if (")
	p.Expr(n.Condition)
	p.Write(") ")
	p.Body(n.Info.Body)
	switch e := n.Else.(type) {
	case nil:
	case *IfStatement:
		p.Write(" else ")
		p.Statement(e)
	default:
		p.Write(" else ")
		p.Body(e)
	}
}

// WhileStatement is a while loop.
type WhileStatement struct {
	lined
	Condition Node
}

func (n *WhileStatement) Tag() Tag         { return TagWhileStatement }
func (n *WhileStatement) Children() []Node { return nonNil(n.Condition, n.Info.Body) }

func (n *WhileStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Condition = Decode(st)
}

func (n *WhileStatement) Render(p *Printer) {
	p.Write("while (")
	p.Expr(n.Condition)
	p.Write(") ")
	p.Body(n.Info.Body)
}

// DoWhileStatement is a do/while loop.
type DoWhileStatement struct {
	lined
	Condition Node
}

func (n *DoWhileStatement) Tag() Tag         { return TagDoWhileStatement }
func (n *DoWhileStatement) Children() []Node { return nonNil(n.Info.Body, n.Condition) }

func (n *DoWhileStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Condition = Decode(st)
}

func (n *DoWhileStatement) Render(p *Printer) {
	p.Write("do ")
	p.Body(n.Info.Body)
	p.Write(" while (")
	p.Expr(n.Condition)
	p.Write(");")
}

// ForStatement is a three-clause for loop.
type ForStatement struct {
	lined
	Init      Node
	Condition Node
	Update    Node
}

func (n *ForStatement) Tag() Tag { return TagForStatement }

func (n *ForStatement) Children() []Node {
	return nonNil(n.Init, n.Condition, n.Update, n.Info.Body)
}

func (n *ForStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Init = Decode(st)
	n.Condition = Decode(st)
	n.Update = Decode(st)
}

func (n *ForStatement) Render(p *Printer) {
	p.Write("for (")
	p.Expr(n.Init)
	p.Write("; ")
	p.Expr(n.Condition)
	p.Write("; ")
	p.Expr(n.Update)
	p.Write(") ")
	p.Body(n.Info.Body)
}

// ForInStatement is for-in or, with Each set, for-each-in.
type ForInStatement struct {
	lined
	Variable Node
	Object   Node
	Each     bool
}

func (n *ForInStatement) Tag() Tag { return TagForInStatement }

func (n *ForInStatement) Children() []Node {
	return nonNil(n.Variable, n.Object, n.Info.Body)
}

func (n *ForInStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Variable = Decode(st)
	n.Object = Decode(st)
	n.Each = decode.Bool(st)
}

func (n *ForInStatement) Render(p *Printer) {
	p.Write("for ")
	if n.Each {
		p.Write("each ")
	}
	p.Write("(")
	p.Expr(n.Variable)
	p.Write(" in ")
	p.Expr(n.Object)
	p.Write(") ")
	p.Body(n.Info.Body)
}

// WithStatement is a with block.
type WithStatement struct {
	lined
	Object Node
}

func (n *WithStatement) Tag() Tag         { return TagWithStatement }
func (n *WithStatement) Children() []Node { return nonNil(n.Object, n.Info.Body) }

func (n *WithStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Object = Decode(st)
}

func (n *WithStatement) Render(p *Printer) {
	p.Write("with (")
	p.Expr(n.Object)
	p.Write(") ")
	p.Body(n.Info.Body)
}

// SwitchCase is one case clause; a nil Test is the default clause.
type SwitchCase struct {
	Test Node
	Body Node
}

// SwitchStatement is a switch with its case clauses in source order.
type SwitchStatement struct {
	lined
	Discriminant Node
	Cases        []SwitchCase
}

func (n *SwitchStatement) Tag() Tag { return TagSwitchStatement }

func (n *SwitchStatement) Children() []Node {
	out := nonNil(n.Discriminant)
	for _, c := range n.Cases {
		out = append(out, nonNil(c.Test, c.Body)...)
	}
	return out
}

func (n *SwitchStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Discriminant = Decode(st)
	count := decode.Length(st)
	for i := 0; i < count && !st.Exhausted(); i++ {
		test := Decode(st)
		n.Cases = append(n.Cases, SwitchCase{Test: test, Body: Decode(st)})
	}
}

func (n *SwitchStatement) Render(p *Printer) {
	p.Write("switch (")
	p.Expr(n.Discriminant)
	p.Write(") {")
	for _, c := range n.Cases {
		p.Indented(func() {
			if c.Test == nil {
				p.Write("default:")
			} else {
				p.Write("case ")
				p.Expr(c.Test)
				p.Write(":")
			}
			stmts := caseStatements(c.Body)
			if len(stmts) > 0 {
				p.Indented(func() { p.Statements(stmts) })
			}
		})
	}
	p.Newline()
	p.Write("}")
}

func caseStatements(body Node) []Node {
	switch b := body.(type) {
	case nil:
		return nil
	case *StatementList:
		return b.Statements
	default:
		return []Node{b}
	}
}

// CatchClause is one catch of a try statement. ExtendScript allows a
// guard condition: catch (e if cond).
type CatchClause struct {
	Param Name
	Guard Node
	Body  Node
}

// TryStatement is try with catch clauses and an optional finally block.
// The try block is the line info body.
type TryStatement struct {
	lined
	Catches []CatchClause
	Finally Node
}

func (n *TryStatement) Tag() Tag { return TagTryStatement }

func (n *TryStatement) Children() []Node {
	out := nonNil(n.Info.Body)
	for _, c := range n.Catches {
		out = append(out, nonNil(c.Guard, c.Body)...)
	}
	return append(out, nonNil(n.Finally)...)
}

func (n *TryStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	count := decode.Length(st)
	for i := 0; i < count && !st.Exhausted(); i++ {
		param := decodeName(st, true)
		guard := Decode(st)
		n.Catches = append(n.Catches, CatchClause{Param: param, Guard: guard, Body: Decode(st)})
	}
	n.Finally = Decode(st)
}

func (n *TryStatement) Render(p *Printer) {
	p.Write("try ")
	p.Body(n.Info.Body)
	for _, c := range n.Catches {
		p.Write(" catch (")
		p.Name(c.Param)
		if c.Guard != nil {
			p.Write(" if ")
			p.Expr(c.Guard)
		}
		p.Write(") ")
		p.Body(c.Body)
	}
	if n.Finally != nil {
		p.Write(" finally ")
		p.Body(n.Finally)
	}
}

// ---------------------------------------------------------------------------
// Simple statements
// ---------------------------------------------------------------------------

// ReturnStatement returns an optional value.
type ReturnStatement struct {
	lined
	Value Node
}

func (n *ReturnStatement) Tag() Tag         { return TagReturnStatement }
func (n *ReturnStatement) Children() []Node { return nonNil(n.Info.Body, n.Value) }

func (n *ReturnStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Value = Decode(st)
}

func (n *ReturnStatement) Render(p *Printer) {
	p.Write("return")
	if n.Value != nil {
		p.Write(" ")
		p.Expr(n.Value)
	}
	p.Write(";")
}

// ThrowStatement throws a value.
type ThrowStatement struct {
	lined
	Value Node
}

func (n *ThrowStatement) Tag() Tag         { return TagThrowStatement }
func (n *ThrowStatement) Children() []Node { return nonNil(n.Info.Body, n.Value) }

func (n *ThrowStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Value = Decode(st)
}

func (n *ThrowStatement) Render(p *Printer) {
	p.Write("throw ")
	p.Expr(n.Value)
	p.Write(";")
}

// BreakStatement breaks out of a loop, switch or labelled statement.
type BreakStatement struct {
	lined
	Label Name
}

func (n *BreakStatement) Tag() Tag         { return TagBreakStatement }
func (n *BreakStatement) Children() []Node { return nonNil(n.Info.Body) }

func (n *BreakStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Label = decodeName(st, true)
}

func (n *BreakStatement) Render(p *Printer) { renderJump(p, "break", n.Label) }

// ContinueStatement continues a loop.
type ContinueStatement struct {
	lined
	Label Name
}

func (n *ContinueStatement) Tag() Tag         { return TagContinueStatement }
func (n *ContinueStatement) Children() []Node { return nonNil(n.Info.Body) }

func (n *ContinueStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Label = decodeName(st, true)
}

func (n *ContinueStatement) Render(p *Printer) { renderJump(p, "continue", n.Label) }

func renderJump(p *Printer, keyword string, label Name) {
	p.Write(keyword)
	if label.Text != "" || label.Unresolved {
		p.Write(" ")
		p.Name(label)
	}
	p.Write(";")
}

// SetConstantStatement declares a constant.
type SetConstantStatement struct {
	lined
	Name    Name
	Value   Node
	Literal decode.Variant
}

func (n *SetConstantStatement) Tag() Tag         { return TagSetConstantStatement }
func (n *SetConstantStatement) Children() []Node { return nonNil(n.Info.Body, n.Value) }

func (n *SetConstantStatement) decode(st *scan.State) {
	n.Info = DecodeLineInfo(st)
	n.Name = decodeName(st, true)
	n.Value = Decode(st)
	n.Literal = decode.DecodeVariant(st)
}

func (n *SetConstantStatement) Render(p *Printer) {
	p.Write("const ")
	p.Name(n.Name)
	p.Write(" = ")
	p.ExprOr(n.Value, n.Literal.Source())
	p.Write(";")
}

// DebuggerStatement is the debugger keyword.
type DebuggerStatement struct {
	lined
}

func (n *DebuggerStatement) Tag() Tag              { return TagDebuggerStatement }
func (n *DebuggerStatement) Children() []Node      { return nonNil(n.Info.Body) }
func (n *DebuggerStatement) decode(st *scan.State) { n.Info = DecodeLineInfo(st) }
func (n *DebuggerStatement) Render(p *Printer)     { p.Write("debugger;") }
