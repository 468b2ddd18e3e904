// Package ast reconstructs the syntax tree of a JSXBIN stream. Each node
// kind decodes itself from a *scan.State once and renders back to
// ExtendScript source afterwards. Nodes own their children exclusively;
// names are resolved through the session's symbol table at decode time.
package ast

import (
	"strconv"

	"github.com/tliron/commonlog"

	"github.com/chazu/jsxbin/decode"
	"github.com/chazu/jsxbin/scan"
)

var log = commonlog.GetLogger("jsxbin.ast")

// Node is implemented by every decoded node.
type Node interface {
	Tag() Tag
	Render(p *Printer)
	Children() []Node
}

// Statement is implemented by nodes that render as complete statements.
type Statement interface {
	Node
	stmt() // marker method
}

// Lined is implemented by statements that carry a line-info record.
type Lined interface {
	Node
	LineInfo() *LineInfo
}

// decoder is a node that can pull its own fields from the stream.
type decoder interface {
	Node
	decode(st *scan.State)
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

var registry map[Tag]func() decoder

func init() {
	registry = map[Tag]func() decoder{
		TagArgumentList:          func() decoder { return &ArgumentList{} },
		TagArrayExpr:             func() decoder { return &ArrayExpr{} },
		TagAssignmentExpr:        func() decoder { return &AssignmentExpr{} },
		TagBinaryExpr:            func() decoder { return &BinaryExpr{} },
		TagBreakStatement:        func() decoder { return &BreakStatement{} },
		TagCallExpr:              func() decoder { return &CallExpr{} },
		TagContinueStatement:     func() decoder { return &ContinueStatement{} },
		TagDeleteExpr:            func() decoder { return &DeleteExpr{} },
		TagDoWhileStatement:      func() decoder { return &DoWhileStatement{} },
		TagExprStatement:         func() decoder { return &ExprStatement{} },
		TagForStatement:          func() decoder { return &ForStatement{} },
		TagForInStatement:        func() decoder { return &ForInStatement{} },
		TagFunctionDeclaration:   func() decoder { return &FunctionDeclaration{} },
		TagFunctionExpr:          func() decoder { return &FunctionExpr{} },
		TagIdNode:                func() decoder { return &IdNode{} },
		TagIfStatement:           func() decoder { return &IfStatement{} },
		TagIncrementExpr:         func() decoder { return &IncrementExpr{} },
		TagIndexingExpr:          func() decoder { return &IndexingExpr{} },
		TagIndexingIncrementExpr: func() decoder { return &IndexingIncrementExpr{} },
		TagIdRefExpr:             func() decoder { return &IdRefExpr{} },
		TagLogicalExpr:           func() decoder { return &LogicalExpr{} },
		TagMemberAssignmentExpr:  func() decoder { return &MemberAssignmentExpr{} },
		TagObjectExpr:            func() decoder { return &ObjectExpr{} },
		TagProgram:               func() decoder { return &Program{} },
		TagRegExpLiteral:         func() decoder { return &RegExpLiteral{} },
		TagReturnStatement:       func() decoder { return &ReturnStatement{} },
		TagSetConstantStatement:  func() decoder { return &SetConstantStatement{} },
		TagStatementList:         func() decoder { return &StatementList{} },
		TagSwitchStatement:       func() decoder { return &SwitchStatement{} },
		TagThisExpr:              func() decoder { return &ThisExpr{} },
		TagThrowStatement:        func() decoder { return &ThrowStatement{} },
		TagTryStatement:          func() decoder { return &TryStatement{} },
		TagTernaryExpr:           func() decoder { return &TernaryExpr{} },
		TagUnaryExpr:             func() decoder { return &UnaryExpr{} },
		TagValueNode:             func() decoder { return &ValueNode{} },
		TagVoidExpr:              func() decoder { return &VoidExpr{} },
		TagWhileStatement:        func() decoder { return &WhileStatement{} },
		TagWithStatement:         func() decoder { return &WithStatement{} },
		TagXMLAccessorExpr:       func() decoder { return &XMLAccessorExpr{} },
		TagXMLLiteralExpr:        func() decoder { return &XMLLiteralExpr{} },
		TagXMLDescendantsExpr:    func() decoder { return &XMLDescendantsExpr{} },
		TagXMLNamespaceExpr:      func() decoder { return &XMLNamespaceExpr{} },
		TagXMLQueryExpr:          func() decoder { return &XMLQueryExpr{} },
		TagCommaExpr:             func() decoder { return &CommaExpr{} },
		TagDebuggerStatement:     func() decoder { return &DebuggerStatement{} },
	}
}

// Known reports whether t has a registered constructor.
func Known(t Tag) bool {
	_, ok := registry[t]
	return ok
}

// Decode pops one tag byte and decodes the node it selects. It returns nil
// for the empty tag, for unknown tags (logged) and when the session can no
// longer make progress.
func Decode(st *scan.State) Node {
	if st.Exhausted() {
		return nil
	}
	tag := Tag(st.Pop())
	if tag == TagEmpty || st.Err() != nil {
		return nil
	}

	ctor, ok := registry[tag]
	if !ok {
		log.Warningf("unexpected node tag %q at offset %d", byte(tag), st.Offset()-1)
		return nil
	}

	if !st.Enter() {
		return nil
	}
	defer st.Leave()

	n := ctor()
	n.decode(st)
	return n
}

// DecodeChildren decodes a length n followed by n nodes. Nodes that decode
// to nothing are skipped.
func DecodeChildren(st *scan.State) []Node {
	n := decode.Length(st)
	if n == 0 {
		return nil
	}
	var out []Node
	for i := 0; i < n && !st.Exhausted(); i++ {
		if child := Decode(st); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Line info
// ---------------------------------------------------------------------------

// LineInfo is the line record that starts most statements: the source line,
// the statement's primary child and the labels attached to it.
type LineInfo struct {
	Line   int
	Body   Node
	Labels []Name
}

// DecodeLineInfo decodes line number, body node, label count and labels.
func DecodeLineInfo(st *scan.State) LineInfo {
	var li LineInfo
	li.Line = decode.Length(st)
	li.Body = Decode(st)

	n := decode.Length(st)
	for i := 0; i < n && !st.Exhausted(); i++ {
		li.Labels = append(li.Labels, decodeName(st, true))
	}
	return li
}

// ---------------------------------------------------------------------------
// Names
// ---------------------------------------------------------------------------

// Name is an identifier resolved through the symbol table. Unresolved
// names keep their id so the printer can emit a placeholder.
type Name struct {
	Text       string
	ID         string
	Unresolved bool
}

// String returns the name text.
func (n Name) String() string { return n.Text }

// decodeName decodes an identifier. Variable names (binding positions)
// are subject to unblinding; member names keep their raw text.
func decodeName(st *scan.State, variable bool) Name {
	text, id, err := decode.Ident(st)
	if err != nil {
		return Name{ID: id, Unresolved: true}
	}
	return makeName(st, text, id, variable)
}

func makeName(st *scan.State, text, id string, variable bool) Name {
	if variable && st.Unblind() && text != "" && !ValidIdentifier(text) {
		text = "symbol_" + id
	}
	return Name{Text: text, ID: id}
}

// refName converts a full reference into a Name.
func refName(st *scan.State, ref decode.Reference, variable bool) Name {
	if ref.Unresolved {
		return Name{ID: ref.ID, Unresolved: true}
	}
	return makeName(st, ref.Name, ref.ID, variable)
}

// ValidIdentifier reports whether s matches [A-Za-z_$][0-9A-Za-z_$]*.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// IsInteger reports whether s is a non-empty run of decimal digits.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// nonNil filters nil entries out of a child list.
func nonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
