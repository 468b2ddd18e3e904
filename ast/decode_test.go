package ast

import (
	"testing"

	"github.com/chazu/jsxbin/scan"
)

// programVarReturn encodes:
//
//	var x = 1;
//	return x;
func programVarReturn() *enc {
	e := newEnc()
	e.tag(TagProgram).Num(2)

	e.tag(TagExprStatement).Num(1)
	e.tag(TagAssignmentExpr)
	e.defID("x", 1, false)
	e.num(1)
	e.Absent()
	e.Bool(false).Bool(true)
	e.Num(0) // labels

	e.tag(TagReturnStatement).line(2)
	e.useID(1)
	return e
}

func TestDecodeProgram(t *testing.T) {
	root := programVarReturn().decode()
	prog, ok := root.(*Program)
	if !ok {
		t.Fatalf("root = %T, want *Program", root)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("statements = %d, want 2", len(prog.Statements))
	}

	stmt, ok := prog.Statements[0].(*ExprStatement)
	if !ok {
		t.Fatalf("statement 0 = %T", prog.Statements[0])
	}
	if stmt.Info.Line != 1 {
		t.Errorf("line = %d, want 1", stmt.Info.Line)
	}
	assign, ok := stmt.Info.Body.(*AssignmentExpr)
	if !ok {
		t.Fatalf("body = %T, want *AssignmentExpr", stmt.Info.Body)
	}
	if !assign.Declared || assign.Shorthand {
		t.Errorf("assignment flags = declared %v shorthand %v", assign.Declared, assign.Shorthand)
	}
	if id := assign.Target.(*IdNode); id.Name.Text != "x" || id.Name.ID != "1" {
		t.Errorf("target = %+v", id.Name)
	}

	ret, ok := prog.Statements[1].(*ReturnStatement)
	if !ok {
		t.Fatalf("statement 1 = %T", prog.Statements[1])
	}
	if id := ret.Value.(*IdNode); id.Name.Text != "x" || id.Name.Unresolved {
		t.Errorf("return value = %+v", id.Name)
	}
}

func TestRenderProgram(t *testing.T) {
	got := Source(programVarReturn().decode())
	want := "var x = 1;\nreturn x;"
	if got != want {
		t.Errorf("Source = %q, want %q", got, want)
	}
}

func TestDecodeEmptyTag(t *testing.T) {
	if n := newEnc().empty().decode(); n != nil {
		t.Errorf("empty tag decoded to %T", n)
	}
}

func TestUnknownTagSkippedInChildren(t *testing.T) {
	e := newEnc()
	e.tag(TagArrayExpr).Num(3)
	e.num(1)
	e.Raw('~')
	e.num(2)

	st := e.state()
	arr, ok := Decode(st).(*ArrayExpr)
	if !ok {
		t.Fatal("expected *ArrayExpr")
	}
	// The unknown tag is dropped; its bytes are consumed as the next tag.
	if len(arr.Elements) != 2 {
		t.Fatalf("elements = %d, want 2", len(arr.Elements))
	}
	if got := Source(arr); got != "[1, 2]" {
		t.Errorf("Source = %q", got)
	}
}

func TestUnresolvedNamePlaceholder(t *testing.T) {
	e := newEnc()
	e.tag(TagExprStatement).Num(1)
	e.useID(40)
	e.Num(0)

	n := e.decode()
	if got := Source(n); got != "__unresolved_40;" {
		t.Errorf("Source = %q", got)
	}
	if got := Source(n, WithUnresolved("UNKNOWN(%s)")); got != "UNKNOWN(40);" {
		t.Errorf("Source with custom placeholder = %q", got)
	}
}

func TestUnblindRenamesInvalidVariables(t *testing.T) {
	e := newEnc()
	e.tag(TagArrayExpr).Num(2)
	e.defID("bad name", 7, false)
	e.tag(TagIdRefExpr)
	e.Def("odd key", 8).Bool(false)
	e.tag(TagThisExpr)

	blind := Decode(e.state())
	if got := Source(blind); got != `[bad name, this["odd key"]]` {
		t.Errorf("blind Source = %q", got)
	}

	unblind := Decode(scan.New(e.Bytes(), scan.V20, scan.WithUnblind(true)))
	if got := Source(unblind); got != `[symbol_7, this["odd key"]]` {
		t.Errorf("unblind Source = %q", got)
	}
}

func TestDecodeV10HasNoReferenceFlag(t *testing.T) {
	e := newEnc()
	e.tag(TagIdNode)
	e.Def("y", 3).Bool(true) // declared; no flag in 1.0 streams

	n := Decode(scan.New(e.Bytes(), scan.V10))
	id, ok := n.(*IdNode)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if !id.Declared || id.Flag {
		t.Errorf("IdNode = %+v", id)
	}
}

func TestNestingLimitStopsDecoding(t *testing.T) {
	e := newEnc()
	const depth = 50
	for i := 0; i < depth; i++ {
		e.tag(TagVoidExpr)
	}
	e.tag(TagThisExpr)

	st := scan.New(e.Bytes(), scan.V20, scan.WithNestingLimit(10))
	n := Decode(st)
	if n == nil {
		t.Fatal("outer node should still decode")
	}
	if !st.Exhausted() {
		t.Error("state should be exhausted after hitting the nesting limit")
	}

	levels := 0
	for n != nil {
		v, ok := n.(*VoidExpr)
		if !ok {
			break
		}
		levels++
		n = v.Operand
	}
	if levels >= depth {
		t.Errorf("decoded %d levels, expected truncation", levels)
	}
}

func TestDepthBudgetTruncates(t *testing.T) {
	st := scan.New(programVarReturn().Bytes(), scan.V20, scan.WithDepthBudget(8))
	root := Decode(st)
	if !st.BudgetExhausted() {
		t.Fatal("budget should be exhausted")
	}
	// Whatever was decoded still renders without panicking.
	_ = Source(root)
}

func TestDecodeEOF(t *testing.T) {
	e := newEnc()
	e.tag(TagProgram).Num(5)
	e.tag(TagThisExpr)

	st := e.state()
	prog := Decode(st).(*Program)
	if len(prog.Statements) != 1 {
		t.Errorf("statements = %d, want 1", len(prog.Statements))
	}
	if !st.Exhausted() {
		t.Error("expected exhaustion at EOF")
	}
}

func TestLineInfoLabels(t *testing.T) {
	e := newEnc()
	e.tag(TagWhileStatement)
	e.Num(3)
	e.tag(TagBreakStatement).line(4)
	e.Def("outer", 1)
	e.Num(1)
	e.Use(1)
	e.tag(TagValueNode).VarBool(true)

	n := e.decode()
	w, ok := n.(*WhileStatement)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if len(w.Info.Labels) != 1 || w.Info.Labels[0].Text != "outer" {
		t.Fatalf("labels = %+v", w.Info.Labels)
	}
	want := "outer: while (true) {\n    break outer;\n}"
	if got := Source(w); got != want {
		t.Errorf("Source = %q, want %q", got, want)
	}
}

func TestWalkAndCount(t *testing.T) {
	root := programVarReturn().decode()
	// Program, ExprStatement, Assignment, IdNode, ValueNode, Return, IdNode
	if got := Count(root); got != 7 {
		t.Errorf("Count = %d, want 7", got)
	}

	var tags []Tag
	Walk(root, func(n Node) bool {
		tags = append(tags, n.Tag())
		return n.Tag() != TagExprStatement
	})
	want := []Tag{TagProgram, TagExprStatement, TagReturnStatement, TagIdNode}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, tags[i], want[i])
		}
	}
}

func TestFunctionDeclarationUnresolvedNames(t *testing.T) {
	e := newEnc()
	e.tag(TagFunctionDeclaration).line(1)
	e.Num(2)
	e.Use(77).Num(0x1ffffc71)
	e.Def("b", 5).Num(0x1ffffc72)
	e.Num(0).Num(0).Num(0)
	e.Use(78)
	e.Num(0)
	e.Num(0) // body

	n := e.decode()
	fn, ok := n.(*FunctionDeclaration)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if !fn.Name.Unresolved || fn.Name.ID != "78" {
		t.Errorf("name = %+v", fn.Name)
	}
	if len(fn.Params) != 2 || !fn.Params[0].Unresolved || fn.Params[1].Text != "b" {
		t.Fatalf("params = %+v", fn.Params)
	}
	want := "function __unresolved_78(__unresolved_77, b) {}"
	if got := Source(fn); got != want {
		t.Errorf("Source = %q, want %q", got, want)
	}
}

func TestLineInfoBodyIsWalked(t *testing.T) {
	e := newEnc()
	e.tag(TagReturnStatement)
	e.Num(1)
	e.tag(TagThisExpr)
	e.Num(0)
	e.num(5)

	n := e.decode()
	ret, ok := n.(*ReturnStatement)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if ret.Info.Body == nil {
		t.Fatal("line info body not decoded")
	}
	// Return, its line body and its value.
	if got := Count(ret); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	stmts := []Node{
		&ThrowStatement{lined: lined{Info: LineInfo{Body: &ThisExpr{}}}},
		&BreakStatement{lined: lined{Info: LineInfo{Body: &ThisExpr{}}}},
		&ContinueStatement{lined: lined{Info: LineInfo{Body: &ThisExpr{}}}},
		&SetConstantStatement{lined: lined{Info: LineInfo{Body: &ThisExpr{}}}},
		&DebuggerStatement{lined: lined{Info: LineInfo{Body: &ThisExpr{}}}},
	}
	for _, s := range stmts {
		if got := len(s.Children()); got != 1 {
			t.Errorf("%v children = %d, want 1", s.Tag(), got)
		}
	}
}
