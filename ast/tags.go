package ast

import "fmt"

// ---------------------------------------------------------------------------
// Frozen node tag bytes.
//
// IMPORTANT: a tag selects the node constructor for the bytes that follow
// it. Tags are part of the JSXBIN format; never renumber them.
// ---------------------------------------------------------------------------

// Tag is the single-byte node type selector.
type Tag byte

const (
	// TagEmpty marks an intentionally empty node slot.
	TagEmpty Tag = '0'

	TagArgumentList          Tag = 'A'
	TagArrayExpr             Tag = 'B'
	TagAssignmentExpr        Tag = 'C'
	TagBinaryExpr            Tag = 'D'
	TagBreakStatement        Tag = 'E'
	TagCallExpr              Tag = 'F'
	TagContinueStatement     Tag = 'G'
	TagDeleteExpr            Tag = 'H'
	TagDoWhileStatement      Tag = 'I'
	TagExprStatement         Tag = 'J'
	TagForStatement          Tag = 'K'
	TagForInStatement        Tag = 'L'
	TagFunctionDeclaration   Tag = 'M'
	TagFunctionExpr          Tag = 'N'
	TagIdNode                Tag = 'O'
	TagIfStatement           Tag = 'P'
	TagIncrementExpr         Tag = 'Q'
	TagIndexingExpr          Tag = 'R'
	TagIndexingIncrementExpr Tag = 'S'
	TagIdRefExpr             Tag = 'T'
	TagLogicalExpr           Tag = 'U'
	TagMemberAssignmentExpr  Tag = 'V'
	TagObjectExpr            Tag = 'W'
	TagProgram               Tag = 'X'
	TagRegExpLiteral         Tag = 'Y'
	TagReturnStatement       Tag = 'Z'

	TagSetConstantStatement Tag = 'a'
	TagStatementList        Tag = 'b'
	TagSwitchStatement      Tag = 'c'
	TagThisExpr             Tag = 'd'
	TagThrowStatement       Tag = 'e'
	TagTryStatement         Tag = 'f'
	TagTernaryExpr          Tag = 'g'
	TagUnaryExpr            Tag = 'h'
	TagValueNode            Tag = 'i'
	TagVoidExpr             Tag = 'j'
	TagWhileStatement       Tag = 'k'
	TagWithStatement        Tag = 'l'
	TagXMLAccessorExpr      Tag = 'm'
	TagXMLLiteralExpr       Tag = 'n'
	TagXMLDescendantsExpr   Tag = 'o'
	TagXMLNamespaceExpr     Tag = 'p'
	TagXMLQueryExpr         Tag = 'q'
	TagCommaExpr            Tag = 'r'
	TagDebuggerStatement    Tag = 's'
)

var tagNames = map[Tag]string{
	TagEmpty:                 "Empty",
	TagArgumentList:          "ArgumentList",
	TagArrayExpr:             "ArrayExpr",
	TagAssignmentExpr:        "AssignmentExpr",
	TagBinaryExpr:            "BinaryExpr",
	TagBreakStatement:        "BreakStatement",
	TagCallExpr:              "CallExpr",
	TagContinueStatement:     "ContinueStatement",
	TagDeleteExpr:            "DeleteExpr",
	TagDoWhileStatement:      "DoWhileStatement",
	TagExprStatement:         "ExprStatement",
	TagForStatement:          "ForStatement",
	TagForInStatement:        "ForInStatement",
	TagFunctionDeclaration:   "FunctionDeclaration",
	TagFunctionExpr:          "FunctionExpr",
	TagIdNode:                "IdNode",
	TagIfStatement:           "IfStatement",
	TagIncrementExpr:         "IncrementExpr",
	TagIndexingExpr:          "IndexingExpr",
	TagIndexingIncrementExpr: "IndexingIncrementExpr",
	TagIdRefExpr:             "IdRefExpr",
	TagLogicalExpr:           "LogicalExpr",
	TagMemberAssignmentExpr:  "MemberAssignmentExpr",
	TagObjectExpr:            "ObjectExpr",
	TagProgram:               "Program",
	TagRegExpLiteral:         "RegExpLiteral",
	TagReturnStatement:       "ReturnStatement",
	TagSetConstantStatement:  "SetConstantStatement",
	TagStatementList:         "StatementList",
	TagSwitchStatement:       "SwitchStatement",
	TagThisExpr:              "ThisExpr",
	TagThrowStatement:        "ThrowStatement",
	TagTryStatement:          "TryStatement",
	TagTernaryExpr:           "TernaryExpr",
	TagUnaryExpr:             "UnaryExpr",
	TagValueNode:             "ValueNode",
	TagVoidExpr:              "VoidExpr",
	TagWhileStatement:        "WhileStatement",
	TagWithStatement:         "WithStatement",
	TagXMLAccessorExpr:       "XMLAccessorExpr",
	TagXMLLiteralExpr:        "XMLLiteralExpr",
	TagXMLDescendantsExpr:    "XMLDescendantsExpr",
	TagXMLNamespaceExpr:      "XMLNamespaceExpr",
	TagXMLQueryExpr:          "XMLQueryExpr",
	TagCommaExpr:             "CommaExpr",
	TagDebuggerStatement:     "DebuggerStatement",
}

// String returns the node kind name for the tag.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(0x%02X)", byte(t))
}
