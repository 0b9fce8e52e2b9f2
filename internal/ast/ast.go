// Package ast defines the resolved abstract syntax tree the code
// generation core consumes. Nodes are produced by an external parser and
// annotated by an external semantic analyzer; by the time a Program
// reaches this package every expression carries a non-nil Type and every
// back-reference (Parent, Symbol) has already been filled in. Generation
// only ever reads these nodes.
package ast

import "fmt"

// Position identifies a location in an input-language source file:
// Line, Column, and byte Offset, plus the source File path. String()
// renders "path(line)", the prefix of the "path(line): ERROR: msg"
// diagnostic form, or "line:col" when File is empty.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s(%d)", p.File, p.Line)
}

// Node is the base interface every AST node implements.
type Node interface {
	Pos() Position
}

// Expression is any node that produces a value. Every Expression carries
// a non-nil resolved Type by the time it reaches this package.
type Expression interface {
	Node
	ExprType() Type
	AcceptExpr(v ExprVisitor, parentPriority Priority) Expression
	Priority() Priority
}

// Statement is any node that performs an action without producing a
// value.
type Statement interface {
	Node
	AcceptStmt(v StmtVisitor)
}

// BaseNode carries the source position shared by every concrete node and
// is embedded rather than satisfying Node on its own.
type BaseNode struct {
	Position Position
}

func (b BaseNode) Pos() Position { return b.Position }

// Program is the root of the resolved AST: an ordered sequence of
// top-level declarations plus the embedded-resource table.
type Program struct {
	Decls     []TopLevelDecl
	Resources map[string][]byte
}

func (p *Program) Pos() Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return Position{}
}

// TopLevelDecl is implemented by EnumDecl and ClassDecl, the only two
// kinds of top-level declaration.
type TopLevelDecl interface {
	Node
	topLevelDecl()
}
