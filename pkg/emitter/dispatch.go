package emitter

import "github.com/cwbudde/citogo/internal/ast"

// WrapParen runs body (expected to write one expression's text), surrounding
// it with parentheses iff nodePriority is strictly less than parentPriority:
// a node whose own precedence is looser than the context it's embedded in
// needs parentheses to preserve grouping.
func WrapParen(w *Writer, nodePriority, parentPriority ast.Priority, body func()) {
	wrap := nodePriority < parentPriority
	if wrap {
		w.WriteByte('(')
	}
	body()
	if wrap {
		w.WriteByte(')')
	}
}

// EmitExpr dispatches to e's AcceptExpr under visitor v with parentPriority,
// the entry point a backend's statement-emission code calls for every
// child expression it prints.
func EmitExpr(v ast.ExprVisitor, e ast.Expression, parentPriority ast.Priority) {
	if e == nil {
		return
	}
	e.AcceptExpr(v, parentPriority)
}
