package emitter

import (
	"testing"

	"github.com/cwbudde/citogo/internal/ast"
)

func TestWrapParenOnlyWhenLowerPrecedence(t *testing.T) {
	w := New("")
	WrapParen(w, ast.PriorityAdditive, ast.PriorityMultiplicative, func() {
		w.WriteString("a + b")
	})
	if w.String() != "(a + b)" {
		t.Errorf("got %q, want parenthesized", w.String())
	}

	w2 := New("")
	WrapParen(w2, ast.PriorityMultiplicative, ast.PriorityAdditive, func() {
		w2.WriteString("a * b")
	})
	if w2.String() != "a * b" {
		t.Errorf("got %q, want unparenthesized", w2.String())
	}
}
