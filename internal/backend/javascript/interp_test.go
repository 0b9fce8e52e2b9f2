package javascript

import (
	"testing"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/pkg/emitter"
)

func render(n *ast.InterpolatedStringExpr) string {
	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}}
	b.emitInterpolated(n)
	return b.w.String()
}

func TestEmitInterpolatedPlainLiteral(t *testing.T) {
	n := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{{Literal: "hello "}, {Arg: sym("name")}}}
	got := render(n)
	want := "`hello ${name}`"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitInterpolatedEscapesBacktickAndDollarBrace(t *testing.T) {
	n := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{{Literal: "cost: `${x}`"}}}
	got := render(n)
	want := "`cost: \\`\\${x}\\``"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func intPtr(v int) *int { return &v }

func TestEmitInterpolatedFixedPrecision(t *testing.T) {
	n := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{
		{Arg: sym("pi"), Format: 'f', Precision: intPtr(2)},
	}}
	got := render(n)
	want := "`${pi.toFixed(2)}`"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitInterpolatedHexUppercasePadded(t *testing.T) {
	n := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{
		{Arg: sym("code"), Format: 'X', Precision: intPtr(4)},
	}}
	got := render(n)
	want := "`${code.toString(16).toUpperCase().padStart(4, \"0\")}`"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitInterpolatedWidthPadding(t *testing.T) {
	positive := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{{Arg: sym("name"), Width: intPtr(10)}}}
	if got, want := render(positive), "`${name.padStart(10)}`"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	negative := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{{Arg: sym("name"), Width: intPtr(-10)}}}
	if got, want := render(negative), "`${name.padEnd(10)}`"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
