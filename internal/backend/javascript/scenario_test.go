package javascript

import (
	"strings"
	"testing"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/pkg/emitter"
)

func uintType() ast.Type { return &ast.RangeType{Name: "uint", LowBound: 0, HighBound: 4294967295} }

func exprString(e ast.Expression) string {
	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}}
	emitter.EmitExpr(b, e, ast.PriorityStatement)
	return b.w.String()
}

// TestScenarioUnsignedMultiplyTruncates checks `a * 2u` always recovers
// through `| 0` regardless of signedness, relying on later `>>> 0` reads
// to reinterpret the bit pattern.
func TestScenarioUnsignedMultiplyTruncates(t *testing.T) {
	a := &ast.SymbolExpr{Chain: []string{"a"}, Type: uintType()}
	two := &ast.IntLiteral{Value: 2}
	two.Type = uintType()

	mul := &ast.BinaryExpr{Op: ast.OpMul, Left: a, Right: two, Type: uintType()}
	got := exprString(mul)
	want := "(a * 2 | 0)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestScenarioUnsignedComparisonRecoversViaShr0 checks `a < b` on
// unsigned-32 operands becomes `(a >>> 0) < (b >>> 0)`.
func TestScenarioUnsignedComparisonRecoversViaShr0(t *testing.T) {
	a := &ast.SymbolExpr{Chain: []string{"a"}, Type: uintType()}
	bb := &ast.SymbolExpr{Chain: []string{"b"}, Type: uintType()}

	cmp := &ast.BinaryExpr{Op: ast.OpLess, Left: a, Right: bb, Type: &ast.BoolType{}}
	got := exprString(cmp)
	want := "(a >>> 0) < (b >>> 0)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestScenarioInterpolatedHexWidthAndPadding checks `$"x={x,5:X2}"` with
// integer x chains .toString(16).toUpperCase().padStart(2, "0").padStart(5).
func TestScenarioInterpolatedHexWidthAndPadding(t *testing.T) {
	n := &ast.InterpolatedStringExpr{Parts: []ast.InterpPart{
		{Literal: "x="},
		{Arg: sym("x"), Width: intPtr(5), Format: 'X', Precision: intPtr(2)},
	}}
	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}}
	b.emitInterpolated(n)
	got := b.w.String()
	want := "`x=${x.toString(16).toUpperCase().padStart(2, \"0\").padStart(5)}`"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestScenarioClassWithBaseEmitsPrototypeChain checks a class Foo with
// base Bar and instance method baz emits the prototype-chain wiring.
func TestScenarioClassWithBaseEmitsPrototypeChain(t *testing.T) {
	bar := &ast.ClassDecl{Name: "Bar"}
	foo := &ast.ClassDecl{
		Name:     "Foo",
		BaseName: "Bar",
		Base:     bar,
		Methods: []ast.MethodDecl{{
			Name: "baz",
			Body: &ast.BlockStmt{},
		}},
	}

	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}}
	b.emitClass(foo)
	got := b.w.String()

	for _, want := range []string{
		"function Foo() {",
		"Foo.prototype = new Bar();",
		"Foo.prototype.baz = function() {",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; got:\n%s", want, got)
		}
	}
}

// TestScenarioSortedDictionaryForeachShape checks a two-variable foreach
// over a SortedDictionary<int, string> emits the entries/map/sort chain
// with numeric key coercion.
func TestScenarioSortedDictionaryForeachShape(t *testing.T) {
	stmt := &ast.ForeachStmt{
		Var1: "k", Var2: "v",
		Var1Type:   &ast.PrimitiveType{Kind: ast.Int32},
		Var2Type:   &ast.StringType{},
		Collection: &ast.SymbolExpr{Chain: []string{"d"}, Type: &ast.SortedDictionaryType{Key: &ast.PrimitiveType{Kind: ast.Int32}, Value: &ast.StringType{}}},
		Body:       &ast.BlockStmt{},
	}

	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}}
	b.VisitForeachStmt(stmt)
	got := b.w.String()

	want := "for (const [k, v] of Object.entries(d).map(e => [+e[0], e[1]]).sort((a, b) => a[0] - b[0])) {"
	if !strings.Contains(got, want) {
		t.Errorf("output missing %q; got:\n%s", want, got)
	}
}

// TestScenarioResourcePositionedAfterHelpers checks a byte[] resource
// appears in the trailing Ci object after every helper, mangled and
// sorted.
func TestScenarioResourcePositionedAfterHelpers(t *testing.T) {
	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}, resources: map[string][]byte{
		"data/tile.bin": {0x01, 0x02},
	}}
	b.registerHelper("regexEscape")
	b.emitHelpersAndResources()
	got := b.w.String()

	helperIdx := strings.Index(got, "regexEscape:")
	resourceIdx := strings.Index(got, "data_tile_bin: new Uint8Array")
	if helperIdx == -1 {
		t.Fatalf("helper entry missing; got:\n%s", got)
	}
	if resourceIdx == -1 {
		t.Fatalf("resource entry missing; got:\n%s", got)
	}
	if resourceIdx < helperIdx {
		t.Errorf("resource entry (%d) appears before helper entry (%d)", resourceIdx, helperIdx)
	}
}
