package javascript

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/citogo/internal/ast"
)

func i32() ast.Type { return &ast.PrimitiveType{Kind: ast.Int32} }

func sym(chain ...string) *ast.SymbolExpr { return &ast.SymbolExpr{Chain: chain, Type: i32()} }

func intLit(v int64) *ast.IntLiteral {
	lit := &ast.IntLiteral{Value: v}
	lit.Type = i32()
	return lit
}

// samplePoint builds a small base-less Point class whose constructor
// assigns two fields and whose Sum method reads them back.
func samplePoint() *ast.ClassDecl {
	ctor := ast.MethodDecl{
		Name:          "Point",
		IsConstructor: true,
		Params:        []ast.Param{{Name: "x", Type: i32()}, {Name: "y", Type: i32()}},
		Body: &ast.BlockStmt{Stmts: []ast.Statement{
			&ast.AssignStmt{Target: sym("this", "x"), Op: ast.AssignPlain, Value: sym("x")},
			&ast.AssignStmt{Target: sym("this", "y"), Op: ast.AssignPlain, Value: sym("y")},
		}},
	}
	sum := ast.MethodDecl{
		Name:       "Sum",
		ReturnType: i32(),
		Body: &ast.BlockStmt{Stmts: []ast.Statement{
			&ast.ReturnStmt{Value: &ast.BinaryExpr{
				Op: ast.OpAdd, Left: sym("this", "x"), Right: sym("this", "y"), Type: i32(),
			}},
		}},
	}
	return &ast.ClassDecl{
		Name: "Point",
		Fields: []ast.FieldDecl{
			{Name: "x", Type: i32(), Init: intLit(0)},
			{Name: "y", Type: i32(), Init: intLit(0)},
		},
		Methods: []ast.MethodDecl{ctor, sum},
	}
}

func sampleColor() *ast.EnumDecl {
	return &ast.EnumDecl{
		Name: "Color",
		Members: []ast.EnumMember{
			{Name: "Red", Value: 0},
			{Name: "Green", Value: 1},
			{Name: "Blue", Value: 2},
		},
	}
}

func TestBackendWriteClassAndEnum(t *testing.T) {
	program := &ast.Program{Decls: []ast.TopLevelDecl{sampleColor(), samplePoint()}}

	var buf bytes.Buffer
	be := New()
	if err := be.Write(&buf, program, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	snaps.MatchSnapshot(t, buf.String())
}

// TestBackendWriteStringSwitchLabel exercises the ciafterswitchN rewrite:
// a string switch whose case body breaks out of an enclosing loop needs a
// label to stand in for the switch a native `break` would otherwise have
// targeted.
func TestBackendWriteStringSwitchLabel(t *testing.T) {
	loop := &ast.WhileStmt{
		Cond: &ast.BoolLiteral{Value: true},
		Body: &ast.BlockStmt{Stmts: []ast.Statement{
			&ast.SwitchStmt{
				IsString:     true,
				Discriminant: &ast.SymbolExpr{Chain: []string{"s"}, Type: &ast.StringType{}},
				Cases: []ast.SwitchCase{
					{
						Values: []ast.Expression{&ast.StringLiteral{Value: "a"}},
						Body:   []ast.Statement{&ast.BreakStmt{}},
					},
				},
			},
		}},
	}

	class := &ast.ClassDecl{
		Name: "Scanner",
		Methods: []ast.MethodDecl{{
			Name:   "Run",
			Params: []ast.Param{{Name: "s", Type: &ast.StringType{}}},
			Body:   &ast.BlockStmt{Stmts: []ast.Statement{loop}},
		}},
	}

	var buf bytes.Buffer
	be := New()
	if err := be.Write(&buf, &ast.Program{Decls: []ast.TopLevelDecl{class}}, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	snaps.MatchSnapshot(t, buf.String())
}

// TestBackendWriteRendersDocComments checks that a Doc attached to an enum,
// a class, a field, a const, and a method each surface as a leading comment
// block ahead of the declaration they document.
func TestBackendWriteRendersDocComments(t *testing.T) {
	summaryDoc := func(s string) *ast.CiCodeDoc { return &ast.CiCodeDoc{Summary: s} }

	color := sampleColor()
	color.Doc = summaryDoc("The primary colors.")

	point := samplePoint()
	point.Doc = summaryDoc("A point in 2D space.")
	point.Fields[0].Doc = summaryDoc("Horizontal offset.")
	point.Consts = []ast.ConstDecl{
		{Name: "Origin", Type: i32(), Value: intLit(0), Visibility: ast.VisibilityPublic, Doc: summaryDoc("The zero point.")},
	}
	point.Methods[1].Doc = summaryDoc("Returns x plus y.")

	var buf bytes.Buffer
	be := New()
	if err := be.Write(&buf, &ast.Program{Decls: []ast.TopLevelDecl{color, point}}, ""); err != nil {
		t.Fatalf("Write: %v", err)
	}

	snaps.MatchSnapshot(t, buf.String())
}
