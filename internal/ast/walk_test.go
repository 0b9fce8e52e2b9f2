package ast

import "testing"

type collector struct {
	names []string
}

func (c *collector) Visit(node Node) Visitor {
	switch n := node.(type) {
	case *SymbolExpr:
		c.names = append(c.names, n.Name())
	case *CallExpr:
		c.names = append(c.names, "<call>")
	}
	return c
}

func TestWalkVisitsNestedExpressions(t *testing.T) {
	call := &CallExpr{
		Callee: &SymbolExpr{Chain: []string{"Console", "WriteLine"}},
		Args: []Expression{
			&SymbolExpr{Chain: []string{"x"}},
			&BinaryExpr{
				Op:    OpAdd,
				Left:  &SymbolExpr{Chain: []string{"a"}},
				Right: &SymbolExpr{Chain: []string{"b"}},
			},
		},
	}
	block := &BlockStmt{Stmts: []Statement{&ExprStmt{Expr: call}}}

	c := &collector{}
	Walk(c, block)

	want := []string{"<call>", "WriteLine", "x", "a", "b"}
	if len(c.names) != len(want) {
		t.Fatalf("got %v, want %v", c.names, want)
	}
	for i := range want {
		if c.names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, c.names[i], want[i])
		}
	}
}

func TestWalkStopsWhenVisitorReturnsNil(t *testing.T) {
	ifStmt := &IfStmt{
		Cond: &BoolLiteral{Value: true},
		Then: &BlockStmt{Stmts: []Statement{
			&ExprStmt{Expr: &SymbolExpr{Chain: []string{"shouldNotVisit"}}},
		}},
	}

	visited := 0
	var v visitFunc
	v = func(node Node) Visitor {
		visited++
		if _, ok := node.(*BlockStmt); ok {
			return nil
		}
		return v
	}
	Walk(v, ifStmt)

	// IfStmt, its Cond literal, and the Then block itself are visited;
	// returning nil for the block prunes its nested ExprStmt.
	if visited != 3 {
		t.Fatalf("visited = %d, want 3 (IfStmt, Cond, Then block; Then's children pruned)", visited)
	}
}

type visitFunc func(node Node) Visitor

func (f visitFunc) Visit(node Node) Visitor { return f(node) }
