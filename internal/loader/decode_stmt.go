package loader

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/citogo/internal/ast"
)

type wireStmt struct {
	Kind string  `json:"kind"`
	Pos  wirePos `json:"pos"`

	Stmts []json.RawMessage `json:"stmts,omitempty"`

	Name string          `json:"name,omitempty"`
	Type json.RawMessage `json:"type,omitempty"`
	Init json.RawMessage `json:"init,omitempty"`

	Target json.RawMessage `json:"target,omitempty"`
	Op     string          `json:"op,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`

	Cond json.RawMessage `json:"cond,omitempty"`
	Then json.RawMessage `json:"then,omitempty"`
	Else json.RawMessage `json:"else,omitempty"`
	Body json.RawMessage `json:"body,omitempty"`

	Post json.RawMessage `json:"post,omitempty"`

	Var1       string          `json:"var1,omitempty"`
	Var2       string          `json:"var2,omitempty"`
	Var1Type   json.RawMessage `json:"var1Type,omitempty"`
	Var2Type   json.RawMessage `json:"var2Type,omitempty"`
	Collection json.RawMessage `json:"collection,omitempty"`

	Discriminant json.RawMessage   `json:"discriminant,omitempty"`
	Cases        []wireSwitchCase  `json:"cases,omitempty"`
	Default      []json.RawMessage `json:"default,omitempty"`
	IsString     bool              `json:"isString,omitempty"`

	Message json.RawMessage `json:"message,omitempty"`
	Expr    json.RawMessage `json:"expr,omitempty"`
}

type wireSwitchCase struct {
	Values []json.RawMessage `json:"values"`
	Body   []json.RawMessage `json:"body"`
}

func (d *decoder) stmtOpt(raw json.RawMessage) (ast.Statement, error) {
	if raw == nil {
		return nil, nil
	}
	return d.stmt(raw)
}

func (d *decoder) stmtList(raws []json.RawMessage) ([]ast.Statement, error) {
	out := make([]ast.Statement, len(raws))
	for i, r := range raws {
		s, err := d.stmt(r)
		if err != nil {
			return nil, fmt.Errorf("stmts[%d]: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func (d *decoder) exprList(raws []json.RawMessage) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(raws))
	for i, r := range raws {
		e, err := d.expr(r)
		if err != nil {
			return nil, fmt.Errorf("exprs[%d]: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

func (d *decoder) stmt(raw json.RawMessage) (ast.Statement, error) {
	var w wireStmt
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("stmt: %w", err)
	}
	base := ast.BaseNode{Position: w.Pos.toAST()}

	switch w.Kind {
	case "block":
		stmts, err := d.stmtList(w.Stmts)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{BaseNode: base, Stmts: stmts}, nil
	case "var":
		t, err := d.typ(w.Type)
		if err != nil {
			return nil, fmt.Errorf("var %s: %w", w.Name, err)
		}
		init, err := d.exprOpt(w.Init)
		if err != nil {
			return nil, fmt.Errorf("var %s init: %w", w.Name, err)
		}
		return &ast.VarStmt{BaseNode: base, Name: w.Name, Type: t, Init: init}, nil
	case "assign":
		target, err := d.expr(w.Target)
		if err != nil {
			return nil, fmt.Errorf("assign target: %w", err)
		}
		value, err := d.expr(w.Value)
		if err != nil {
			return nil, fmt.Errorf("assign value: %w", err)
		}
		return &ast.AssignStmt{BaseNode: base, Target: target, Op: ast.AssignOp(w.Op), Value: value}, nil
	case "if":
		cond, err := d.expr(w.Cond)
		if err != nil {
			return nil, fmt.Errorf("if cond: %w", err)
		}
		then, err := d.stmt(w.Then)
		if err != nil {
			return nil, fmt.Errorf("if then: %w", err)
		}
		els, err := d.stmtOpt(w.Else)
		if err != nil {
			return nil, fmt.Errorf("if else: %w", err)
		}
		return &ast.IfStmt{BaseNode: base, Cond: cond, Then: then, Else: els}, nil
	case "while":
		cond, err := d.expr(w.Cond)
		if err != nil {
			return nil, fmt.Errorf("while cond: %w", err)
		}
		body, err := d.stmt(w.Body)
		if err != nil {
			return nil, fmt.Errorf("while body: %w", err)
		}
		return &ast.WhileStmt{BaseNode: base, Cond: cond, Body: body}, nil
	case "dowhile":
		body, err := d.stmt(w.Body)
		if err != nil {
			return nil, fmt.Errorf("dowhile body: %w", err)
		}
		cond, err := d.expr(w.Cond)
		if err != nil {
			return nil, fmt.Errorf("dowhile cond: %w", err)
		}
		return &ast.DoWhileStmt{BaseNode: base, Body: body, Cond: cond}, nil
	case "for":
		initStmt, err := d.stmtOpt(w.Init)
		if err != nil {
			return nil, fmt.Errorf("for init: %w", err)
		}
		cond, err := d.expr(w.Cond)
		if err != nil {
			return nil, fmt.Errorf("for cond: %w", err)
		}
		post, err := d.stmtOpt(w.Post)
		if err != nil {
			return nil, fmt.Errorf("for post: %w", err)
		}
		body, err := d.stmt(w.Body)
		if err != nil {
			return nil, fmt.Errorf("for body: %w", err)
		}
		return &ast.ForStmt{BaseNode: base, Init: initStmt, Cond: cond, Post: post, Body: body}, nil
	case "foreach":
		v1t, err := d.typ(w.Var1Type)
		if err != nil {
			return nil, fmt.Errorf("foreach var1Type: %w", err)
		}
		v2t, err := d.typ(w.Var2Type)
		if err != nil {
			return nil, fmt.Errorf("foreach var2Type: %w", err)
		}
		coll, err := d.expr(w.Collection)
		if err != nil {
			return nil, fmt.Errorf("foreach collection: %w", err)
		}
		body, err := d.stmt(w.Body)
		if err != nil {
			return nil, fmt.Errorf("foreach body: %w", err)
		}
		return &ast.ForeachStmt{
			BaseNode: base, Var1: w.Var1, Var2: w.Var2, Var1Type: v1t, Var2Type: v2t,
			Collection: coll, Body: body,
		}, nil
	case "switch":
		disc, err := d.expr(w.Discriminant)
		if err != nil {
			return nil, fmt.Errorf("switch discriminant: %w", err)
		}
		cases := make([]ast.SwitchCase, len(w.Cases))
		for i, c := range w.Cases {
			values, err := d.exprList(c.Values)
			if err != nil {
				return nil, fmt.Errorf("switch case[%d] values: %w", i, err)
			}
			body, err := d.stmtList(c.Body)
			if err != nil {
				return nil, fmt.Errorf("switch case[%d] body: %w", i, err)
			}
			cases[i] = ast.SwitchCase{Values: values, Body: body}
		}
		var def []ast.Statement
		if w.Default != nil {
			var err error
			def, err = d.stmtList(w.Default)
			if err != nil {
				return nil, fmt.Errorf("switch default: %w", err)
			}
		}
		return &ast.SwitchStmt{BaseNode: base, Discriminant: disc, Cases: cases, Default: def, IsString: w.IsString}, nil
	case "break":
		return &ast.BreakStmt{BaseNode: base}, nil
	case "continue":
		return &ast.ContinueStmt{BaseNode: base}, nil
	case "return":
		val, err := d.exprOpt(w.Value)
		if err != nil {
			return nil, fmt.Errorf("return value: %w", err)
		}
		return &ast.ReturnStmt{BaseNode: base, Value: val}, nil
	case "throw":
		val, err := d.expr(w.Value)
		if err != nil {
			return nil, fmt.Errorf("throw value: %w", err)
		}
		return &ast.ThrowStmt{BaseNode: base, Value: val}, nil
	case "lock":
		target, err := d.expr(w.Target)
		if err != nil {
			return nil, fmt.Errorf("lock target: %w", err)
		}
		body, err := d.stmt(w.Body)
		if err != nil {
			return nil, fmt.Errorf("lock body: %w", err)
		}
		return &ast.LockStmt{BaseNode: base, Target: target, Body: body}, nil
	case "assert":
		cond, err := d.expr(w.Cond)
		if err != nil {
			return nil, fmt.Errorf("assert cond: %w", err)
		}
		msg, err := d.exprOpt(w.Message)
		if err != nil {
			return nil, fmt.Errorf("assert message: %w", err)
		}
		return &ast.AssertStmt{BaseNode: base, Cond: cond, Message: msg}, nil
	case "expr":
		e, err := d.expr(w.Expr)
		if err != nil {
			return nil, fmt.Errorf("expr stmt: %w", err)
		}
		return &ast.ExprStmt{BaseNode: base, Expr: e}, nil
	case "const":
		t, err := d.typ(w.Type)
		if err != nil {
			return nil, fmt.Errorf("const %s: %w", w.Name, err)
		}
		val, err := d.expr(w.Value)
		if err != nil {
			return nil, fmt.Errorf("const %s value: %w", w.Name, err)
		}
		return &ast.ConstStmt{BaseNode: base, Name: w.Name, Type: t, Value: val}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind %q", w.Kind)
	}
}
