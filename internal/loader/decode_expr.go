package loader

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/citogo/internal/ast"
)

// wireExpr is the union of every expression kind's fields; unused
// fields per kind stay zero. Mirrors the corresponding ast node 1:1.
type wireExpr struct {
	Kind string  `json:"kind"`
	Pos  wirePos `json:"pos"`
	Type json.RawMessage `json:"type,omitempty"`

	// literals
	IntValue    int64   `json:"value,omitempty"`
	FloatValue  float64 `json:"floatValue,omitempty"`
	StringValue string  `json:"stringValue,omitempty"`
	CharValue   string  `json:"charValue,omitempty"` // single rune, decoded
	BoolValue   bool    `json:"boolValue,omitempty"`

	// symbol
	Chain []string `json:"chain,omitempty"`

	// binary / unary / cond
	Op       string          `json:"op,omitempty"`
	Left     json.RawMessage `json:"left,omitempty"`
	Right    json.RawMessage `json:"right,omitempty"`
	Operand  json.RawMessage `json:"operand,omitempty"`
	Postfix  bool            `json:"postfix,omitempty"`
	Cond     json.RawMessage `json:"cond,omitempty"`
	Then     json.RawMessage `json:"then,omitempty"`
	Else     json.RawMessage `json:"else,omitempty"`

	// call / index
	Callee       json.RawMessage   `json:"callee,omitempty"`
	Args         []json.RawMessage `json:"args,omitempty"`
	ReceiverType json.RawMessage   `json:"receiverType,omitempty"`
	Target       json.RawMessage   `json:"target,omitempty"`
	Index        json.RawMessage   `json:"index,omitempty"`

	// interpolated string
	Parts []wireInterpPart `json:"parts,omitempty"`

	// array literal
	Elements []json.RawMessage `json:"elements,omitempty"`
}

type wireInterpPart struct {
	Literal   string          `json:"literal,omitempty"`
	Arg       json.RawMessage `json:"arg,omitempty"`
	Width     *int            `json:"width,omitempty"`
	Format    string          `json:"format,omitempty"`
	Precision *int            `json:"precision,omitempty"`
}

func (d *decoder) exprOpt(raw json.RawMessage) (ast.Expression, error) {
	if raw == nil {
		return nil, nil
	}
	return d.expr(raw)
}

func (d *decoder) expr(raw json.RawMessage) (ast.Expression, error) {
	var w wireExpr
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}

	t, err := d.typ(w.Type)
	if err != nil {
		return nil, fmt.Errorf("expr %s: %w", w.Kind, err)
	}
	base := ast.BaseNode{Position: w.Pos.toAST()}

	switch w.Kind {
	case "int":
		lit := &ast.IntLiteral{Value: w.IntValue}
		lit.Position, lit.Type = base.Position, t
		return lit, nil
	case "float":
		lit := &ast.FloatLiteral{Value: w.FloatValue}
		lit.Position, lit.Type = base.Position, t
		return lit, nil
	case "string":
		lit := &ast.StringLiteral{Value: w.StringValue}
		lit.Position, lit.Type = base.Position, t
		return lit, nil
	case "char":
		r := rune(0)
		for _, c := range w.CharValue {
			r = c
			break
		}
		lit := &ast.CharLiteral{Value: r}
		lit.Position, lit.Type = base.Position, t
		return lit, nil
	case "bool":
		lit := &ast.BoolLiteral{Value: w.BoolValue}
		lit.Position, lit.Type = base.Position, t
		return lit, nil
	case "null":
		lit := &ast.NullLiteral{}
		lit.Position, lit.Type = base.Position, t
		return lit, nil
	case "symbol":
		return &ast.SymbolExpr{BaseNode: base, Chain: w.Chain, Type: t}, nil
	case "binary":
		left, err := d.expr(w.Left)
		if err != nil {
			return nil, fmt.Errorf("binary left: %w", err)
		}
		right, err := d.expr(w.Right)
		if err != nil {
			return nil, fmt.Errorf("binary right: %w", err)
		}
		return &ast.BinaryExpr{BaseNode: base, Op: ast.BinaryOp(w.Op), Left: left, Right: right, Type: t}, nil
	case "unary":
		operand, err := d.expr(w.Operand)
		if err != nil {
			return nil, fmt.Errorf("unary operand: %w", err)
		}
		return &ast.UnaryExpr{BaseNode: base, Op: ast.UnaryOp(w.Op), Operand: operand, Postfix: w.Postfix, Type: t}, nil
	case "cond":
		cond, err := d.expr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := d.expr(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := d.expr(w.Else)
		if err != nil {
			return nil, err
		}
		return &ast.CondExpr{BaseNode: base, Cond: cond, Then: then, Else: els, Type: t}, nil
	case "call":
		callee, err := d.expr(w.Callee)
		if err != nil {
			return nil, fmt.Errorf("call callee: %w", err)
		}
		args := make([]ast.Expression, len(w.Args))
		for i, a := range w.Args {
			args[i], err = d.expr(a)
			if err != nil {
				return nil, fmt.Errorf("call arg[%d]: %w", i, err)
			}
		}
		recv, err := d.typ(w.ReceiverType)
		if err != nil {
			return nil, fmt.Errorf("call receiverType: %w", err)
		}
		return &ast.CallExpr{BaseNode: base, Callee: callee, Args: args, Type: t, ReceiverType: recv}, nil
	case "index":
		target, err := d.expr(w.Target)
		if err != nil {
			return nil, fmt.Errorf("index target: %w", err)
		}
		idx, err := d.expr(w.Index)
		if err != nil {
			return nil, fmt.Errorf("index index: %w", err)
		}
		return &ast.IndexExpr{BaseNode: base, Target: target, Index: idx, Type: t}, nil
	case "interp":
		parts := make([]ast.InterpPart, len(w.Parts))
		for i, p := range w.Parts {
			var format byte
			if len(p.Format) > 0 {
				format = p.Format[0]
			}
			arg, err := d.exprOpt(p.Arg)
			if err != nil {
				return nil, fmt.Errorf("interp part[%d]: %w", i, err)
			}
			parts[i] = ast.InterpPart{Literal: p.Literal, Arg: arg, Width: p.Width, Format: format, Precision: p.Precision}
		}
		return &ast.InterpolatedStringExpr{BaseNode: base, Parts: parts, Type: t}, nil
	case "arraylit":
		elems := make([]ast.Expression, len(w.Elements))
		for i, e := range w.Elements {
			var err error
			elems[i], err = d.expr(e)
			if err != nil {
				return nil, fmt.Errorf("arraylit elem[%d]: %w", i, err)
			}
		}
		return &ast.ArrayLiteralExpr{BaseNode: base, Elements: elems, Type: t}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", w.Kind)
	}
}
