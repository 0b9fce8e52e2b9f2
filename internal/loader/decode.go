package loader

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/citogo/internal/ast"
)

// decoder accumulates the class/enum registries needed to resolve the
// AST's cyclic back-references (class ↔ method ↔
// parameter-typed-as-class) once every top-level
// declaration has been decoded once, forward references included.
type decoder struct {
	classesByName map[string]*ast.ClassDecl
	enumsByName   map[string]*ast.EnumDecl

	pendingClassBase []pendingClassBase
	pendingClassType []pendingClassType
	pendingEnumType  []pendingEnumType
}

type pendingClassBase struct {
	decl *ast.ClassDecl
	name string
}

type pendingClassType struct {
	t    *ast.ClassType
	name string
}

type pendingEnumType struct {
	t    *ast.EnumType
	name string
}

func newDecoder() *decoder {
	return &decoder{
		classesByName: map[string]*ast.ClassDecl{},
		enumsByName:   map[string]*ast.EnumDecl{},
	}
}

func (d *decoder) resolveBackReferences() error {
	for _, p := range d.pendingClassBase {
		base, ok := d.classesByName[p.name]
		if !ok {
			return fmt.Errorf("class %q: unknown base class %q", p.decl.Name, p.name)
		}
		p.decl.Base = base
	}
	for _, p := range d.pendingClassType {
		decl, ok := d.classesByName[p.name]
		if !ok {
			return fmt.Errorf("unknown class type %q", p.name)
		}
		p.t.Decl = decl
	}
	for _, p := range d.pendingEnumType {
		decl, ok := d.enumsByName[p.name]
		if !ok {
			return fmt.Errorf("unknown enum type %q", p.name)
		}
		p.t.Decl = decl
	}
	return nil
}

// wirePos mirrors ast.Position.
type wirePos struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

func (p wirePos) toAST() ast.Position {
	return ast.Position{File: p.File, Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// kindOf peeks at the discriminator field every wire node carries.
func kindOf(raw json.RawMessage) (string, error) {
	var k struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &k); err != nil {
		return "", err
	}
	if k.Kind == "" {
		return "", fmt.Errorf("missing \"kind\" discriminator")
	}
	return k.Kind, nil
}

// ---- Types ----------------------------------------------------------

type wireType struct {
	Kind     string     `json:"kind"`
	Prim     string     `json:"primitive,omitempty"`
	Name     string     `json:"name,omitempty"`
	Low      int64      `json:"low,omitempty"`
	High     int64      `json:"high,omitempty"`
	Elem     *wireType  `json:"elem,omitempty"`
	Key      *wireType  `json:"key,omitempty"`
	Value    *wireType  `json:"value,omitempty"`
	Length   int64      `json:"length,omitempty"`
	Class    *wireType  `json:"class,omitempty"`
}

func (d *decoder) typ(raw json.RawMessage) (ast.Type, error) {
	if raw == nil {
		return nil, nil
	}
	var w wireType
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	return d.typeFromWire(&w)
}

func (d *decoder) typeFromWire(w *wireType) (ast.Type, error) {
	switch w.Kind {
	case "primitive":
		return &ast.PrimitiveType{Kind: ast.PrimitiveKind(w.Prim)}, nil
	case "range":
		return &ast.RangeType{Name: w.Name, LowBound: w.Low, HighBound: w.High}, nil
	case "bool":
		return &ast.BoolType{}, nil
	case "string":
		return &ast.StringType{}, nil
	case "void":
		return &ast.VoidType{}, nil
	case "class":
		t := &ast.ClassType{Name: w.Name}
		d.pendingClassType = append(d.pendingClassType, pendingClassType{t: t, name: w.Name})
		return t, nil
	case "enum":
		t := &ast.EnumType{Name: w.Name}
		d.pendingEnumType = append(d.pendingEnumType, pendingEnumType{t: t, name: w.Name})
		return t, nil
	case "regex":
		return &ast.RegexType{}, nil
	case "list":
		elem, err := d.typeFromWireField(w.Elem)
		if err != nil {
			return nil, err
		}
		return &ast.ListType{Elem: elem}, nil
	case "stack":
		elem, err := d.typeFromWireField(w.Elem)
		if err != nil {
			return nil, err
		}
		return &ast.StackType{Elem: elem}, nil
	case "hashset":
		elem, err := d.typeFromWireField(w.Elem)
		if err != nil {
			return nil, err
		}
		return &ast.HashSetType{Elem: elem}, nil
	case "dictionary":
		key, err := d.typeFromWireField(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := d.typeFromWireField(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.DictionaryType{Key: key, Value: val}, nil
	case "sorteddictionary":
		key, err := d.typeFromWireField(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := d.typeFromWireField(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.SortedDictionaryType{Key: key, Value: val}, nil
	case "array":
		elem, err := d.typeFromWireField(w.Elem)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elem: elem, Length: w.Length}, nil
	case "arrayptr":
		elem, err := d.typeFromWireField(w.Elem)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayPtrType{Elem: elem}, nil
	case "classptr":
		classType, err := d.typeFromWireField(w.Class)
		if err != nil {
			return nil, err
		}
		ct, ok := classType.(*ast.ClassType)
		if !ok {
			return nil, fmt.Errorf("classptr: class field must be a class type")
		}
		return &ast.ClassPtrType{Class: ct}, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", w.Kind)
	}
}

func (d *decoder) typeFromWireField(w *wireType) (ast.Type, error) {
	if w == nil {
		return nil, fmt.Errorf("missing required type field")
	}
	return d.typeFromWire(w)
}

// ---- Top-level declarations ------------------------------------------

type wireEnumMember struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type wireEnumDecl struct {
	Kind    string           `json:"kind"`
	Pos     wirePos          `json:"pos"`
	Name    string           `json:"name"`
	Members []wireEnumMember `json:"members"`
	Doc     *wireCiCodeDoc   `json:"doc,omitempty"`
}

type wireDocRun struct {
	Text string `json:"text"`
	Code bool   `json:"code,omitempty"`
}

type wireDocList struct {
	Items [][]wireDocRun `json:"items"`
}

type wireDocBlock struct {
	Paragraph []wireDocRun `json:"paragraph,omitempty"`
	List      *wireDocList `json:"list,omitempty"`
}

type wireCiCodeDoc struct {
	Summary string         `json:"summary,omitempty"`
	Blocks  []wireDocBlock `json:"blocks,omitempty"`
}

func docRunsFromWire(runs []wireDocRun) []ast.DocRun {
	if runs == nil {
		return nil
	}
	out := make([]ast.DocRun, len(runs))
	for i, r := range runs {
		out[i] = ast.DocRun{Text: r.Text, Code: r.Code}
	}
	return out
}

func docFromWire(w *wireCiCodeDoc) *ast.CiCodeDoc {
	if w == nil {
		return nil
	}
	doc := &ast.CiCodeDoc{Summary: w.Summary}
	for _, b := range w.Blocks {
		switch {
		case b.List != nil:
			items := make([][]ast.DocRun, len(b.List.Items))
			for i, item := range b.List.Items {
				items[i] = docRunsFromWire(item)
			}
			doc.Blocks = append(doc.Blocks, ast.DocBlock{List: &ast.DocList{Items: items}})
		case b.Paragraph != nil:
			doc.Blocks = append(doc.Blocks, ast.DocBlock{Paragraph: &ast.DocParagraph{Runs: docRunsFromWire(b.Paragraph)}})
		}
	}
	return doc
}

type wireParam struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

type wireMethodDecl struct {
	Pos           wirePos         `json:"pos"`
	Name          string          `json:"name"`
	Params        []wireParam     `json:"params,omitempty"`
	ReturnType    json.RawMessage `json:"returnType,omitempty"`
	Body          json.RawMessage `json:"body,omitempty"`
	Visibility    string          `json:"visibility,omitempty"`
	IsStatic      bool            `json:"isStatic,omitempty"`
	IsAbstract    bool            `json:"isAbstract,omitempty"`
	IsConstructor bool            `json:"isConstructor,omitempty"`
	IsDestructor  bool            `json:"isDestructor,omitempty"`
	Doc           *wireCiCodeDoc  `json:"doc,omitempty"`
}

type wireFieldDecl struct {
	Name       string          `json:"name"`
	Type       json.RawMessage `json:"type"`
	Init       json.RawMessage `json:"init,omitempty"`
	Visibility string          `json:"visibility,omitempty"`
	Doc        *wireCiCodeDoc  `json:"doc,omitempty"`
}

type wireConstDecl struct {
	Name       string          `json:"name"`
	Type       json.RawMessage `json:"type"`
	Value      json.RawMessage `json:"value"`
	Visibility string          `json:"visibility,omitempty"`
	Doc        *wireCiCodeDoc  `json:"doc,omitempty"`
}

type wireArrayConstDecl struct {
	Name       string            `json:"name"`
	Type       json.RawMessage   `json:"type"`
	Elements   []json.RawMessage `json:"elements"`
	Visibility string            `json:"visibility,omitempty"`
}

type wireClassDecl struct {
	Kind        string               `json:"kind"`
	Pos         wirePos              `json:"pos"`
	Name        string               `json:"name"`
	BaseName    string               `json:"baseName,omitempty"`
	Fields      []wireFieldDecl      `json:"fields,omitempty"`
	Methods     []wireMethodDecl     `json:"methods,omitempty"`
	Consts      []wireConstDecl      `json:"consts,omitempty"`
	ArrayConsts []wireArrayConstDecl `json:"arrayConsts,omitempty"`
	Doc         *wireCiCodeDoc       `json:"doc,omitempty"`
}

func visibilityFromWire(s string) ast.Visibility {
	switch s {
	case "private":
		return ast.VisibilityPrivate
	case "protected":
		return ast.VisibilityProtected
	default:
		return ast.VisibilityPublic
	}
}

func (d *decoder) topLevelDecl(raw json.RawMessage) (ast.TopLevelDecl, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "enum":
		return d.enumDecl(raw)
	case "class":
		return d.classDecl(raw)
	default:
		return nil, fmt.Errorf("unknown top-level decl kind %q", kind)
	}
}

func (d *decoder) enumDecl(raw json.RawMessage) (*ast.EnumDecl, error) {
	var w wireEnumDecl
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("enum: %w", err)
	}
	decl := &ast.EnumDecl{
		BaseNode: ast.BaseNode{Position: w.Pos.toAST()},
		Name:     w.Name,
		Doc:      docFromWire(w.Doc),
	}
	decl.Members = make([]ast.EnumMember, len(w.Members))
	for i, m := range w.Members {
		decl.Members[i] = ast.EnumMember{Name: m.Name, Value: m.Value}
	}
	d.enumsByName[decl.Name] = decl
	return decl, nil
}

func (d *decoder) classDecl(raw json.RawMessage) (*ast.ClassDecl, error) {
	var w wireClassDecl
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("class: %w", err)
	}
	decl := &ast.ClassDecl{
		BaseNode: ast.BaseNode{Position: w.Pos.toAST()},
		Name:     w.Name,
		BaseName: w.BaseName,
		Doc:      docFromWire(w.Doc),
	}
	d.classesByName[decl.Name] = decl

	if w.BaseName != "" {
		d.pendingClassBase = append(d.pendingClassBase, pendingClassBase{decl: decl, name: w.BaseName})
	}

	for _, f := range w.Fields {
		t, err := d.typ(f.Type)
		if err != nil {
			return nil, fmt.Errorf("class %s field %s: %w", decl.Name, f.Name, err)
		}
		init, err := d.exprOpt(f.Init)
		if err != nil {
			return nil, fmt.Errorf("class %s field %s init: %w", decl.Name, f.Name, err)
		}
		decl.Fields = append(decl.Fields, ast.FieldDecl{
			Name: f.Name, Type: t, Init: init, Visibility: visibilityFromWire(f.Visibility), Doc: docFromWire(f.Doc),
		})
	}

	for _, c := range w.Consts {
		t, err := d.typ(c.Type)
		if err != nil {
			return nil, fmt.Errorf("class %s const %s: %w", decl.Name, c.Name, err)
		}
		val, err := d.expr(c.Value)
		if err != nil {
			return nil, fmt.Errorf("class %s const %s: %w", decl.Name, c.Name, err)
		}
		decl.Consts = append(decl.Consts, ast.ConstDecl{
			Name: c.Name, Type: t, Value: val, Visibility: visibilityFromWire(c.Visibility), Doc: docFromWire(c.Doc),
		})
	}

	for _, ac := range w.ArrayConsts {
		t, err := d.typ(ac.Type)
		if err != nil {
			return nil, fmt.Errorf("class %s array const %s: %w", decl.Name, ac.Name, err)
		}
		arrType, ok := t.(*ast.ArrayType)
		if !ok {
			return nil, fmt.Errorf("class %s array const %s: type must be an array type", decl.Name, ac.Name)
		}
		elems := make([]ast.Expression, len(ac.Elements))
		for i, e := range ac.Elements {
			el, err := d.expr(e)
			if err != nil {
				return nil, fmt.Errorf("class %s array const %s[%d]: %w", decl.Name, ac.Name, i, err)
			}
			elems[i] = el
		}
		decl.ArrayConsts = append(decl.ArrayConsts, ast.ArrayConstDecl{
			Name: ac.Name, Type: arrType, Elements: elems, Visibility: visibilityFromWire(ac.Visibility),
		})
	}

	for _, m := range w.Methods {
		method, err := d.methodDecl(decl.Name, m)
		if err != nil {
			return nil, err
		}
		decl.Methods = append(decl.Methods, *method)
	}

	return decl, nil
}

func (d *decoder) methodDecl(className string, w wireMethodDecl) (*ast.MethodDecl, error) {
	m := &ast.MethodDecl{
		BaseNode:      ast.BaseNode{Position: w.Pos.toAST()},
		Name:          w.Name,
		Visibility:    visibilityFromWire(w.Visibility),
		IsStatic:      w.IsStatic,
		IsAbstract:    w.IsAbstract,
		IsConstructor: w.IsConstructor,
		IsDestructor:  w.IsDestructor,
		Doc:           docFromWire(w.Doc),
	}

	for _, p := range w.Params {
		t, err := d.typ(p.Type)
		if err != nil {
			return nil, fmt.Errorf("class %s method %s param %s: %w", className, w.Name, p.Name, err)
		}
		m.Params = append(m.Params, ast.Param{Name: p.Name, Type: t})
	}

	if w.ReturnType != nil {
		t, err := d.typ(w.ReturnType)
		if err != nil {
			return nil, fmt.Errorf("class %s method %s return type: %w", className, w.Name, err)
		}
		m.ReturnType = t
	} else {
		m.ReturnType = &ast.VoidType{}
	}

	if w.Body != nil {
		body, err := d.stmt(w.Body)
		if err != nil {
			return nil, fmt.Errorf("class %s method %s body: %w", className, w.Name, err)
		}
		block, ok := body.(*ast.BlockStmt)
		if !ok {
			return nil, fmt.Errorf("class %s method %s: body must be a block", className, w.Name)
		}
		m.Body = block
	}

	return m, nil
}
