package javascript

import (
	"strconv"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/typesys"
	"github.com/cwbudde/citogo/pkg/emitter"
)

// emitEnum writes a frozen plain object mapping each member's UPPER_SNAKE
// name to its integer value, in declaration order.
func (b *Backend) emitEnum(d *ast.EnumDecl) {
	emitter.RenderDoc(b.w, d.Doc, emitter.LineDocStyle)
	b.w.WriteString("const " + typeName(d.Name) + " = Object.freeze(")
	b.w.OpenBlock("")
	for i, m := range d.Members {
		b.w.WriteString(emitter.UpperSnake(m.Name) + ": ")
		b.w.WriteIntLiteral(m.Value)
		if i < len(d.Members)-1 {
			b.w.WriteLine(",")
		} else {
			b.w.Newline()
		}
	}
	b.w.CloseBlock()
	b.w.WriteLine(");")
}

// emitClass writes a class as a constructor function plus attributes hung
// off it and its prototype:
//
//	function Foo() { <field inits>; <constructor body> }
//	Foo.prototype = new Bar();        // only when Foo extends Bar
//	Foo.BAR = <value>;                 // public/protected consts
//	Foo.baz = [...];                   // array consts
//	Foo.method = function(...) {...};  // static methods
//	Foo.prototype.method = function(...) {...}; // instance methods
func (b *Backend) emitClass(d *ast.ClassDecl) {
	b.currentClass = d.Name
	defer func() { b.currentClass = "" }()

	emitter.RenderDoc(b.w, d.Doc, emitter.LineDocStyle)

	var ctor *ast.MethodDecl
	for i := range d.Methods {
		if d.Methods[i].IsConstructor {
			ctor = &d.Methods[i]
			break
		}
	}

	b.w.WriteString("function " + typeName(d.Name) + "() ")
	b.w.OpenBlock("")
	for i := range d.Fields {
		b.emitFieldInit(&d.Fields[i])
	}
	if ctor != nil && ctor.Body != nil {
		b.currentMethod = ctor.Name
		for _, s := range ctor.Body.Stmts {
			s.AcceptStmt(b)
		}
		b.currentMethod = ""
	}
	b.w.CloseBlock()
	b.w.Newline()

	if d.BaseName != "" {
		b.w.WriteLine(typeName(d.Name) + ".prototype = new " + typeName(d.BaseName) + "();")
	}

	for i := range d.Consts {
		c := &d.Consts[i]
		if c.Visibility == ast.VisibilityPrivate {
			continue
		}
		emitter.RenderDoc(b.w, c.Doc, emitter.LineDocStyle)
		b.w.WriteString(classConstName(d.Name, c.Name) + " = ")
		emitter.EmitExpr(b, c.Value, ast.PriorityAssign)
		b.w.WriteLine(";")
	}

	for i := range d.ArrayConsts {
		ac := &d.ArrayConsts[i]
		b.w.WriteString(typeName(d.Name) + "." + memberName(ac.Name) + " = [")
		for j, e := range ac.Elements {
			if j > 0 {
				b.w.WriteString(", ")
			}
			emitter.EmitExpr(b, e, ast.PriorityAssign)
		}
		b.w.WriteLine("];")
	}

	for i := range d.Methods {
		m := &d.Methods[i]
		if m.IsAbstract || m.IsConstructor || m.IsDestructor {
			continue
		}
		b.emitMethod(d, m)
	}
}

// emitFieldInit assigns a field's initializer (or, absent one, its array
// storage allocation) to this.<field> inside the constructor function.
func (b *Backend) emitFieldInit(f *ast.FieldDecl) {
	emitter.RenderDoc(b.w, f.Doc, emitter.LineDocStyle)
	target := "this." + memberName(f.Name)
	if f.Init != nil {
		b.w.WriteString(target + " = ")
		emitter.EmitExpr(b, f.Init, ast.PriorityAssign)
		b.w.WriteLine(";")
		return
	}
	if arr, ok := f.Type.(*ast.ArrayType); ok {
		b.emitArrayStorageInit(target, arr, 0)
	}
}

// emitArrayStorageInit writes the allocation for a fixed-length array
// storage slot: a typed array for numeric elements, or an untyped array
// filled via a counted loop of fresh instances/nested arrays for class-
// and array-typed elements.
func (b *Backend) emitArrayStorageInit(target string, arr *ast.ArrayType, depth int) {
	length := strconv.FormatInt(arr.Length, 10)

	switch elem := arr.Elem.(type) {
	case *ast.ClassType:
		b.w.WriteLine(target + " = new Array(" + length + ").fill(undefined);")
		b.w.OpenLoop("let", depth, length)
		v := emitter.InductionVar(depth)
		b.w.WriteLine(target + "[" + v + "] = new " + typeName(elem.Name) + "();")
		b.w.CloseBlock()
	case *ast.ArrayType:
		b.w.WriteLine(target + " = new Array(" + length + ").fill(undefined);")
		b.w.OpenLoop("let", depth, length)
		v := emitter.InductionVar(depth)
		b.emitArrayStorageInit(target+"["+v+"]", elem, depth+1)
		b.w.CloseBlock()
	default:
		code := typesys.ArrayElementType(arr.Elem)
		b.w.WriteLine(target + " = new " + typedArrayCtor(code) + "(" + length + ");")
	}
}

// emitMethod writes one method as a function attached to the constructor
// (static) or its prototype (instance).
func (b *Backend) emitMethod(d *ast.ClassDecl, m *ast.MethodDecl) {
	ref := instanceMethodRef(d.Name, m.Name)
	if m.IsStatic {
		ref = staticMethodRef(d.Name, m.Name)
	}

	emitter.RenderDoc(b.w, m.Doc, emitter.LineDocStyle)
	b.w.WriteString(ref + " = function(")
	for i, p := range m.Params {
		if i > 0 {
			b.w.WriteString(", ")
		}
		b.w.WriteString(memberName(p.Name))
	}
	b.w.WriteString(") ")

	b.currentMethod = m.Name
	b.w.OpenBlock("")
	if m.Body != nil {
		for _, s := range m.Body.Stmts {
			s.AcceptStmt(b)
		}
	}
	b.w.CloseBlock()
	b.currentMethod = ""
	b.w.WriteLine(";")
}
