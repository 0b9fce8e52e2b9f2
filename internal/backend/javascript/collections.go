package javascript

import (
	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/errors"
	"github.com/cwbudde/citogo/pkg/emitter"
)

// emitCollectionCall rewrites a method call on a container-typed receiver
// per the fixed List/Stack/HashSet/Dictionary/Array method mapping.
// receiver is the symbol chain naming the object the method is invoked
// on; method is the source method name. Returns false if recvType isn't
// a container type this table covers, so the caller falls back to a
// verbatim call.
func (b *Backend) emitCollectionCall(recvType ast.Type, receiver []string, method string, args []ast.Expression) bool {
	recv := b.resolveSymbol(receiver)

	switch t := recvType.(type) {
	case *ast.ListType, *ast.StackType:
		return b.emitListOrStackCall(recv, method, args)
	case *ast.HashSetType:
		return b.emitSetCall(recv, method, args)
	case *ast.DictionaryType, *ast.SortedDictionaryType:
		return b.emitDictCall(recv, method, args)
	case *ast.ArrayType, *ast.ArrayPtrType:
		return b.emitArrayCall(recv, elemOf(t), method, args)
	}
	return false
}

func elemOf(t ast.Type) ast.Type {
	switch n := t.(type) {
	case *ast.ArrayType:
		return n.Elem
	case *ast.ArrayPtrType:
		return n.Elem
	default:
		return nil
	}
}

func (b *Backend) emitListOrStackCall(recv, method string, args []ast.Expression) bool {
	switch method {
	case "Add":
		b.w.WriteString(recv + ".push")
		b.emitArgs(args)
	case "Insert":
		b.w.WriteString(recv + ".splice(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteString(", 0, ")
		emitter.EmitExpr(b, args[1], ast.PriorityAssign)
		b.w.WriteByte(')')
	case "Remove":
		b.w.WriteString(recv + ".splice(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteString(", 1)")
	case "RemoveRange":
		b.w.WriteString(recv + ".splice")
		b.emitArgs(args)
	case "Contains":
		b.w.WriteString(recv + ".includes")
		b.emitArgs(args)
	case "Peek":
		b.w.WriteString(recv + ".at(-1)")
	case "SortAll":
		b.w.WriteString(recv + ".sort((a, b) => a - b)")
	case "SortPart":
		b.registerHelper("sortListPart")
		b.w.WriteString("Ci.sortListPart(" + recv + ", ")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteString(", ")
		emitter.EmitExpr(b, args[1], ast.PriorityAssign)
		b.w.WriteByte(')')
	case "Clear":
		b.w.WriteString(recv + ".length = 0")
	default:
		return false
	}
	return true
}

func (b *Backend) emitSetCall(recv, method string, args []ast.Expression) bool {
	switch method {
	case "Contains":
		b.w.WriteString(recv + ".has")
		b.emitArgs(args)
	case "Remove":
		b.w.WriteString(recv + ".delete")
		b.emitArgs(args)
	case "Add":
		b.w.WriteString(recv + ".add")
		b.emitArgs(args)
	case "Clear":
		b.w.WriteString(recv + ".clear()")
	default:
		return false
	}
	return true
}

func (b *Backend) emitDictCall(recv, method string, args []ast.Expression) bool {
	switch method {
	case "ContainsKey":
		b.w.WriteString(recv + ".hasOwnProperty")
		b.emitArgs(args)
	case "Remove":
		b.w.WriteString("delete " + recv + "[")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteByte(']')
	case "Clear":
		b.registerHelper("clearDict")
		b.w.WriteString("Ci.clearDict(" + recv + ")")
	default:
		return false
	}
	return true
}

func (b *Backend) emitArrayCall(recv string, elem ast.Type, method string, args []ast.Expression) bool {
	switch method {
	case "CopyTo":
		b.registerHelper("copyArray")
		b.w.WriteString("Ci.copyArray(" + recv + ", ")
		for i, a := range args {
			if i > 0 {
				b.w.WriteString(", ")
			}
			emitter.EmitExpr(b, a, ast.PriorityAssign)
		}
		b.w.WriteByte(')')
	case "Fill":
		b.w.WriteString(recv + ".fill(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		if len(args) == 3 {
			b.w.WriteString(", ")
			emitter.EmitExpr(b, args[1], ast.PriorityAssign)
			b.w.WriteString(", ")
			b.w.WriteString("(")
			emitter.EmitExpr(b, args[1], ast.PriorityAdditive)
			b.w.WriteString(" + ")
			emitter.EmitExpr(b, args[2], ast.PriorityAdditive)
			b.w.WriteString(")")
		}
		b.w.WriteByte(')')
	case "SortPart":
		if len(args) != 2 {
			panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "Array.SortPart arity"})
		}
		b.w.WriteString(recv + ".subarray(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteString(", ")
		emitter.EmitExpr(b, args[0], ast.PriorityAdditive)
		b.w.WriteString(" + ")
		emitter.EmitExpr(b, args[1], ast.PriorityAdditive)
		b.w.WriteString(").sort()")
	default:
		return false
	}
	return true
}
