package javascript

import (
	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/typesys"
)

// arithmeticCode resolves t's fixed-width tag with arithmetic promotion
// applied (anything narrower than Int32 widens to Int32, matching how
// JavaScript's own number type has no sub-32-bit arithmetic), returning
// ok=false for non-numeric types.
func arithmeticCode(t ast.Type) (typesys.Code, bool) {
	switch n := t.(type) {
	case *ast.RangeType:
		return typesys.TypeCode(n, true), true
	case *ast.PrimitiveType:
		code := typesys.ArrayElementType(n)
		switch code {
		case typesys.Int8, typesys.UInt8, typesys.Int16, typesys.UInt16:
			code = typesys.Int32
		}
		return code, true
	default:
		return 0, false
	}
}

// is32BitUnsigned reports whether t resolves to the fixed-width UInt32
// tag, the tag that drives the `>>> 0` truncation and unsigned-comparison
// rewrites.
func is32BitUnsigned(t ast.Type) bool {
	code, ok := arithmeticCode(t)
	return ok && code == typesys.UInt32
}

// is32BitInteger reports whether t resolves to Int32 or UInt32: both need
// the `| 0` post-coercion after `*`, `/`, `%` to recover an integer value
// from JavaScript's double-precision arithmetic, even in the unsigned
// case — the sign gets fixed up separately at comparison/read sites via
// `>>> 0`.
func is32BitInteger(t ast.Type) bool {
	code, ok := arithmeticCode(t)
	return ok && (code == typesys.Int32 || code == typesys.UInt32)
}

// typedArrayCtor names the JS typed-array constructor backing an array
// storage of the given element tag. 64-bit element types have no native
// typed-array counterpart and fall back to Float64Array, the same
// precision loss as the scalar case.
func typedArrayCtor(code typesys.Code) string {
	switch code {
	case typesys.Int8:
		return "Int8Array"
	case typesys.UInt8:
		return "Uint8Array"
	case typesys.Int16:
		return "Int16Array"
	case typesys.UInt16:
		return "Uint16Array"
	case typesys.Int32:
		return "Int32Array"
	case typesys.UInt32:
		return "Uint32Array"
	case typesys.Single:
		return "Float32Array"
	default:
		return "Float64Array"
	}
}
