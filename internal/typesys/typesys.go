// Package typesys maps the input language's numeric types to the
// closest target numeric type.
package typesys

import "github.com/cwbudde/citogo/internal/ast"

// Code is a concrete fixed-width numeric tag a target backend emits a
// typed-array element name or arithmetic coercion for.
type Code int

const (
	Int8 Code = iota
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Single
	Double
)

func (c Code) String() string {
	names := [...]string{
		"Int8", "UInt8", "Int16", "UInt16", "Int32", "UInt32",
		"Int64", "UInt64", "Single", "Double",
	}
	if int(c) < 0 || int(c) >= len(names) {
		return "Unknown"
	}
	return names[c]
}

// IsUnsigned reports whether the code is one of the unsigned tags.
func (c Code) IsUnsigned() bool {
	switch c {
	case UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

// bit width bounds for the signed/unsigned fixed tags, narrowest first.
var signedBounds = []struct {
	code     Code
	lo, hi   int64
}{
	{Int8, -128, 127},
	{Int16, -32768, 32767},
	{Int32, -2147483648, 2147483647},
	{Int64, -9223372036854775808, 9223372036854775807},
}

var unsignedBounds = []struct {
	code Code
	hi   int64
}{
	{UInt8, 255},
	{UInt16, 65535},
	{UInt32, 4294967295},
	// UInt64's true upper bound overflows int64; RangeType.HighBound
	// cannot represent it, so any non-negative range that doesn't fit
	// UInt32 falls through to UInt64 by exhaustion below.
}

// TypeCode picks the narrowest fixed-width tag that covers t's bounds:
// signed bounds pick the smallest signed tag that covers the range;
// fully non-negative bounds pick the smallest unsigned tag. promote=true
// widens any tag narrower than Int32 to Int32, the arithmetic-promotion
// behavior the JS backend needs before emitting `|0`/`>>>0` coercions.
//
// The input language's `ulong` resolves to a RangeType identical in
// shape to `uint` in several places and is deliberately NOT
// distinguished here — it maps to UInt32 exactly like uint would for the
// same bounds, losing bit 32+ rather than being silently widened to a
// 64-bit-safe representation.
func TypeCode(t *ast.RangeType, promote bool) Code {
	var code Code
	if t.NonNegative() {
		code = UInt64
		for _, b := range unsignedBounds {
			if t.HighBound <= b.hi {
				code = b.code
				break
			}
		}
	} else {
		code = Int64
		for _, b := range signedBounds {
			if t.LowBound >= b.lo && t.HighBound <= b.hi {
				code = b.code
				break
			}
		}
	}
	if promote && (code == Int8 || code == UInt8 || code == Int16 || code == UInt16) {
		// UInt8/UInt16/Int8/Int16 promote to Int32 for arithmetic;
		// UInt32 already arithmetic-width, left untouched.
		return Int32
	}
	return code
}

// ArrayElementType chooses the target's typed-array element tag for a
// numeric element type. Non-numeric types have no typed-array
// representation and return Double as a safe fallback; callers are
// expected to have already rejected non-numeric element types before
// reaching here.
func ArrayElementType(t ast.Type) Code {
	switch n := t.(type) {
	case *ast.RangeType:
		return TypeCode(n, false)
	case *ast.PrimitiveType:
		return fromPrimitiveKind(n.Kind)
	default:
		return Double
	}
}

func fromPrimitiveKind(k ast.PrimitiveKind) Code {
	switch k {
	case ast.Int8:
		return Int8
	case ast.UInt8:
		return UInt8
	case ast.Int16:
		return Int16
	case ast.UInt16:
		return UInt16
	case ast.Int32:
		return Int32
	case ast.UInt32:
		return UInt32
	case ast.Int64:
		return Int64
	case ast.Float32:
		return Single
	case ast.Float64:
		return Double
	default:
		return Double
	}
}

// FitsInFloat64Safely reports whether code's full range is exactly
// representable as a float64, i.e. whether the target's lack of 64-bit
// integers causes no precision loss. On a target without 64-bit
// integers, 64-bit source types fall back to Float64 with a loss of
// precision above 2^53.
func FitsInFloat64Safely(code Code) bool {
	switch code {
	case Int64, UInt64:
		return false
	default:
		return true
	}
}
