package ast

import "fmt"

// TypeKind tags the variant of a resolved Type: every concrete Type
// implementation returns a fixed string tag (e.g. TypeKind() == "SUBRANGE"
// for a RangeType) so callers can switch on kind without a type assertion.
type TypeKind string

const (
	KindPrimitive        TypeKind = "PRIMITIVE"
	KindRange            TypeKind = "SUBRANGE"
	KindBool             TypeKind = "BOOL"
	KindString           TypeKind = "STRING"
	KindVoid             TypeKind = "VOID"
	KindClass            TypeKind = "CLASS"
	KindEnum             TypeKind = "ENUM"
	KindRegex            TypeKind = "REGEX"
	KindList             TypeKind = "LIST"
	KindStack            TypeKind = "STACK"
	KindHashSet          TypeKind = "HASH_SET"
	KindDictionary       TypeKind = "DICTIONARY"
	KindSortedDictionary TypeKind = "SORTED_DICTIONARY"
	KindArray            TypeKind = "ARRAY"
	KindArrayPtr         TypeKind = "ARRAY_PTR"
	KindClassPtr         TypeKind = "CLASS_PTR"
)

// Type is the sum type of every resolved type a node can carry. Every
// concrete type implements Equals and TypeKind.
type Type interface {
	TypeKind() TypeKind
	String() string
	Equals(other Type) bool
}

// PrimitiveKind enumerates the fixed set of primitive numeric tags: i8,
// i16, i32, i64, u8, u16, u32, f32, f64.
type PrimitiveKind string

const (
	Int8    PrimitiveKind = "i8"
	Int16   PrimitiveKind = "i16"
	Int32   PrimitiveKind = "i32"
	Int64   PrimitiveKind = "i64"
	UInt8   PrimitiveKind = "u8"
	UInt16  PrimitiveKind = "u16"
	UInt32  PrimitiveKind = "u32"
	Float32 PrimitiveKind = "f32"
	Float64 PrimitiveKind = "f64"
)

// IsUnsigned reports whether the primitive kind is one of the unsigned
// integer tags.
func (k PrimitiveKind) IsUnsigned() bool {
	switch k {
	case UInt8, UInt16, UInt32:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the primitive kind is a floating point tag.
func (k PrimitiveKind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// PrimitiveType is a fixed-width numeric type with no further bounds
// information (used once a RangeType has already been narrowed, or for
// explicitly declared fixed-width locals).
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (t *PrimitiveType) TypeKind() TypeKind { return KindPrimitive }
func (t *PrimitiveType) String() string     { return string(t.Kind) }
func (t *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Kind == t.Kind
}

// RangeType carries concrete integer bounds used to pick the narrowest
// storage type on targets with fixed-width integers.
type RangeType struct {
	Name      string
	LowBound  int64
	HighBound int64
}

func (t *RangeType) TypeKind() TypeKind { return KindRange }
func (t *RangeType) String() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("[%d..%d]", t.LowBound, t.HighBound)
}
func (t *RangeType) Equals(other Type) bool {
	o, ok := other.(*RangeType)
	return ok && o.LowBound == t.LowBound && o.HighBound == t.HighBound
}

// NonNegative reports whether every value representable by the range is
// non-negative, the condition typesys uses to choose an unsigned TypeCode.
func (t *RangeType) NonNegative() bool { return t.LowBound >= 0 }

// BoolType, StringType and VoidType are singleton-like non-numeric
// primitives.
type BoolType struct{}

func (t *BoolType) TypeKind() TypeKind       { return KindBool }
func (t *BoolType) String() string           { return "bool" }
func (t *BoolType) Equals(other Type) bool   { _, ok := other.(*BoolType); return ok }

type StringType struct{}

func (t *StringType) TypeKind() TypeKind     { return KindString }
func (t *StringType) String() string         { return "string" }
func (t *StringType) Equals(other Type) bool { _, ok := other.(*StringType); return ok }

type VoidType struct{}

func (t *VoidType) TypeKind() TypeKind     { return KindVoid }
func (t *VoidType) String() string         { return "void" }
func (t *VoidType) Equals(other Type) bool { _, ok := other.(*VoidType); return ok }

// ClassType is a nominal reference to a ClassDecl, used wherever a class
// name appears in type position (field types, parameter types, the
// pointee of a ClassPtrType).
type ClassType struct {
	Name string
	Decl *ClassDecl // resolved back-reference, filled in by the analyzer
}

func (t *ClassType) TypeKind() TypeKind { return KindClass }
func (t *ClassType) String() string     { return t.Name }
func (t *ClassType) Equals(other Type) bool {
	o, ok := other.(*ClassType)
	return ok && o.Name == t.Name
}

// EnumType is a nominal reference to an EnumDecl.
type EnumType struct {
	Name string
	Decl *EnumDecl
}

func (t *EnumType) TypeKind() TypeKind { return KindEnum }
func (t *EnumType) String() string     { return t.Name }
func (t *EnumType) Equals(other Type) bool {
	o, ok := other.(*EnumType)
	return ok && o.Name == t.Name
}

// RegexType is the opaque compiled-pattern type.
type RegexType struct{}

func (t *RegexType) TypeKind() TypeKind     { return KindRegex }
func (t *RegexType) String() string         { return "Regex" }
func (t *RegexType) Equals(other Type) bool { _, ok := other.(*RegexType); return ok }

// ListType, StackType, HashSetType are single-element-type containers.
type ListType struct{ Elem Type }

func (t *ListType) TypeKind() TypeKind { return KindList }
func (t *ListType) String() string     { return "List<" + t.Elem.String() + ">" }
func (t *ListType) Equals(other Type) bool {
	o, ok := other.(*ListType)
	return ok && o.Elem.Equals(t.Elem)
}

type StackType struct{ Elem Type }

func (t *StackType) TypeKind() TypeKind { return KindStack }
func (t *StackType) String() string     { return "Stack<" + t.Elem.String() + ">" }
func (t *StackType) Equals(other Type) bool {
	o, ok := other.(*StackType)
	return ok && o.Elem.Equals(t.Elem)
}

type HashSetType struct{ Elem Type }

func (t *HashSetType) TypeKind() TypeKind { return KindHashSet }
func (t *HashSetType) String() string     { return "HashSet<" + t.Elem.String() + ">" }
func (t *HashSetType) Equals(other Type) bool {
	o, ok := other.(*HashSetType)
	return ok && o.Elem.Equals(t.Elem)
}

// DictionaryType and SortedDictionaryType carry a key and value type.
type DictionaryType struct{ Key, Value Type }

func (t *DictionaryType) TypeKind() TypeKind { return KindDictionary }
func (t *DictionaryType) String() string {
	return "Dictionary<" + t.Key.String() + "," + t.Value.String() + ">"
}
func (t *DictionaryType) Equals(other Type) bool {
	o, ok := other.(*DictionaryType)
	return ok && o.Key.Equals(t.Key) && o.Value.Equals(t.Value)
}

type SortedDictionaryType struct{ Key, Value Type }

func (t *SortedDictionaryType) TypeKind() TypeKind { return KindSortedDictionary }
func (t *SortedDictionaryType) String() string {
	return "SortedDictionary<" + t.Key.String() + "," + t.Value.String() + ">"
}
func (t *SortedDictionaryType) Equals(other Type) bool {
	o, ok := other.(*SortedDictionaryType)
	return ok && o.Key.Equals(t.Key) && o.Value.Equals(t.Value)
}

// ArrayType is a fixed-length array; Length is a non-negative compile-time
// constant.
type ArrayType struct {
	Elem   Type
	Length int64
}

func (t *ArrayType) TypeKind() TypeKind { return KindArray }
func (t *ArrayType) String() string {
	return fmt.Sprintf("Array<%s>[%d]", t.Elem.String(), t.Length)
}
func (t *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && o.Length == t.Length && o.Elem.Equals(t.Elem)
}

// ArrayPtrType is a non-owning slice over an element type.
type ArrayPtrType struct{ Elem Type }

func (t *ArrayPtrType) TypeKind() TypeKind { return KindArrayPtr }
func (t *ArrayPtrType) String() string     { return "ArrayPtr<" + t.Elem.String() + ">" }
func (t *ArrayPtrType) Equals(other Type) bool {
	o, ok := other.(*ArrayPtrType)
	return ok && o.Elem.Equals(t.Elem)
}

// ClassPtrType is a non-owning reference to a class instance.
type ClassPtrType struct{ Class *ClassType }

func (t *ClassPtrType) TypeKind() TypeKind { return KindClassPtr }
func (t *ClassPtrType) String() string     { return "ClassPtr<" + t.Class.String() + ">" }
func (t *ClassPtrType) Equals(other Type) bool {
	o, ok := other.(*ClassPtrType)
	return ok && o.Class.Equals(t.Class)
}
