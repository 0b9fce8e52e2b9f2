package ast

import "testing"

func TestSubrangeTypeCreation(t *testing.T) {
	digit := &RangeType{Name: "TDigit", LowBound: 0, HighBound: 9}

	if digit.Name != "TDigit" {
		t.Errorf("Name = %v, want TDigit", digit.Name)
	}
	if digit.LowBound != 0 || digit.HighBound != 9 {
		t.Errorf("Bounds = %d..%d, want 0..9", digit.LowBound, digit.HighBound)
	}
	if !digit.NonNegative() {
		t.Errorf("NonNegative() = false, want true for [0..9]")
	}
}

func TestSubrangeTypeKind(t *testing.T) {
	r := &RangeType{Name: "TTemperature", LowBound: -40, HighBound: 50}
	if r.TypeKind() != KindRange {
		t.Errorf("TypeKind() = %v, want %v", r.TypeKind(), KindRange)
	}
	if r.NonNegative() {
		t.Errorf("NonNegative() = true, want false for [-40..50]")
	}
}

func TestTypeEquals(t *testing.T) {
	a := &ListType{Elem: &PrimitiveType{Kind: Int32}}
	b := &ListType{Elem: &PrimitiveType{Kind: Int32}}
	c := &ListType{Elem: &PrimitiveType{Kind: UInt32}}

	if !a.Equals(b) {
		t.Errorf("List<i32>.Equals(List<i32>) = false, want true")
	}
	if a.Equals(c) {
		t.Errorf("List<i32>.Equals(List<u32>) = true, want false")
	}
}

func TestPrimitiveKindClassification(t *testing.T) {
	if !UInt32.IsUnsigned() {
		t.Errorf("UInt32.IsUnsigned() = false, want true")
	}
	if Int32.IsUnsigned() {
		t.Errorf("Int32.IsUnsigned() = true, want false")
	}
	if !Float64.IsFloat() {
		t.Errorf("Float64.IsFloat() = false, want true")
	}
}

func TestClassTypeString(t *testing.T) {
	c := &ClassType{Name: "Foo"}
	if c.String() != "Foo" {
		t.Errorf("String() = %q, want Foo", c.String())
	}
	ptr := &ClassPtrType{Class: c}
	if ptr.String() != "ClassPtr<Foo>" {
		t.Errorf("String() = %q, want ClassPtr<Foo>", ptr.String())
	}
}
