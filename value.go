package fin

import (
	"fmt"
	"math"
)

// Type identifies the kind of value a Value holds. fin has no generics and
// no user-defined primitive types, so this is a small closed set.
type Type int32

const (
	TypeVoid Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// typeName returns the mangled-signature spelling for t, matching the
// type-name strings used inside function signatures.
func typeName(t Type) string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	default:
		return "void"
	}
}

// Value is the tagged union fin passes on the VM stack, in registers and
// through the native bridge. C's fin_val is a raw union; Go has none, so a
// kind tag plus a numeric payload plus pointer fields stands in for it.
type Value struct {
	kind Type
	i    int64
	f    float64
	s    *internedString
	o    *object
}

func BoolValue(b bool) Value {
	if b {
		return Value{kind: TypeBool, i: 1}
	}
	return Value{kind: TypeBool, i: 0}
}

func IntValue(i int64) Value { return Value{kind: TypeInt, i: i} }

func FloatValue(f float64) Value { return Value{kind: TypeFloat, f: f} }

func StringValue(s *internedString) Value { return Value{kind: TypeString, s: s} }

func ObjectValue(o *object) Value { return Value{kind: TypeObject, o: o} }

func (v Value) Type() Type { return v.kind }

func (v Value) Bool() bool { return v.i != 0 }

func (v Value) Int() int64 { return v.i }

func (v Value) Float() float64 { return v.f }

func (v Value) Str() *internedString { return v.s }

func (v Value) Obj() *object { return v.o }

// Equal implements fin_val_equal's bit-equality shortcut for the numeric/
// bool payload; string/object equality compares the pointer, which is
// correct since strings are interned and objects are never structurally
// compared.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case TypeString:
		return v.s == o.s
	case TypeObject:
		return v.o == o.o
	case TypeFloat:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	default:
		return v.i == o.i
	}
}

func (v Value) String() string {
	switch v.kind {
	case TypeBool:
		return fmt.Sprintf("%t", v.Bool())
	case TypeInt:
		return fmt.Sprintf("%d", v.i)
	case TypeFloat:
		return fmt.Sprintf("%g", v.f)
	case TypeString:
		return v.s.cstr()
	case TypeObject:
		return "<object>"
	default:
		return "<void>"
	}
}
