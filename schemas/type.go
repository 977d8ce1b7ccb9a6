package schemas

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies which variant a Type is.
type Kind int

const (
	// KindString is a string, optionally restricted to an enumeration
	KindString Kind = iota
	// KindInteger is an integer with an optional format
	KindInteger
	// KindNumber is a floating point number with an optional format
	KindNumber
	// KindBoolean is a boolean
	KindBoolean
	// KindArray is an array of Items
	KindArray
	// KindObject is an object without declared properties
	KindObject
)

var kindNames = [...]string{
	KindString:  "string",
	KindInteger: "integer",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindArray:   "array",
	KindObject:  "object",
}

// String returns the OpenAPI type name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Format is a numeric format qualifier.
type Format string

const (
	// FormatNone means no format
	FormatNone Format = ""
	// FormatInt32 is a signed 32-bit integer
	FormatInt32 Format = "int32"
	// FormatInt64 is a signed 64-bit integer
	FormatInt64 Format = "int64"
	// FormatFloat is a single precision float
	FormatFloat Format = "float"
)

// Type is the resolved type of one property.
//
// Exactly one Kind applies. Format is only set for KindInteger and KindNumber,
// Enum only for KindString and Items only for KindArray.
type Type struct {
	Kind   Kind
	Format Format
	Enum   []string
	Items  *Type
}

// String returns a plain string type, restricted to enum when given.
func String(enum ...string) Type {
	if len(enum) == 0 {
		return Type{Kind: KindString}
	}
	return Type{Kind: KindString, Enum: slices.Clone(enum)}
}

// Integer returns an integer type.
func Integer(f Format) Type {
	return Type{Kind: KindInteger, Format: f}
}

// Number returns a number type.
func Number(f Format) Type {
	return Type{Kind: KindNumber, Format: f}
}

// Boolean returns a boolean type.
func Boolean() Type {
	return Type{Kind: KindBoolean}
}

// ArrayOf returns an array type with the given item type.
func ArrayOf(item Type) Type {
	return Type{Kind: KindArray, Items: &item}
}

// Object returns an unstructured object type.
func Object() Type {
	return Type{Kind: KindObject}
}

// Equal reports whether t and other describe the same type.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Format != other.Format || !slices.Equal(t.Enum, other.Enum) {
		return false
	}
	if t.Items == nil || other.Items == nil {
		return t.Items == other.Items
	}
	return t.Items.Equal(*other.Items)
}

// String renders t in a compact notation, e.g. "integer(int32)",
// "string[A|B]" or "array<string>".
func (t Type) String() string {
	switch {
	case t.Kind == KindArray && t.Items != nil:
		return "array<" + t.Items.String() + ">"
	case len(t.Enum) > 0:
		return t.Kind.String() + "[" + strings.Join(t.Enum, "|") + "]"
	case t.Format != FormatNone:
		return t.Kind.String() + "(" + string(t.Format) + ")"
	default:
		return t.Kind.String()
	}
}
