package idl

import (
	"encoding/json"
	"fmt"
)

// A Type identifies one of the base or container types of the interface
// definition language.
type Type uint8

// List of IDL types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeDouble
	TypeString
	TypeBinary
	TypeUUID
	TypeList
	TypeSet
	TypeMap
	// TypeNamed is a reference to another declared entity
	// (struct, union, exception, enum or typedef).
	TypeNamed
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeI8:      "i8",
	TypeI16:     "i16",
	TypeI32:     "i32",
	TypeI64:     "i64",
	TypeDouble:  "double",
	TypeString:  "string",
	TypeBinary:  "binary",
	TypeUUID:    "uuid",
	TypeList:    "list",
	TypeSet:     "set",
	TypeMap:     "map",
	TypeNamed:   "named",
}

// String returns the IDL name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// MarshalJSON encodes the type as its IDL name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an IDL type name.
func (t *Type) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i, n := range typeNames {
		if n == name && Type(i).Valid() {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("idl: unknown type %q", name)
}

// Valid reports if the given type is a valid IDL type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Container reports if the type is a parametric container type.
func (t Type) Container() bool {
	return t == TypeList || t == TypeSet || t == TypeMap
}

// Numeric reports if the type is an integer or floating-point type.
func (t Type) Numeric() bool {
	return t >= TypeI8 && t <= TypeDouble
}

// TypeRef holds the full declared type of a field, constant or typedef.
// Container types carry their parameters; named references carry the
// (possibly include-qualified) identifier of the referenced entity.
type TypeRef struct {
	Type Type `json:"type"`
	// Name is set for TypeNamed references. A reference into another
	// schema of the file group is qualified with the schema name,
	// e.g. "shared.SharedStruct".
	Name string `json:"name,omitempty"`
	// Key is the key type of a map.
	Key *TypeRef `json:"key,omitempty"`
	// Elem is the element type of a list or set, or the value type
	// of a map.
	Elem *TypeRef `json:"elem,omitempty"`
}

// String returns the IDL notation of the type reference.
func (t *TypeRef) String() string {
	if t == nil {
		return typeNames[TypeInvalid]
	}
	switch t.Type {
	case TypeNamed:
		return t.Name
	case TypeList:
		return "list<" + t.Elem.String() + ">"
	case TypeSet:
		return "set<" + t.Elem.String() + ">"
	case TypeMap:
		return "map<" + t.Key.String() + "," + t.Elem.String() + ">"
	default:
		return t.Type.String()
	}
}
