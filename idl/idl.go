// Package idl holds the parsed representation of Thrift interface
// definition files. The frontend parser produces these values (typically
// as a JSON document, see compiler/load); the code generator in
// compiler/gen consumes them read-only.
package idl

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// Title capitalizes the first letter of an identifier without touching
// the rest. Used when an IDL identifier becomes a module name segment.
func Title(s string) string {
	if s == "" {
		return s
	}
	return titleCaser.String(s[:1]) + s[1:]
}

// Schema is the parsed representation of one IDL file. Entity collections
// keep their declaration order; entity names are unique within a schema.
type Schema struct {
	// Name is the schema basename, e.g. "shared" for shared.thrift.
	Name string `json:"name"`
	// Namespace is the declared target namespace, if any.
	Namespace string `json:"namespace,omitempty"`

	Typedefs   []*Typedef  `json:"typedefs,omitempty"`
	Structs    []*Struct   `json:"structs,omitempty"`
	Unions     []*Struct   `json:"unions,omitempty"`
	Exceptions []*Struct   `json:"exceptions,omitempty"`
	Enums      []*Enum     `json:"enums,omitempty"`
	Constants  []*Constant `json:"constants,omitempty"`
	Services   []*Service  `json:"services,omitempty"`

	// Includes maps include names to the included schemas. Populated by
	// the loader when the file group is assembled.
	Includes map[string]*Schema `json:"-"`
	// Resolver is the name-resolution capability of the enclosing file
	// group. Attached by the loader; used read-only.
	Resolver Resolver `json:"-"`
}

// Resolver is the name-resolution authority of a file group. Output
// naming spans all schemas sharing the group, so resolution lives
// outside the schema itself.
type Resolver interface {
	// ResolveName maps a schema-local logical name to the fully
	// qualified output name of the generated unit. The empty local
	// name denotes the schema's own module.
	ResolveName(s *Schema, local string) string
	// OwnsConstant reports if the named constant is declared by the
	// schema itself rather than inherited from another group member.
	OwnsConstant(s *Schema, name string) bool
}

// Module returns the name of the schema's own module, the unit that
// holds its constants.
func (s *Schema) Module() string {
	return Title(s.Name)
}

// OwnedConstants returns the constants declared by the schema itself,
// excluding any inherited from other file group members.
func (s *Schema) OwnedConstants() []*Constant {
	var owned []*Constant
	for _, c := range s.Constants {
		if s.Resolver == nil || s.Resolver.OwnsConstant(s, c.Name) {
			owned = append(owned, c)
		}
	}
	return owned
}

// EntityKind discriminates the variants of a named entity.
type EntityKind uint8

// List of entity kinds.
const (
	KindUnknown EntityKind = iota
	KindStruct
	KindUnion
	KindException
	KindEnum
	KindTypedef
)

// NamedEntity is the result of looking up a type reference: the entity
// it points at and the schema that declares it.
type NamedEntity struct {
	Kind    EntityKind
	Schema  *Schema
	Struct  *Struct
	Enum    *Enum
	Typedef *Typedef
}

// ResolveType follows a named type reference to its declaration. A
// qualified reference ("shared.SharedStruct") is looked up in the
// included schema; an unqualified one in the schema itself.
func (s *Schema) ResolveType(name string) (*NamedEntity, bool) {
	target := s
	local := name
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			inc, ok := s.Includes[name[:i]]
			if !ok {
				return nil, false
			}
			target, local = inc, name[i+1:]
			break
		}
	}
	for _, st := range target.Structs {
		if st.Name == local {
			return &NamedEntity{Kind: KindStruct, Schema: target, Struct: st}, true
		}
	}
	for _, u := range target.Unions {
		if u.Name == local {
			return &NamedEntity{Kind: KindUnion, Schema: target, Struct: u}, true
		}
	}
	for _, ex := range target.Exceptions {
		if ex.Name == local {
			return &NamedEntity{Kind: KindException, Schema: target, Struct: ex}, true
		}
	}
	for _, e := range target.Enums {
		if e.Name == local {
			return &NamedEntity{Kind: KindEnum, Schema: target, Enum: e}, true
		}
	}
	for _, td := range target.Typedefs {
		if td.Name == local {
			return &NamedEntity{Kind: KindTypedef, Schema: target, Typedef: td}, true
		}
	}
	return nil, false
}
