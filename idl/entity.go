package idl

// StructKind discriminates the three data-bearing entity variants that
// share the struct shape.
type StructKind uint8

// List of struct kinds.
const (
	StructKindStruct StructKind = iota
	StructKindUnion
	StructKindException
)

// String returns the IDL keyword of the kind.
func (k StructKind) String() string {
	switch k {
	case StructKindUnion:
		return "union"
	case StructKindException:
		return "exception"
	default:
		return "struct"
	}
}

// Struct is a struct, union or exception declaration. Field names are
// unique within a struct; declaration order is preserved.
type Struct struct {
	Name   string     `json:"name"`
	Kind   StructKind `json:"kind"`
	Fields []*Field   `json:"fields,omitempty"`
}

// Field is one declared field of a struct, union or exception, or one
// parameter of a service function.
type Field struct {
	ID   int16    `json:"id"`
	Name string   `json:"name"`
	Type *TypeRef `json:"type"`
	// Optional marks the field as not required. Union fields are
	// implicitly optional regardless of this flag.
	Optional bool `json:"optional,omitempty"`
	// Default is the declared literal default value, if any.
	Default *Value `json:"default,omitempty"`
}

// Typedef declares an alias for another type. A typedef has no body of
// its own, only the reference to the aliased type.
type Typedef struct {
	Name string   `json:"name"`
	Type *TypeRef `json:"type"`
}

// Enum is an enum declaration with its ordered member list.
type Enum struct {
	Name    string       `json:"name"`
	Members []EnumMember `json:"members,omitempty"`
}

// EnumMember is one name/value pair of an enum.
type EnumMember struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

// Constant is a top-level constant declaration.
type Constant struct {
	Name  string   `json:"name"`
	Type  *TypeRef `json:"type"`
	Value *Value   `json:"value"`
}

// Service is a service declaration with its ordered RPC functions.
type Service struct {
	Name    string      `json:"name"`
	Extends string      `json:"extends,omitempty"`
	Funcs   []*Function `json:"functions,omitempty"`
}

// Function is one RPC signature of a service. A nil Return means void.
type Function struct {
	Name   string   `json:"name"`
	Oneway bool     `json:"oneway,omitempty"`
	Return *TypeRef `json:"return,omitempty"`
	Params []*Field `json:"params,omitempty"`
	Throws []*Field `json:"throws,omitempty"`
}
