package idl

// Value is a literal constant value as written in the IDL source: the
// default value of a field, or the value of a top-level constant. Exactly
// one of the variant fields is set.
type Value struct {
	Bool   *bool    `json:"bool,omitempty"`
	Int    *int64   `json:"int,omitempty"`
	Double *float64 `json:"double,omitempty"`
	String *string  `json:"string,omitempty"`
	List   []*Value `json:"list,omitempty"`
	Map    []MapKV  `json:"map,omitempty"`
	// Ident references another constant or an enum member,
	// e.g. "Status.ACTIVE".
	Ident string `json:"ident,omitempty"`
}

// MapKV is one key/value pair of a map literal.
type MapKV struct {
	Key   *Value `json:"key"`
	Value *Value `json:"value"`
}

// BoolValue returns a literal boolean value.
func BoolValue(v bool) *Value { return &Value{Bool: &v} }

// IntValue returns a literal integer value.
func IntValue(v int64) *Value { return &Value{Int: &v} }

// DoubleValue returns a literal floating-point value.
func DoubleValue(v float64) *Value { return &Value{Double: &v} }

// StringValue returns a literal string value.
func StringValue(v string) *Value { return &Value{String: &v} }
