package gen

import "github.com/dave/jennifer/jen"

// Kind tags a generated unit with the generator that produced it. The
// tag exists for collision resolution only; it is not part of the
// written artifact.
type Kind uint8

// List of unit kinds.
const (
	KindInvalid Kind = iota
	KindEnum
	KindConstant
	KindStruct
	KindUnion
	KindException
	KindService
	KindBehaviour
	KindTestData
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindEnum:      "enum",
	KindConstant:  "constant",
	KindStruct:    "struct",
	KindUnion:     "union",
	KindException: "exception",
	KindService:   "service",
	KindBehaviour: "behaviour",
	KindTestData:  "testdata",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// IsConstant reports if the unit holds constant definitions. Constant
// units are the only ones eligible for merging on a name collision.
func (k Kind) IsConstant() bool {
	return k == KindConstant
}

// Unit is the self-contained output of generating one entity: an ordered
// list of top-level declarations plus the target package they belong to.
// Units are immutable once produced and consumed exactly once, by either
// the writer or the collision resolver.
type Unit struct {
	Kind    Kind
	Package string
	Decls   []jen.Code
}

// Stream separates logically independent output sets. Names are unique
// within a stream; the same name may appear in different streams.
type Stream uint8

// List of output streams.
const (
	// StreamMain holds the entity units themselves.
	StreamMain Stream = iota
	// StreamTestData holds the companion test-data units.
	StreamTestData
)

// String returns the name of the stream.
func (s Stream) String() string {
	if s == StreamTestData {
		return "testdata"
	}
	return "main"
}

// Artifact pairs a generated unit with the fully qualified output name
// it will be written under. Names are not guaranteed unique before
// collision resolution.
type Artifact struct {
	Name   string
	Stream Stream
	Unit   *Unit
}
