// Package load reads parsed schema documents into idl values and
// assembles file groups. The frontend parser serializes each IDL file
// as one JSON document; includes are file references resolved relative
// to the including document.
package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ecialo/thriftgen/idl"
)

// document is the on-disk form of one parsed schema. It shadows the
// schema's include map with the raw file references the parser wrote.
type document struct {
	idl.Schema
	Includes []string `json:"includes,omitempty"`
}

// Loader reads schema documents and wires up their include graphs. A
// single loader defines one file group: every schema it loads shares
// the same name resolver, and a document read twice (directly and
// through an include) yields the same *idl.Schema.
type Loader struct {
	schemas map[string]*idl.Schema
	pending map[string]bool
	res     *groupResolver
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{
		schemas: make(map[string]*idl.Schema),
		pending: make(map[string]bool),
		res:     newGroupResolver(),
	}
}

// Load reads one schema document and, recursively, everything it
// includes.
func (l *Loader) Load(path string) (*idl.Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if s, ok := l.schemas[abs]; ok {
		return s, nil
	}
	if l.pending[abs] {
		return nil, fmt.Errorf("load %s: include cycle", path)
	}
	l.pending[abs] = true
	defer delete(l.pending, abs)

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s := &doc.Schema
	if s.Name == "" {
		s.Name = schemaName(abs)
	}
	// The document format splits the struct shape into per-kind arrays;
	// the kind tag is restored here rather than trusted from disk.
	for _, st := range s.Structs {
		st.Kind = idl.StructKindStruct
	}
	for _, u := range s.Unions {
		u.Kind = idl.StructKindUnion
	}
	for _, ex := range s.Exceptions {
		ex.Kind = idl.StructKindException
	}
	// Distinct IDL field names can fold to one generated identifier
	// ("x" and "X", "user_id" and "userId"); such documents have no
	// faithful generated shape and are rejected here.
	if err := validateFields(path, s); err != nil {
		return nil, err
	}
	s.Includes = make(map[string]*idl.Schema, len(doc.Includes))
	for _, ref := range doc.Includes {
		inc, err := l.Load(filepath.Join(filepath.Dir(abs), ref))
		if err != nil {
			return nil, err
		}
		s.Includes[inc.Name] = inc
	}
	s.Resolver = l.res
	l.res.register(s)

	l.schemas[abs] = s
	return s, nil
}

// LoadGroup reads a set of schema documents as one file group,
// preserving argument order.
func LoadGroup(paths ...string) ([]*idl.Schema, error) {
	l := NewLoader()
	out := make([]*idl.Schema, 0, len(paths))
	for _, p := range paths {
		s, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// validateFields rejects entities where two fields share a folded
// name.
func validateFields(path string, s *idl.Schema) error {
	for _, group := range [][]*idl.Struct{s.Structs, s.Unions, s.Exceptions} {
		for _, st := range group {
			seen := make(map[string]string, len(st.Fields))
			for _, f := range st.Fields {
				key := foldName(f.Name)
				if prev, ok := seen[key]; ok {
					return fmt.Errorf("load %s: fields %q and %q of %s fold to the same generated name",
						path, prev, f.Name, st.Name)
				}
				seen[key] = f.Name
			}
		}
	}
	return nil
}

// foldName approximates the generated-identifier transform closely
// enough to catch collisions: case and underscores do not survive it.
func foldName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// schemaName derives the schema name from the document path:
// "idl/shared.thrift.json" names the schema "shared".
func schemaName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
