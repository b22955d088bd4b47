package load

import (
	"strings"

	"github.com/Ecialo/thriftgen/idl"
)

// groupResolver is the name-resolution authority of one file group. A
// declared namespace replaces the file basename as the module path, so
// several files may share one module; the resolver then assigns each
// constant name to the schema that declared it first.
type groupResolver struct {
	// owners maps module-qualified constant names to the declaring
	// schema.
	owners map[string]*idl.Schema
}

func newGroupResolver() *groupResolver {
	return &groupResolver{owners: make(map[string]*idl.Schema)}
}

// register records the schema's constant declarations. First
// declaration wins within a shared module.
func (r *groupResolver) register(s *idl.Schema) {
	module := r.moduleName(s)
	for _, c := range s.Constants {
		key := module + "." + c.Name
		if _, ok := r.owners[key]; !ok {
			r.owners[key] = s
		}
	}
}

// ResolveName maps a schema-local logical name to its fully qualified
// output name. The empty local name denotes the schema's own module.
func (r *groupResolver) ResolveName(s *idl.Schema, local string) string {
	module := r.moduleName(s)
	if local == "" {
		return module
	}
	return module + "." + idl.Title(local)
}

// OwnsConstant reports if the schema is the first declarer of the named
// constant within its module.
func (r *groupResolver) OwnsConstant(s *idl.Schema, name string) bool {
	return r.owners[r.moduleName(s)+"."+name] == s
}

// moduleName is the output module of a schema: the title-cased declared
// namespace when present, the title-cased file basename otherwise.
func (r *groupResolver) moduleName(s *idl.Schema) string {
	if s.Namespace == "" {
		return s.Module()
	}
	parts := strings.Split(s.Namespace, ".")
	for i, p := range parts {
		parts[i] = idl.Title(p)
	}
	return strings.Join(parts, ".")
}
