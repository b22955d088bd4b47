package gen

import "github.com/Ecialo/thriftgen/idl"

// SchemaArtifacts produces the flattened (output name, unit) list for
// every entity the schema declares, in a stable kind-grouped order:
// enums, constants, structs, unions, exceptions, services, service
// behaviours. Pure; name resolution is assumed total.
func (g *Generator) SchemaArtifacts(s *idl.Schema) []Artifact {
	d := g.dialect
	r := s.Resolver
	var out []Artifact

	for _, e := range s.Enums {
		out = append(out, Artifact{
			Name: r.ResolveName(s, e.Name),
			Unit: d.GenEnum(s, e),
		})
	}

	// All constants of a schema collapse into one unit named by the
	// schema's own module. A schema owning no constants emits nothing:
	// inherited constants belong to the schema that declares them.
	if owned := s.OwnedConstants(); len(owned) > 0 {
		out = append(out, Artifact{
			Name: r.ResolveName(s, ""),
			Unit: d.GenConstants(s, owned),
		})
	}

	for _, st := range s.Structs {
		out = append(out, Artifact{
			Name: r.ResolveName(s, st.Name),
			Unit: d.GenStruct(s, st),
		})
	}
	for _, u := range s.Unions {
		out = append(out, Artifact{
			Name: r.ResolveName(s, u.Name),
			Unit: d.GenStruct(s, u),
		})
	}
	for _, ex := range s.Exceptions {
		out = append(out, Artifact{
			Name: r.ResolveName(s, ex.Name),
			Unit: d.GenStruct(s, ex),
		})
	}

	for _, svc := range s.Services {
		out = append(out, Artifact{
			Name: r.ResolveName(s, svc.Name),
			Unit: d.GenService(s, svc),
		})
	}
	for _, svc := range s.Services {
		out = append(out, Artifact{
			Name: r.ResolveName(s, svc.Name) + ".Behaviour",
			Unit: d.GenBehaviour(s, svc),
		})
	}
	return out
}
