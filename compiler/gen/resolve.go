package gen

import "github.com/dave/jennifer/jen"

// Resolve folds an artifact list into one with unique output names, in
// encounter order. Two units may share a name only when exactly one of
// them holds constant definitions: a constant may legally share its
// logical name with a type, and the two are conventionally folded into
// one physical unit. Every other collision is an authoring error with
// no safe resolution and aborts the pass.
//
// Callers resolve logically separate output streams independently;
// Resolve itself never inspects the stream tag.
func Resolve(artifacts []Artifact) ([]Artifact, error) {
	index := make(map[string]int, len(artifacts))
	out := make([]Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		at, seen := index[a.Name]
		if !seen {
			index[a.Name] = len(out)
			out = append(out, a)
			continue
		}
		merged, err := mergeUnits(a.Name, out[at].Unit, a.Unit)
		if err != nil {
			return nil, err
		}
		out[at].Unit = merged
	}
	return out, nil
}

// mergeUnits combines two same-named units under the constant-merge
// rule. The merged unit keeps the non-constant unit's kind tag and
// package, so a further collision against it still resolves with the
// correct precedence; the bodies concatenate in encounter order with
// neither truncated.
func mergeUnits(name string, first, second *Unit) (*Unit, error) {
	if first.Kind.IsConstant() == second.Kind.IsConstant() {
		return nil, NewCollisionError(name, first.Kind, second.Kind)
	}
	keep := first
	if first.Kind.IsConstant() {
		keep = second
	}
	decls := make([]jen.Code, 0, len(first.Decls)+len(second.Decls)+1)
	decls = append(decls, first.Decls...)
	decls = append(decls, jen.Line())
	decls = append(decls, second.Decls...)
	return &Unit{Kind: keep.Kind, Package: keep.Package, Decls: decls}, nil
}
