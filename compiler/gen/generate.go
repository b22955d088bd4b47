package gen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Ecialo/thriftgen/idl"
)

// Generator orchestrates one generation pass over the schemas of a file
// group: per-schema entity and test-data units are produced in parallel,
// joined, resolved for name collisions, and handed to the writer. The
// pass is a pure function of its inputs; no state survives a call.
type Generator struct {
	cfg     *Config
	dialect Dialect
	workers int
}

// NewGenerator creates a generator for the given configuration. A
// dialect must be set with WithDialect before generating.
//
// Example:
//
//	import "github.com/Ecialo/thriftgen/compiler/gen/golang"
//
//	g := gen.NewGenerator(cfg)
//	g.WithDialect(golang.NewDialect(g))
//	err := g.Generate(ctx, schemas...)
func NewGenerator(cfg *Config) *Generator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{cfg: cfg, workers: workers}
}

// WithDialect sets the target-language dialect.
func (g *Generator) WithDialect(d Dialect) *Generator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Config returns the generation configuration.
func (g *Generator) Config() *Config {
	return g.cfg
}

// EntityPkgPath returns the full import path of a schema's generated
// package.
func (g *Generator) EntityPkgPath(s *idl.Schema) string {
	return g.cfg.Package + "/" + PackageName(s)
}

// PropgenPkg returns the import path of the propgen runtime package.
func (g *Generator) PropgenPkg() string {
	return propgenPkg
}

// Verify Generator implements Helper at compile time.
var _ Helper = (*Generator)(nil)

// Helper exposes the generator methods dialect implementations need
// without importing the full generator.
type Helper interface {
	// Config returns the generation configuration.
	Config() *Config
	// EntityPkgPath returns the import path of a schema's generated
	// package.
	EntityPkgPath(s *idl.Schema) string
	// PropgenPkg returns the import path of the propgen runtime.
	PropgenPkg() string
}

// Artifacts produces the resolved artifact list of a file group. Each
// schema is generated independently; the collision fold runs over the
// joined output, per stream, in schema declaration order.
func (g *Generator) Artifacts(ctx context.Context, schemas ...*idl.Schema) ([]Artifact, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before generating")
	}

	results := make([][]Artifact, len(schemas))
	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for i, s := range schemas {
		i, s := i, s
		errg.Go(func() error {
			arts := g.SchemaArtifacts(s)
			arts = append(arts, g.TestDataArtifacts(s)...)
			results[i] = arts
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}

	var flat []Artifact
	for _, arts := range results {
		flat = append(flat, arts...)
	}

	// Streams are resolved independently of each other.
	var resolved []Artifact
	for _, stream := range []Stream{StreamMain, StreamTestData} {
		part := make([]Artifact, 0, len(flat))
		for _, a := range flat {
			if a.Stream == stream {
				part = append(part, a)
			}
		}
		rs, err := Resolve(part)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rs...)
	}
	return resolved, nil
}

// Generate runs a full pass: produce, resolve and write every unit of
// the file group. On a collision error nothing is written.
func (g *Generator) Generate(ctx context.Context, schemas ...*idl.Schema) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	artifacts, err := g.Artifacts(ctx, schemas...)
	if err != nil {
		return err
	}
	return NewWriter(g.cfg).WriteAll(ctx, artifacts)
}
