package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Writer persists resolved artifacts: each unit is rendered into one
// source file under a fixed, deterministic transform of its output
// name. Writing happens in parallel with streaming renders.
type Writer struct {
	cfg     *Config
	workers int

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks write performance.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

// NewWriter creates a writer for the given configuration.
func NewWriter(cfg *Config) *Writer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Writer{cfg: cfg, workers: workers}
}

// Metrics returns the write metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// OutputPath returns the file path of an output name, relative to the
// target directory: the leading segment becomes the package directory,
// the remaining segments join into the file name. For a single-segment
// name (a schema's own module) the directory and file share the name.
func OutputPath(name string) string {
	segments := strings.Split(name, ".")
	dir := strings.ToLower(segments[0])
	rest := segments[1:]
	if len(rest) == 0 {
		rest = segments
	}
	lowered := make([]string, len(rest))
	for i, seg := range rest {
		lowered[i] = strings.ToLower(seg)
	}
	return filepath.Join(dir, strings.Join(lowered, "_")+".go")
}

// WriteAll renders and persists every artifact. Resolution keeps names
// distinct, but the name to path transform can still fold two names
// onto one file; a duplicate path fails the pass before anything is
// written.
func (w *Writer) WriteAll(ctx context.Context, artifacts []Artifact) error {
	paths := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		p := OutputPath(a.Name)
		if prev, ok := paths[p]; ok {
			return NewGenerationError("write", a.Name,
				fmt.Sprintf("output path %s already claimed by %s", p, prev), nil)
		}
		paths[p] = a.Name
	}

	if err := os.MkdirAll(w.cfg.Target, 0o755); err != nil {
		return err
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(w.workers)
	for _, a := range artifacts {
		a := a
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeArtifact(a)
			}
		})
	}
	return errg.Wait()
}

// writeArtifact renders one unit and writes it to disk.
func (w *Writer) writeArtifact(a Artifact) error {
	f := jen.NewFile(a.Unit.Package)
	if w.cfg.Header != "" {
		f.HeaderComment(w.cfg.Header)
	}
	for _, decl := range a.Unit.Decls {
		f.Add(decl)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("write", a.Name, "render unit", err)
	}

	path := filepath.Join(w.cfg.Target, OutputPath(a.Name))

	// Jennifer already formats; the imports pass drops anything a
	// constant-merge left unused.
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError("write", a.Name, "format unit", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return NewGenerationError("write", a.Name, "write file", err)
	}

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(formatted))
	w.mu.Unlock()
	return nil
}
