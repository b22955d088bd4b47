package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/compiler/gen/golang"
	"github.com/Ecialo/thriftgen/compiler/load"
)

var genFlags struct {
	config  string
	pkg     string
	target  string
	workers int
	watch   bool
	verbose bool
}

var generateCmd = &cobra.Command{
	Use:   "generate [schema...]",
	Short: "Generate code for a file group of schema documents",
	Long: `Generate reads parsed schema documents (JSON), generates the entity
packages and their test-data companions, and writes them under the
target directory. Schemas come from the project file or as arguments.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genFlags.config, "config", "c", "", "project file (default thriftgen.yaml when present)")
	f.StringVar(&genFlags.pkg, "package", "", "import path of the generated root package")
	f.StringVar(&genFlags.target, "target", "", "output directory")
	f.IntVar(&genFlags.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	f.BoolVarP(&genFlags.watch, "watch", "w", false, "regenerate when schema documents change")
	f.BoolVarP(&genFlags.verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(generateCmd)
}

func logger() *slog.Logger {
	level := slog.LevelInfo
	if genFlags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger()

	cfg, schemas, err := resolveConfig(args)
	if err != nil {
		return err
	}
	if len(schemas) == 0 {
		return fmt.Errorf("no schema documents: pass them as arguments or list them in the project file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generate(ctx, log, cfg, schemas); err != nil {
		if !genFlags.watch {
			return err
		}
		// In watch mode a failed pass is a log line, not an exit.
		log.Error("generation failed", "error", err)
	}
	if genFlags.watch {
		return watch(ctx, log, cfg, schemas)
	}
	return nil
}

// resolveConfig merges the project file with command-line overrides.
// Flags win over the file; schema arguments win over its schema list.
func resolveConfig(args []string) (*gen.Config, []string, error) {
	fc := &gen.FileConfig{}
	path := genFlags.config
	if path == "" {
		if _, err := os.Stat("thriftgen.yaml"); err == nil {
			path = "thriftgen.yaml"
		}
	}
	if path != "" {
		loaded, err := gen.LoadFileConfig(path)
		if err != nil {
			return nil, nil, err
		}
		fc = loaded
	}

	if genFlags.pkg != "" {
		fc.Package = genFlags.pkg
	}
	if genFlags.target != "" {
		fc.Target = genFlags.target
	}
	if genFlags.workers != 0 {
		fc.Workers = genFlags.workers
	}

	schemas := fc.Schemas
	if len(args) > 0 {
		schemas = args
	}

	cfg, err := fc.Config()
	if err != nil {
		return nil, nil, err
	}
	return cfg, schemas, nil
}

// generate runs one full pass over the file group.
func generate(ctx context.Context, log *slog.Logger, cfg *gen.Config, paths []string) error {
	start := time.Now()

	schemas, err := load.LoadGroup(paths...)
	if err != nil {
		return err
	}
	log.Debug("file group loaded", "schemas", len(schemas))

	g := gen.NewGenerator(cfg)
	g.WithDialect(golang.NewDialect(g))

	artifacts, err := g.Artifacts(ctx, schemas...)
	if err != nil {
		return err
	}

	w := gen.NewWriter(cfg)
	if err := w.WriteAll(ctx, artifacts); err != nil {
		return err
	}

	m := w.Metrics()
	log.Info("generated",
		"files", m.FilesWritten,
		"bytes", m.TotalBytes,
		"target", cfg.Target,
		"took", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
