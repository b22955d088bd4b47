package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Ecialo/thriftgen/compiler/gen"
)

// debounce coalesces the burst of filesystem events an editor save
// produces into one regeneration.
const debounce = 250 * time.Millisecond

// watch regenerates the file group whenever one of its schema documents
// changes. Directories are watched rather than files so atomic-rename
// saves keep working.
func watch(ctx context.Context, log *slog.Logger, cfg *gen.Config, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	tracked := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}
	log.Info("watching for changes", "dirs", len(dirs))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Errors:
			log.Error("watch error", "error", err)
		case ev := <-watcher.Events:
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !tracked[abs] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("schema changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := generate(ctx, log, cfg, paths); err != nil {
				log.Error("generation failed", "error", err)
			}
		}
	}
}
