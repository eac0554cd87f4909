// Package watcher re-runs the localisation pass over files in a
// directory as they appear or change. Because the pass is idempotent,
// each event simply triggers a fresh full pass over the file.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/timelocal-cli/internal/logger"
)

const (
	// DefaultEventRate throttles how many file events are processed
	// per second. Editors and build tools fire bursts of writes.
	DefaultEventRate = 10

	// DefaultEventBurst is the token bucket size for event bursts.
	DefaultEventBurst = 16
)

// Config controls a directory watch.
type Config struct {
	// Dir is the directory to watch (non-recursive).
	Dir string

	// OutDir receives localised copies. Defaults to "<Dir>-localized".
	// Files under OutDir are never processed, so writes cannot retrigger
	// the watch loop.
	OutDir string

	// Settings supplies the extensions to process.
	Settings domain.Settings

	// EventRate and EventBurst tune the event throttle. Zero values
	// select the defaults.
	EventRate  float64
	EventBurst int
}

// Watcher localises files in a directory as they change.
type Watcher struct {
	localizer driving.Localizer
	cfg       Config
	limiter   *rate.Limiter
}

// New creates a watcher for the configured directory.
func New(localizer driving.Localizer, cfg Config) (*Watcher, error) {
	if localizer == nil {
		return nil, fmt.Errorf("%w: localizer is required", domain.ErrInvalidInput)
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("%w: watch directory is required", domain.ErrInvalidInput)
	}
	if cfg.OutDir == "" {
		cfg.OutDir = strings.TrimSuffix(cfg.Dir, string(filepath.Separator)) + "-localized"
	}
	if cfg.EventRate <= 0 {
		cfg.EventRate = DefaultEventRate
	}
	if cfg.EventBurst <= 0 {
		cfg.EventBurst = DefaultEventBurst
	}

	return &Watcher{
		localizer: localizer,
		cfg:       cfg,
		limiter:   rate.NewLimiter(rate.Limit(cfg.EventRate), cfg.EventBurst),
	}, nil
}

// OutDir returns the resolved output directory.
func (w *Watcher) OutDir() string {
	return w.cfg.OutDir
}

// Run processes all existing eligible files, then watches for changes
// until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.initialPass(ctx); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close() //nolint:errcheck

	if err := fw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.cfg.Dir, err)
	}
	logger.Info("watching %s -> %s", w.cfg.Dir, w.cfg.OutDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return domain.ErrWatcherClosed
			}
			if !shouldProcess(event.Op) || !w.eligible(event.Name) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			if err := w.processFile(ctx, event.Name); err != nil {
				logger.Warn("processing %s: %v", event.Name, err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return domain.ErrWatcherClosed
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// initialPass localises the eligible files already present.
func (w *Watcher) initialPass(ctx context.Context) error {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.cfg.Dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.cfg.Dir, entry.Name())
		if !w.eligible(path) {
			continue
		}
		if err := w.processFile(ctx, path); err != nil {
			logger.Warn("processing %s: %v", path, err)
		}
	}
	return nil
}

// processFile localises one file into the output directory.
func (w *Watcher) processFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	result, err := w.localizer.Localize(ctx, src)
	if err != nil {
		return fmt.Errorf("localising: %w", err)
	}

	if err := os.MkdirAll(w.cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	dest := filepath.Join(w.cfg.OutDir, filepath.Base(path))
	if err := os.WriteFile(dest, result.Output, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("localised %s (%d stamp(s)) -> %s", path, result.Count(), dest)
	return nil
}

// eligible reports whether a path should be processed: matching
// extension and not inside the output directory.
func (w *Watcher) eligible(path string) bool {
	if !w.cfg.Settings.WatchesExtension(filepath.Ext(path)) {
		return false
	}
	rel, err := filepath.Rel(w.cfg.OutDir, path)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return false
	}
	return true
}

// shouldProcess reports whether a file event warrants re-localising.
// Removes, renames, and chmods carry no new content.
func shouldProcess(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write)
}
