package locale

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cragbase/cragbase/internal/shared/logger"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reloads a Catalog whenever a locale file in its directory changes.
type Watcher struct {
	catalog  *Catalog
	logger   logger.Interface
	debounce time.Duration
}

func NewWatcher(catalog *Catalog, log logger.Interface) *Watcher {
	return &Watcher{
		catalog:  catalog,
		logger:   log,
		debounce: defaultDebounce,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create locale watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.catalog.Path()); err != nil {
		return fmt.Errorf("failed to watch locale directory: %w", err)
	}

	w.logger.Infow("watching locale files", "path", w.catalog.Path())

	// Editors emit bursts of events per save; reload once the burst settles.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isLocaleFile(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("locale watcher error", "error", err)
		case <-timer.C:
			if err := w.catalog.Reload(); err != nil {
				w.logger.Errorw("failed to reload locales", "error", err)
			}
		}
	}
}

func isLocaleFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yml" || ext == ".yaml"
}
