package faq

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"CorpSite/internal/lib/sl"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the catalog file into a Store whenever it changes on
// disk. A file that fails to parse leaves the previous catalog in place.
type Watcher struct {
	path     string
	store    *Store
	debounce time.Duration
	log      *slog.Logger
}

func NewWatcher(path string, store *Store, log *slog.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		store:    store,
		debounce: 300 * time.Millisecond,
		log:      log.With(sl.Module("faq.watcher"), slog.String("path", path)),
	}
}

// Run blocks until ctx ends. The directory is watched rather than the file
// because editors often replace files by rename.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create faq watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching faq catalog")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("faq watcher", sl.Err(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	catalog, err := Load(w.path)
	if err != nil {
		w.log.Warn("faq reload failed, keeping previous catalog", sl.Err(err))
		return
	}
	w.store.Replace(catalog)
	w.log.Info("faq catalog reloaded", slog.Int("entries", catalog.Len()))
}
