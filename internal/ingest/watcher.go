package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type WatchConfig struct {
	Root        string              // directory to watch (recursive)
	AllowedExts map[string]struct{} // lowercase, no dot; ExtSet(nil) when empty
	Debounce    time.Duration       // coalesce rapid create/write bursts
}

// StartWatcher watches cfg.Root recursively and emits the path of every
// created, written, or renamed document matching the extension filter.
// Events settle for cfg.Debounce before being emitted so half-written files
// are not picked up mid-copy. The goroutine exits when ctx is cancelled.
func StartWatcher(ctx context.Context, cfg WatchConfig, log *slog.Logger) (<-chan string, <-chan error, error) {
	if cfg.Root == "" {
		return nil, nil, errors.New("watch root is required")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = ExtSet(nil)
	}
	if log == nil {
		log = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the root and every subdirectory.
	err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = w.Close()
		return nil, nil, err
	}

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if err := w.Close(); err != nil {
				log.Warn("watcher close failed", "error", err)
			}
		}()

		var timer *time.Timer
		pending := map[string]struct{}{}

		flush := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e := <-w.Events:
				if e.Op&fsnotify.Create != 0 {
					// New directories must be watched too. Best-effort:
					// Add on a plain file is harmless.
					_ = w.Add(e.Name)
				}
				if _, ok := cfg.AllowedExts[extOf(e.Name)]; !ok {
					continue
				}
				if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				pending[e.Name] = struct{}{}
				if cfg.Debounce > 0 {
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(cfg.Debounce, flush)
				} else {
					flush()
				}
			case err := <-w.Errors:
				log.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}
