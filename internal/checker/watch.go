package checker

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const (
	WATCH_DEBOUNCE_DURATION = 100 * time.Millisecond
)

// Watch calls onChange with the files matching patterns each time a file is created, written,
// removed or renamed in the watched directories. Bursts of events result in a single call.
// The directories watched are the base directories of the patterns and the directories of the
// files matching them when Watch is called. Watch returns when ctx is done, after the
// running call to onChange if any, onChange is never called after Watch has returned.
func Watch(ctx context.Context, patterns []string, logger zerolog.Logger, onChange func(paths []string)) error {
	logger = logger.With().Str("src", "watcher").Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watchedDirs := map[string]struct{}{}
	addDir := func(dir string) {
		if _, ok := watchedDirs[dir]; ok {
			return
		}
		if err := watcher.Add(dir); err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("failed to watch directory")
			return
		}
		watchedDirs[dir] = struct{}{}
	}

	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		addDir(filepath.FromSlash(base))
	}

	paths, _ := ExpandPatterns(patterns)
	for _, path := range paths {
		addDir(filepath.Dir(path))
	}

	if len(watchedDirs) == 0 {
		return errNothingToWatch
	}

	var (
		lock    sync.Mutex
		stopped bool
	)
	debounced := debounce.New(WATCH_DEBOUNCE_DURATION)

	defer func() {
		lock.Lock()
		defer lock.Unlock()
		stopped = true
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			if event.Has(fsnotify.Create) {
				info, err := os.Lstat(event.Name)
				if err == nil && info.IsDir() {
					addDir(event.Name)
				}
			}

			logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("file event")

			debounced(func() {
				lock.Lock()
				defer lock.Unlock()

				if stopped || ctx.Err() != nil {
					return
				}

				paths, err := ExpandPatterns(patterns)
				if err != nil {
					logger.Warn().Err(err).Send()
				}
				onChange(paths)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
