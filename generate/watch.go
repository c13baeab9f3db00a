/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/composetokens/fs"
	"bennypowers.dev/composetokens/internal/logger"
)

// DefaultDebounce groups the burst of events editors emit for a single save.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Options

	// Debounce is the quiet period after the last change before a run.
	// Defaults to DefaultDebounce.
	Debounce time.Duration
}

// Watch runs the pipeline once, then again each time the input document
// changes, until ctx is cancelled. onRun receives the outcome of every run.
// Runs never overlap.
func Watch(ctx context.Context, filesystem fs.FileSystem, opts WatchOptions, onRun func(*Report, error)) error {
	input, err := ResolveInput(filesystem, opts.Options)
	if err != nil {
		return err
	}
	input, err = filepath.Abs(input)
	if err != nil {
		return err
	}
	opts.Input = input

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often save by renaming a temp file over the original, which
	// drops a watch on the file itself, so watch its directory.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	onRun(Run(ctx, filesystem, opts.Options))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("%s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onRun(Run(ctx, filesystem, opts.Options))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher: %v", err)
		}
	}
}
