// Package watch reports changes to a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period used when Start is given none.
const DefaultDelay = 100 * time.Millisecond

// Watcher delivers one signal per burst of writes to a file. The file's
// directory is watched so that editors which save by renaming a temporary
// file over it are still seen.
type Watcher struct {
	fsw   *fsnotify.Watcher
	path  string
	delay time.Duration

	changes chan struct{}
	errors  chan error
	done    chan struct{}
}

// Start watches path until ctx is done. Writes within delay of each other
// are coalesced.
func Start(ctx context.Context, path string, delay time.Duration) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		delay:   delay,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Changes receives a value after each burst of writes. It is closed when
// the watcher stops.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors receives watcher failures. Errors arriving while one is unread are
// dropped.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Done is closed once the watcher has released its resources.
func (w *Watcher) Done() <-chan struct{} { return w.done }

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer close(w.errors)
	defer close(w.changes)
	defer w.fsw.Close()

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(w.delay)
			pending = true

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
