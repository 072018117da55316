// Package watcher watches the settings file and notifies the app when it
// changes, so theme and tab-width edits apply without a restart.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called after the watched file changes and the change has
// settled. It runs on the watcher goroutine.
type Handler func(path string)

// Watcher monitors one settings file for writes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	debounce time.Duration
	done     chan struct{}
}

// New creates a watcher for path. The containing directory is watched so
// editors that replace the file via rename are still seen.
func New(path string, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:      fsw,
		path:     abs,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}, nil
}

// Start begins delivering change notifications on a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher. No handler calls happen after Close returns.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Coalesce bursts of writes into one notification.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.handler(w.path)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
