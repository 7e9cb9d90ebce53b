// Package watch reports writes to a fixed set of input files.
package watch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change names a watched file that was written.
type Change struct {
	Role string // caller-chosen tag, e.g. "data"
	Path string
}

// Watcher watches the directories of its files and forwards debounced
// write/create events for exactly those files.
type Watcher struct {
	w        *fsnotify.Watcher
	delay    time.Duration
	out      chan Change
	done     chan struct{}
	mu       sync.Mutex
	watching map[string]string // abs path -> role
	timers   map[string]*time.Timer

	closeOnce sync.Once
}

// New starts a watcher. delay debounces bursts of writes to one file.
func New(delay time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		w:        fw,
		delay:    delay,
		out:      make(chan Change, 8),
		done:     make(chan struct{}),
		watching: map[string]string{},
		timers:   map[string]*time.Timer{},
	}
	go w.loop()
	return w, nil
}

// Add watches path under role.
func (w *Watcher) Add(role, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.watching[abs] = role
	w.mu.Unlock()
	// fsnotify loses files replaced by editors on save, so watch the directory.
	return w.w.Add(filepath.Dir(abs))
}

// Changes delivers debounced changes until Close.
func (w *Watcher) Changes() <-chan Change { return w.out }

// Done is closed once the watcher is closed.
func (w *Watcher) Done() <-chan struct{} { return w.done }

// Close stops the watcher. Later calls return nil.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.mu.Unlock()
		err = w.w.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, _ := filepath.Abs(event.Name)
			w.mu.Lock()
			role, watched := w.watching[abs]
			if watched {
				if t, exists := w.timers[abs]; exists {
					t.Stop()
				}
				c := Change{Role: role, Path: abs}
				w.timers[abs] = time.AfterFunc(w.delay, func() { w.emit(c) })
			}
			w.mu.Unlock()
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}

func (w *Watcher) emit(c Change) {
	select {
	case w.out <- c:
	case <-w.done:
	}
}
