package app

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/raypick/internal/logger"
)

// Watcher reports changes to one scene file. Its directory is watched
// since editors often replace files instead of writing them in place.
type Watcher struct {
	fs      *fsnotify.Watcher
	mu      sync.Mutex
	path    string
	dir     string
	reloads chan string
	done    chan struct{}
	log     *zap.Logger
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fs:      fw,
		reloads: make(chan string, 1),
		done:    make(chan struct{}),
		log:     logger.Named("watch"),
	}
	if err := w.Watch(path); err != nil {
		fw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Watch switches the watcher to another file.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	if dir != w.dir {
		if w.dir != "" {
			_ = w.fs.Remove(w.dir)
		}
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dir = dir
	}
	w.mu.Lock()
	w.path = abs
	w.mu.Unlock()
	w.log.Debug("watching scene file", zap.String("path", abs))
	return nil
}

// Reloads delivers the file path after each change. Pending changes are
// coalesced into one.
func (w *Watcher) Reloads() <-chan string {
	return w.reloads
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			select {
			case w.reloads <- ev.Name:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// matches reports whether ev changed the watched file's contents.
func (w *Watcher) matches(ev fsnotify.Event) bool {
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()
	if filepath.Clean(ev.Name) != path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
