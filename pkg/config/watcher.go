package config

import (
	"github.com/fsnotify/fsnotify"

	"hypr-switch/pkg/logger"
)

// Watcher monitors a config file for external changes and invokes a
// callback after each rewrite. Editors and `cat >` both land here through
// Write/Create/Rename events.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     *logger.Logger
	stop    chan struct{}
}

// Watch starts watching path and calls onChange after each modification.
// The callback runs on the watcher goroutine.
func Watch(path string, log *logger.Logger, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		log:     log,
		stop:    make(chan struct{}),
	}

	go w.loop(onChange)
	log.Info("Watching config file for changes", "path", path)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Info("Config file changed", "path", w.path, "op", event.Op.String())
				onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("Config watcher error", err, "path", w.path)
		case <-w.stop:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.stop)
	return w.watcher.Close()
}
