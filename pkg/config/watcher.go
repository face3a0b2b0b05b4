package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/odvcencio/dockyard/pkg/logging"
)

// Watcher watches a config file and delivers reloaded configs.
// Reloads are posted on a channel so the UI loop can apply them at a
// safe point instead of mid-render.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	reloads chan *Config
	done    chan struct{}
}

// Watch starts watching the given config file for changes.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		fsw:     fsw,
		reloads: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Reloads returns the channel on which reloaded configs arrive.
func (w *Watcher) Reloads() <-chan *Config {
	return w.reloads
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				logging.Warn(logging.CategoryConfig, "config.reload_failed", err.Error(), nil)
				continue
			}
			logging.Info(logging.CategoryConfig, "config.reloaded", "", map[string]any{"path": w.path})
			// Keep only the newest pending reload.
			select {
			case w.reloads <- cfg:
			default:
				select {
				case <-w.reloads:
				default:
				}
				select {
				case w.reloads <- cfg:
				default:
				}
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
