package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// reloadDebounce collapses the burst of events editors emit for a single save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
// Successfully parsed configurations are sent on Updates; read and parse failures on Errors.
// A failed reload leaves the previously delivered configuration in effect.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config
	errs    chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The file's directory is watched so that editors which
// replace the file through a rename are still observed.
//
// Parameters:
//   - path: configuration file to watch
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the watcher cannot be created
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: resolve %s", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: create watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "config: watch %s", filepath.Dir(abs))
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan *Config, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates delivers each successfully reloaded configuration.
// Only the most recent pending configuration is kept. The channel is closed when the watcher stops.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload failures. Errors are dropped while one is already pending.
// The channel is closed when the watcher stops.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. Safe to call multiple times.
//
// Returns:
//   - error: error from closing the underlying fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// run owns the updates and errs channels; it is their only sender.
func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.errs)
	defer close(w.updates)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			timerCh = timer.C
		case <-timerCh:
			timerCh = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(errors.Wrap(err, "config: watch"))
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.sendError(err)
		return
	}
	// Replace a pending, unconsumed update with the newer one.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
