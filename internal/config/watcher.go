package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/vimops/internal/logging"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithEnvPrefix sets the environment prefix applied on every reload.
func WithEnvPrefix(prefix string) WatchOption {
	return func(w *Watcher) {
		w.prefix = prefix
	}
}

// WithWatchLogger sets the logger for reload diagnostics.
func WithWatchLogger(l *logging.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher reloads a config file when it changes.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string

	debounce time.Duration
	prefix   string
	log      *logging.Logger

	onChange func(*Config)
	onError  func(error)

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch starts watching path. The file's directory is watched so that
// editors which save by renaming are seen. Each settled change is
// resolved like Resolve and passed to onChange; failures go to onError.
// The watcher stops when ctx is done or Close is called.
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error), opts ...WatchOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		debounce: DefaultDebounce,
		prefix:   DefaultEnvPrefix,
		log:      logging.Nop(),
		onChange: onChange,
		onError:  onError,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.WithComponent("config")

	w.wg.Add(1)
	go w.loop(ctx)
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for the event loop to exit.
// It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

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
			return
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("%s: %s", ev.Op, ev.Name)
			if w.debounce == 0 {
				w.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// relevant reports whether ev changes the watched file's content.
// Removal is ignored; the last good config stays in effect.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	cfg, err := Resolve(w.path, w.prefix)
	if err != nil {
		w.report(err)
		return
	}

	w.log.Info("reloaded %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) report(err error) {
	w.log.Warn("watch %s: %v", w.path, err)
	if w.onError != nil {
		w.onError(err)
	}
}
