package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"padnav/internal/eventbus"
)

// reloadDebounce collapses the burst of events editors produce on save
const reloadDebounce = 50 * time.Millisecond

// Reload is one outcome of a settings file change
type Reload struct {
	Settings *Settings
	Error    error // nil for a successful reload
}

// Watcher reloads the settings file whenever it changes on disk. It watches
// the parent directory so editors that replace the file by rename are seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	bus     eventbus.EventBus
	logger  *slog.Logger

	reloadCh chan Reload
	done     chan struct{}
	ready    chan struct{}
	mu       sync.Mutex
	started  bool
	closed   bool
}

// NewWatcher creates a watcher for the settings file at path
func NewWatcher(path string, bus eventbus.EventBus, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		bus:      bus,
		logger:   logger,
		reloadCh: make(chan Reload, 8),
		done:     make(chan struct{}),
		ready:    make(chan struct{}),
	}, nil
}

// Start begins watching and returns the reload channel. Subsequent calls
// return the same channel.
func (w *Watcher) Start() <-chan Reload {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.closed {
		return w.reloadCh
	}
	w.started = true
	go w.watch()
	return w.reloadCh
}

// Ready is closed once the watch goroutine runs
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	started := w.started
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	if !started {
		close(w.reloadCh)
	}
	return err
}

func (w *Watcher) watch() {
	defer close(w.reloadCh)
	close(w.ready)

	var pending <-chan time.Time
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			pending = time.After(reloadDebounce)

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config: watcher error", "error", err)
			w.send(Reload{Error: fmt.Errorf("settings watcher: %w", err)})
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			// removed or mid-rename; the next create event reloads
			return
		}
		w.send(Reload{Error: fmt.Errorf("failed to read settings file: %w", err)})
		return
	}
	settings, err := Parse(data)
	if err != nil {
		w.logger.Warn("config: ignoring invalid settings", "path", w.path, "error", err)
		w.bus.Publish(eventbus.ErrorEvent{Message: "settings reload failed", Err: err})
		w.send(Reload{Error: err})
		return
	}
	w.logger.Info("config: settings reloaded", "path", w.path)
	w.bus.Publish(eventbus.SettingsReloadedEvent{Path: w.path})
	w.send(Reload{Settings: settings})
}

func (w *Watcher) send(r Reload) {
	select {
	case w.reloadCh <- r:
	case <-w.done:
	}
}
