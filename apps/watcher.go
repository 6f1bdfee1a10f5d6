package apps

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Bitcoinera/aragon/errors"
	"github.com/Bitcoinera/aragon/logger"
)

// Watcher watches a registry file for changes and delivers freshly loaded
// registries to registered callbacks.
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called with the new registry after a successful reload
type ReloadCallback func(*Registry) error

// NewWatcher creates a watcher for the registry file at path.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch registry file %s", path)
	}

	return &Watcher{
		path:           path,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// OnReload registers a callback to be called when the registry is reloaded
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for registry file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching for registry changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only reload on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("Registry watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Registry watcher error",
				"error", err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("Registry reload failed",
				"error", err)
		}
	})
}

// reload reloads the registry file and calls all callbacks
func (w *Watcher) reload() error {
	registry, err := LoadFile(w.path)
	if err != nil {
		return err
	}

	logger.Infow("Registry reloaded successfully",
		"path", w.path,
		"apps", registry.Len())

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(registry); err != nil {
			logger.Warnw("Registry reload callback error",
				"error", err)
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}
