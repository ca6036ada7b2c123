package locale

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"carriertext/internal/carrier/metrics"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a catalog from an override directory whenever its YAML files change.
// A failed reload is logged and the previous catalog stays in place.
type Watcher struct {
	dir      string
	catalog  *Catalog
	onReload func(context.Context)
	logger   *slog.Logger
	metrics  *metrics.Metrics
	debounce time.Duration

	fsw     *fsnotify.Watcher
	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) WatcherOption {
	return func(w *Watcher) {
		w.metrics = m
	}
}

// WithDebounce sets how long the watcher waits for writes to settle before reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher watches dir and replaces catalog in place on change. onReload runs after
// every successful reload and may be nil.
func NewWatcher(dir string, catalog *Catalog, onReload func(context.Context), opts ...WatcherOption) (*Watcher, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	w := &Watcher{
		dir:      dir,
		catalog:  catalog,
		onReload: onReload,
		logger:   slog.Default(),
		debounce: defaultDebounce,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true

	go w.run(ctx)
	w.logger.Info("watching locale overrides", "dir", w.dir)
	return nil
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.fsw.Close(); err != nil {
		w.logger.Error("failed to close locale watcher", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if relevant(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("locale watcher error", "error", err)

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	next, err := LoadDir(w.dir)
	if err != nil {
		w.metrics.IncrementLocaleReloads(false)
		w.logger.Warn("locale reload failed, keeping previous catalog", "dir", w.dir, "error", err)
		return
	}

	w.catalog.Replace(next)
	w.metrics.IncrementLocaleReloads(true)
	w.logger.Info("locale catalog reloaded", "locales", w.catalog.Locales())

	if w.onReload != nil {
		w.onReload(ctx)
	}
}

func relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".yaml" {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
