package dataset

import (
	"errors"
	"log/slog"
	"sync"

	"econdash.hanlabs.org/internal/logging"
)

// viewCacheLimit bounds the memoized-view map. Selections come from a small
// set of filter widgets, so the cache rarely grows past a handful of
// entries; the limit only guards against adversarial query strings.
const viewCacheLimit = 256

// ErrNotLoaded is returned by Dataset when the source file could not be
// read at startup.
var ErrNotLoaded = errors.New("dataset not loaded")

// Manager owns the load-once dataset and memoizes filtered views keyed on
// the selection, replacing the re-run caching an interactive notebook would
// give for free. The dataset is read-only after load and is never reloaded
// or invalidated.
type Manager struct {
	dataset *Dataset
	loadErr error

	mu    sync.Mutex
	views map[string]*View
}

// NewManager loads the CSV at path exactly once. A failed load does not
// crash the process: the error is recorded and surfaced on every access so
// the UI can report it and suppress the dashboard body.
func NewManager(path string, logger *slog.Logger) *Manager {
	m := &Manager{views: make(map[string]*View)}

	ds, err := Load(path)
	if err != nil {
		m.loadErr = err
		logging.LogError(logger, "failed to load dataset", err,
			slog.String("path", path),
			slog.String("component", "dataset_manager"))
		return m
	}

	m.dataset = ds
	logging.LogOperation(logger, "dataset_loaded",
		slog.String("path", path),
		slog.Int("rows", ds.Nrow()),
		slog.Int("years", len(ds.Years())),
		slog.Int("regions", len(ds.Regions())),
		slog.String("component", "dataset_manager"))
	return m
}

// NewManagerFromDataset wraps an already-built dataset. Used by tests.
func NewManagerFromDataset(ds *Dataset) *Manager {
	return &Manager{dataset: ds, views: make(map[string]*View)}
}

// Dataset returns the loaded dataset, or the load error when the source
// file was missing or malformed.
func (m *Manager) Dataset() (*Dataset, error) {
	if m.dataset == nil {
		if m.loadErr != nil {
			return nil, m.loadErr
		}
		return nil, ErrNotLoaded
	}
	return m.dataset, nil
}

// FilteredView returns the memoized view for the selection, deriving and
// caching it on first use.
func (m *Manager) FilteredView(sel Selection) (*View, error) {
	ds, err := m.Dataset()
	if err != nil {
		return nil, err
	}

	sel = sel.Normalize()
	key := sel.Key()

	m.mu.Lock()
	defer m.mu.Unlock()

	if view, ok := m.views[key]; ok {
		return view, nil
	}

	view, err := ds.Filter(sel)
	if err != nil {
		return nil, err
	}

	if len(m.views) >= viewCacheLimit {
		m.views = make(map[string]*View)
	}
	m.views[key] = view
	return view, nil
}
