package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"

	"taxidash.io/internal/logging"
	"taxidash.io/internal/trips"
)

// ErrNotLoaded is returned when no trip table has been loaded yet.
var ErrNotLoaded = errors.New("trip data not loaded")

// ErrLoadFailed wraps every error raised while parsing a fetched source.
var ErrLoadFailed = errors.New("trip data could not be loaded")

// Mirror receives every loaded table, e.g. to keep an SQL copy.
type Mirror interface {
	ImportTrips(ctx context.Context, source string, table *trips.Table) error
}

// Snapshot is one loaded trip table. It is immutable.
type Snapshot struct {
	Source   string
	Table    *trips.Table
	Report   trips.LoadReport
	LoadedAt time.Time

	generation uint64
}

// Manager owns the trip table for the lifetime of the process. It loads the
// source once, memoizes tables per source and rendered views per selection,
// and replaces both only on an explicit Refresh.
type Manager struct {
	config      Config
	isLocalFile bool
	logger      *slog.Logger

	tables gcache.Cache
	views  gcache.Cache

	loadMu      sync.Mutex
	mu          sync.RWMutex
	current     *Snapshot
	generations atomic.Uint64

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
}

// NewManager creates a Manager for config.Source. Nothing is read until Load.
func NewManager(config Config, logger *slog.Logger) *Manager {
	config = config.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		config:       config,
		isLocalFile:  isLocalSource(config.Source),
		logger:       logger.With(slog.String("component", "dataset")),
		tables:       gcache.New(config.TableCacheSize).LRU().Build(),
		views:        gcache.New(config.ViewCacheSize).LRU().Build(),
		shutdownChan: make(chan struct{}),
	}
}

// Source returns the configured data source.
func (m *Manager) Source() string {
	return m.config.Source
}

// Load returns the table for the configured source, reading it on first use.
func (m *Manager) Load(ctx context.Context) (*Snapshot, error) {
	snapshot, err := m.LoadSource(ctx, m.config.Source)
	if err != nil {
		return nil, err
	}

	if !m.isLocalFile && m.config.RefreshInterval > 0 {
		m.startOnce.Do(func() {
			m.wg.Add(1)
			go m.refreshPeriodically()
		})
	}

	return snapshot, nil
}

// LoadSource returns the table for source and makes it current. A table
// already loaded from source is returned without reading it again.
func (m *Manager) LoadSource(ctx context.Context, source string) (*Snapshot, error) {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	if cached, err := m.tables.Get(source); err == nil {
		snapshot := cached.(*Snapshot)
		m.setCurrent(snapshot)
		return snapshot, nil
	}

	snapshot, err := m.read(ctx, source)
	if err != nil {
		return nil, err
	}

	if err := m.tables.Set(source, snapshot); err != nil {
		return nil, fmt.Errorf("error caching trip table: %w", err)
	}
	m.setCurrent(snapshot)

	return snapshot, nil
}

// Refresh drops the memoized table and rendered views and reads the
// configured source again. If the read fails the previous table stays
// current.
func (m *Manager) Refresh(ctx context.Context) (*Snapshot, error) {
	m.loadMu.Lock()
	m.tables.Remove(m.config.Source)
	m.loadMu.Unlock()

	return m.LoadSource(ctx, m.config.Source)
}

// Current returns the table in use.
func (m *Manager) Current() (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, ErrNotLoaded
	}
	return m.current, nil
}

// View returns the memoized value for key computed over snapshot, calling
// build on a miss. Build errors are not cached.
func (m *Manager) View(snapshot *Snapshot, key string, build func() (any, error)) (any, error) {
	key = strconv.FormatUint(snapshot.generation, 10) + "|" + key
	if v, err := m.views.Get(key); err == nil {
		return v, nil
	}

	v, err := build()
	if err != nil {
		return nil, err
	}

	if err := m.views.Set(key, v); err != nil {
		logging.LogError(m.logger, "failed to cache view", err, slog.String("key", key))
	}
	return v, nil
}

// ViewKey builds a view cache key from a view name, a selection and any
// view-specific parameters.
func ViewKey(view string, sel trips.Selection, params ...string) string {
	key := view + "|" + sel.Key()
	for _, p := range params {
		key += "|" + p
	}
	return key
}

// Stats describes the manager's state for diagnostics.
type Stats struct {
	Source      string
	Loaded      bool
	Rows        int
	Skipped     int
	Companies   int
	LoadedAt    time.Time
	ViewHits    uint64
	ViewMisses  uint64
	TableHits   uint64
	TableMisses uint64
}

func (m *Manager) Stats() Stats {
	stats := Stats{
		Source:      m.config.Source,
		ViewHits:    m.views.HitCount(),
		ViewMisses:  m.views.MissCount(),
		TableHits:   m.tables.HitCount(),
		TableMisses: m.tables.MissCount(),
	}

	if snapshot, err := m.Current(); err == nil {
		stats.Loaded = true
		stats.Rows = snapshot.Table.Len()
		stats.Skipped = snapshot.Report.Skipped
		stats.Companies = len(snapshot.Table.Companies())
		stats.LoadedAt = snapshot.LoadedAt
	}
	return stats
}

// Shutdown stops background refreshes.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.wg.Wait()
	})
}

func (m *Manager) setCurrent(snapshot *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != snapshot {
		m.views.Purge()
	}
	m.current = snapshot
}

func (m *Manager) read(ctx context.Context, source string) (*Snapshot, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, m.config.FetchTimeout)
	defer cancel()

	body, err := openSource(ctx, m.config.HTTPClient, source)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(body, m.logger, "trip_source")

	table, report, err := trips.Load(body, m.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: error loading trips from %s: %w", ErrLoadFailed, source, err)
	}

	snapshot := &Snapshot{
		Source:   source,
		Table:    table,
		Report:   report,
		LoadedAt: time.Now(),

		generation: m.generations.Add(1),
	}

	if m.config.Mirror != nil {
		if err := m.config.Mirror.ImportTrips(ctx, source, table); err != nil {
			logging.LogError(m.logger, "failed to mirror trip table", err,
				slog.String("source", source))
		}
	}

	logging.LogOperation(m.logger, "trips_loaded",
		slog.String("source", source),
		slog.Int("rows", report.Rows),
		slog.Int("skipped", report.Skipped),
		slog.Int("companies", len(table.Companies())),
		slog.Duration("duration", time.Since(start)))

	return snapshot, nil
}

func (m *Manager) refreshPeriodically() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), m.config.FetchTimeout)
			_, err := m.Refresh(ctx)
			cancel()
			if err != nil {
				logging.LogError(m.logger, "scheduled refresh failed", err,
					slog.String("source", m.config.Source))
			}
		case <-m.shutdownChan:
			m.logger.Info("stopping scheduled refreshes")
			return
		}
	}
}
