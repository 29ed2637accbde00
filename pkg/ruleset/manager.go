package ruleset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mgvdev/verdict/pkg/metrics"
	"github.com/mgvdev/verdict/pkg/rule/codec"
)

// ManagerConfig configures a rule set manager.
type ManagerConfig struct {
	// Path is the rule file or directory to load.
	Path string

	// Watch enables fsnotify-based hot reload of rule files.
	Watch bool

	// DebounceInterval is the watcher debounce quiet period.
	DebounceInterval time.Duration

	// RescanSchedule is an optional cron expression for periodic full
	// rescans (e.g. "*/5 * * * *"). Rescans catch changes the file
	// watcher missed, such as edits on platforms with unreliable
	// notification delivery. Empty disables scheduled rescans.
	RescanSchedule string

	// Codec selects the operator registry used to decode rule documents.
	// Nil falls back to the built-in operators.
	Codec *codec.Registry

	// Metrics optionally records reload outcomes.
	Metrics *metrics.EvaluatorMetrics
}

// Validate checks the configuration.
func (c *ManagerConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if c.DebounceInterval < 0 {
		return fmt.Errorf("debounce interval cannot be negative")
	}
	if c.RescanSchedule != "" {
		if _, err := cron.ParseStandard(c.RescanSchedule); err != nil {
			return fmt.Errorf("invalid rescan schedule %q: %w", c.RescanSchedule, err)
		}
	}
	return nil
}

// Manager loads a rule set from disk, serves it from a registry, and
// keeps it fresh through file watching and optional scheduled rescans.
type Manager struct {
	config   *ManagerConfig
	source   *FileSource
	registry *Registry
	watcher  *Watcher
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	started bool
	wg      sync.WaitGroup
}

// NewManager creates a rule set manager.
func NewManager(config *ManagerConfig, logger *slog.Logger) (*Manager, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		config:   config,
		source:   NewFileSource(config.Path, config.Codec, logger),
		registry: NewRegistry(),
		logger:   logger,
	}, nil
}

// Start loads the rule set and begins watching and scheduled rescans as
// configured. The context bounds the watcher goroutine.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return fmt.Errorf("manager already started")
	}

	if err := m.Reload(); err != nil {
		return err
	}

	if m.config.Watch {
		watcherConfig := DefaultWatcherConfig()
		watcherConfig.Path = m.config.Path
		if m.config.DebounceInterval > 0 {
			watcherConfig.DebounceInterval = m.config.DebounceInterval
		}

		watcher, err := NewWatcher(watcherConfig, m.logger)
		if err != nil {
			return err
		}
		m.watcher = watcher

		watchErr := make(chan error, 1)
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			err := watcher.Watch(ctx, m.Reload)
			watchErr <- err
			if err != nil {
				m.logger.Error("rule watcher exited", "error", err)
			}
		}()

		// Changes made the moment Start returns must not be missed, so
		// wait until the watches are registered.
		select {
		case <-watcher.Ready():
		case err := <-watchErr:
			if err != nil {
				_ = watcher.Stop()
				return err
			}
		}
	}

	if m.config.RescanSchedule != "" {
		m.cron = cron.New()
		if _, err := m.cron.AddFunc(m.config.RescanSchedule, func() {
			m.logger.Debug("scheduled rule rescan")
			if err := m.Reload(); err != nil {
				m.logger.Error("scheduled rescan failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule rescan: %w", err)
		}
		m.cron.Start()
		m.logger.Info("scheduled rule rescans enabled", "schedule", m.config.RescanSchedule)
	}

	m.started = true
	return nil
}

// Stop stops the watcher and the rescan scheduler.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return nil
	}

	if m.cron != nil {
		m.cron.Stop()
	}
	if m.watcher != nil {
		if err := m.watcher.Stop(); err != nil {
			m.logger.Error("failed to stop watcher", "error", err)
		}
	}
	m.wg.Wait()

	m.started = false
	return nil
}

// Reload loads the rule set from disk and atomically replaces the
// registry contents.
func (m *Manager) Reload() error {
	rules, err := m.source.Load()
	if err == nil {
		err = m.registry.ReplaceAll(rules)
	}

	if m.config.Metrics != nil {
		m.config.Metrics.RecordReload(err)
	}

	if err != nil {
		return err
	}

	m.logger.Info("rule set reloaded",
		"rule_count", len(rules),
		"version", m.registry.Version(),
	)
	return nil
}

// Get returns the rule with the given name.
func (m *Manager) Get(name string) (*Rule, bool) {
	return m.registry.Get(name)
}

// Rules returns all loaded rules sorted by name.
func (m *Manager) Rules() []*Rule {
	return m.registry.Rules()
}

// Registry exposes the underlying registry for direct use.
func (m *Manager) Registry() *Registry {
	return m.registry
}
