package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager owns a loaded configuration and reloads it when the file
// changes on disk.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	path      string
	config    Config
	callbacks []func(Config)
	watching  bool
	log       zerolog.Logger
}

// NewManager loads path. An empty path means Path().
func NewManager(path string, log zerolog.Logger) (*Manager, error) {
	if path == "" {
		path = Path()
	}
	v := newViper(path)
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return &Manager{
		viper:  v,
		path:   path,
		config: cfg,
		log:    log.With().Str("component", "config").Logger(),
	}, nil
}

func (m *Manager) Path() string { return m.path }

func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers fn to run after every successful reload.
func (m *Manager) OnChange(fn func(Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Watch starts watching the config file. Watching a file that does not
// exist yet is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" || !exists(m.path) {
		m.log.Debug().Str("file", m.path).Msg("no config file to watch")
		return nil
	}

	m.viper.OnConfigChange(m.handleChange)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleChange(e fsnotify.Event) {
	m.log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	if err := m.Reload(); err != nil {
		m.log.Warn().Err(err).Msg("failed to reload config")
	}
}

// Reload rereads the file and notifies callbacks with the new config.
func (m *Manager) Reload() error {
	m.mu.Lock()
	cfg, err := decode(m.viper)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = cfg
	m.notifyLocked()
	return nil
}

// notifyLocked copies callbacks and config, releases the lock, then
// calls back. Must be called with m.mu held for write.
func (m *Manager) notifyLocked() {
	cfg := m.config
	callbacks := make([]func(Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
}
