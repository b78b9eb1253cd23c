package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Without a config file there is nothing to watch and Watch is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper.ConfigFileUsed() == "" {
		log.Debug().Msg("no config file in use, hot reload disabled")
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.handleConfigChange(ctx, e)
	})
	m.viper.WatchConfig()

	m.watching = true
	log.Debug().Str("file", m.viper.ConfigFileUsed()).Msg("watching config file")
	return nil
}

// handleConfigChange reloads the configuration after an fsnotify event and
// notifies subscribers when the snapshot changed.
func (m *Manager) handleConfigChange(ctx context.Context, e fsnotify.Event) {
	log := logging.FromContext(ctx)
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	m.mu.Lock()
	previous := snapshotOf(m.config)

	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("failed to read changed config, keeping previous values")
		return
	}
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
		return
	}

	current := snapshotOf(m.config)
	if current.Equal(previous) {
		m.mu.Unlock()
		log.Debug().Msg("config reloaded, branding unchanged")
		return
	}
	m.notifyCallbacksLocked(current)
}

// notifyCallbacksLocked copies callbacks, releases the lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked(snapshot entity.ConfigSnapshot) {
	callbacks := make([]*snapshotCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(snapshot)
	}
}

// OnSnapshot implements port.ConfigSource.
func (m *Manager) OnSnapshot(callback func(entity.ConfigSnapshot)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	wrapper := &snapshotCallback{fn: callback}
	m.callbacks = append(m.callbacks, wrapper)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, cb := range m.callbacks {
			if cb == wrapper {
				m.callbacks = append(m.callbacks[:i], m.callbacks[i+1:]...)
				return
			}
		}
	}
}
