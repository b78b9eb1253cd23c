package port

import "github.com/bnema/uxtheme/internal/domain/entity"

// ConfigSource supplies branding configuration snapshots.
type ConfigSource interface {
	// Snapshot returns the current snapshot. It is not ready until the
	// configuration has been loaded at least once.
	Snapshot() entity.ConfigSnapshot

	// OnSnapshot registers a callback invoked with every new snapshot.
	// Returns a function to unregister the callback.
	OnSnapshot(callback func(entity.ConfigSnapshot)) func()
}
