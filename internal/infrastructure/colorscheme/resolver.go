package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/uxtheme/internal/application/port"
)

// sourceFallback indicates no detector provided the preference.
const sourceFallback = ""

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// It queries registered detectors in priority order and notifies
// subscribers when a refresh flips the preference.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

// NewResolver creates a new color scheme resolver with the given detectors.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{
		detectors: make([]port.ColorSchemeDetector, 0, len(detectors)),
		current: port.ColorSchemePreference{
			PrefersDark: false, // Light until first Refresh()
			Source:      sourceFallback,
		},
	}
	r.detectors = append(r.detectors, detectors...)
	return r
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() port.ColorSchemePreference {
	// Sort detectors by priority (highest first)
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{
		PrefersDark: false,
		Source:      sourceFallback,
	}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	newPref := r.resolveInternal()
	changed := newPref.PrefersDark != r.current.PrefersDark
	r.current = newPref

	if !changed {
		r.mu.Unlock()
		return newPref
	}

	// Copy callbacks to avoid holding lock during callback invocation
	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}
	return newPref
}

// Current returns the preference computed by the last Refresh.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Wrap callback to enable pointer comparison for removal
	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	// Return unregister function
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered change callbacks.
func (r *Resolver) Subscribers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.callbacks)
}
