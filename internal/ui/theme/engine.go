// Package theme keeps a web document's branding in sync with the
// configuration and the system color scheme.
package theme

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/application/usecase"
	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/logging"
)

// eventBuffer bounds events queued while a transition is running.
const eventBuffer = 64

var (
	// ErrAlreadyRunning is returned when Run is called twice.
	ErrAlreadyRunning = errors.New("theme engine already running")
	// ErrClosed is returned when Run is called after Close.
	ErrClosed = errors.New("theme engine closed")
)

// State is the engine's lifecycle state.
type State int

const (
	// StateUninitialized means no ready snapshot has been applied yet.
	StateUninitialized State = iota
	// StateApplied means a ready snapshot has been applied.
	StateApplied
)

func (s State) String() string {
	switch s {
	case StateApplied:
		return "applied"
	default:
		return "uninitialized"
	}
}

// Status describes what the engine last applied.
type Status struct {
	State      State
	Setting    entity.ThemeSetting
	Mode       entity.ResolvedMode
	Subscribed bool
	Snapshot   entity.ConfigSnapshot
}

// event is one input of the transition function.
type event interface{ isEvent() }

// snapshotChanged carries a new configuration snapshot. Inline cycles
// handle preference notifications on the notifier's goroutine instead of
// queueing them for Run.
type snapshotChanged struct {
	snapshot entity.ConfigSnapshot
	inline   bool
}

// preferenceChanged carries a system preference flip observed by the
// subscription of cycle generation.
type preferenceChanged struct {
	generation  uint64
	prefersDark bool
}

func (snapshotChanged) isEvent()   {}
func (preferenceChanged) isEvent() {}

// Engine applies configuration snapshots to a document and follows the
// system color scheme while THEME is "auto".
//
// All transitions run on the goroutine calling Run (or the caller of Apply
// when Run is not used). Config and preference notifications arriving from
// other goroutines are queued as events.
type Engine struct {
	resolveTheme  *usecase.ResolveThemeUseCase
	applyBranding *usecase.ApplyBrandingUseCase

	events    chan event
	done      chan struct{}
	closeOnce sync.Once
	running   atomic.Bool

	// Owned by the transition goroutine; mu guards reads from Status.
	mu           sync.RWMutex
	status       Status
	subscription *usecase.Subscription
	generation   uint64
}

// NewEngine creates an engine writing to sink. scheme may be nil when the
// environment cannot report a color scheme.
func NewEngine(sink port.DocumentStyleSink, scheme port.ColorSchemeResolver) *Engine {
	return &Engine{
		resolveTheme:  usecase.NewResolveThemeUseCase(sink, scheme),
		applyBranding: usecase.NewApplyBrandingUseCase(sink),
		events:        make(chan event, eventBuffer),
		done:          make(chan struct{}),
	}
}

// Run applies source's current snapshot, then every later snapshot and
// preference change, until ctx is cancelled. On return the engine is closed.
func (e *Engine) Run(ctx context.Context, source port.ConfigSource) error {
	select {
	case <-e.done:
		return ErrClosed
	default:
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ctx = logging.WithComponent(ctx, "theme-engine")
	log := logging.FromContext(ctx)

	// Subscribe before reading the current snapshot so no change is missed.
	// A duplicate delivery is harmless: applying a snapshot is idempotent.
	unregister := source.OnSnapshot(func(s entity.ConfigSnapshot) {
		e.post(snapshotChanged{snapshot: s})
	})
	defer unregister()
	defer e.Close(ctx)

	e.handle(ctx, snapshotChanged{snapshot: source.Snapshot()})
	log.Debug().Msg("theme engine started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("theme engine stopping")
			return nil
		case <-e.done:
			log.Debug().Msg("theme engine closed, stopping")
			return nil
		case ev := <-e.events:
			e.handle(ctx, ev)
		}
	}
}

// Apply runs one snapshot transition synchronously, for use without Run.
// With THEME "auto" later preference changes are applied on the notifier's
// goroutine until the next Apply or Close. It must not be called while Run
// is active.
func (e *Engine) Apply(ctx context.Context, snapshot entity.ConfigSnapshot) {
	e.handle(ctx, snapshotChanged{snapshot: snapshot, inline: true})
}

// Reapply queues the last applied snapshot for Run again, for a document
// that lost its state (a page reload). It is a no-op before the first ready
// snapshot and after Close, and never blocks.
func (e *Engine) Reapply() {
	status := e.Status()
	if status.State != StateApplied {
		return
	}
	select {
	case <-e.done:
	case e.events <- snapshotChanged{snapshot: status.Snapshot}:
	default:
		go e.post(snapshotChanged{snapshot: status.Snapshot})
	}
}

// Close releases the active system preference subscription. Applied
// document state is left in place. Close is idempotent.
func (e *Engine) Close(ctx context.Context) {
	e.closeOnce.Do(func() {
		// done closes first: a transition finishing after this point sees
		// it and releases its own subscription.
		close(e.done)
		e.releaseSubscription()
		logging.FromContext(ctx).Debug().Msg("theme engine closed")
	})
}

// Status returns what the engine last applied.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// post queues an event. It never blocks once the engine is closed.
func (e *Engine) post(ev event) {
	select {
	case e.events <- ev:
	case <-e.done:
	}
}

// handle is the transition function.
func (e *Engine) handle(ctx context.Context, ev event) {
	switch ev := ev.(type) {
	case snapshotChanged:
		e.onSnapshot(ctx, ev)
	case preferenceChanged:
		e.onPreference(ctx, ev)
	}
}

func (e *Engine) onSnapshot(ctx context.Context, ev snapshotChanged) {
	log := logging.FromContext(ctx)
	snapshot := ev.snapshot

	if !snapshot.Ready {
		log.Debug().Msg("ignoring snapshot that is not ready")
		return
	}
	select {
	case <-e.done:
		log.Debug().Msg("ignoring snapshot after close")
		return
	default:
	}

	// The previous cycle's subscription goes before a new one can exist.
	e.releaseSubscription()

	e.mu.Lock()
	e.generation++
	generation := e.generation
	e.mu.Unlock()

	onPreference := func(prefersDark bool) {
		e.post(preferenceChanged{generation: generation, prefersDark: prefersDark})
	}
	if ev.inline {
		onPreference = func(prefersDark bool) {
			e.onPreference(ctx, preferenceChanged{generation: generation, prefersDark: prefersDark})
		}
	}

	theme, _ := snapshot.Value(entity.KeyTheme)
	resolved := e.resolveTheme.Execute(ctx, usecase.ResolveThemeInput{
		Theme:        theme,
		OnPreference: onPreference,
	})
	applied := e.applyBranding.Execute(ctx, snapshot.Values)

	e.mu.Lock()
	closed := e.isClosed()
	if closed {
		// Close ran while the theme was resolving and released nothing.
		defer resolved.Subscription.Release()
		resolved.Subscription = nil
	}
	e.subscription = resolved.Subscription
	e.status = Status{
		State:      StateApplied,
		Setting:    resolved.Setting,
		Mode:       resolved.Mode,
		Subscribed: resolved.Subscription != nil,
		Snapshot:   snapshot,
	}
	e.mu.Unlock()

	if closed {
		log.Debug().Msg("engine closed during transition, subscription released")
	}

	log.Info().
		Str("theme", string(resolved.Setting)).
		Str("mode", resolved.Mode.String()).
		Bool("follows_system", resolved.Subscription != nil).
		Int("applied", len(applied.Applied)).
		Msg("branding applied")
}

func (e *Engine) onPreference(ctx context.Context, ev preferenceChanged) {
	log := logging.FromContext(ctx)

	mode := entity.ModeFromPreference(ev.prefersDark)

	e.mu.RLock()
	active := e.status.State == StateApplied && e.subscription != nil && ev.generation == e.generation
	unchanged := e.status.Mode == mode
	e.mu.RUnlock()
	if !active {
		log.Debug().Uint64("generation", ev.generation).Msg("dropping stale color scheme notification")
		return
	}
	if unchanged {
		log.Debug().Str("mode", mode.String()).Msg("color scheme notification matches applied mode")
		return
	}

	e.resolveTheme.ApplyMode(ctx, mode)

	e.mu.Lock()
	e.status.Mode = mode
	e.mu.Unlock()

	log.Info().Str("mode", mode.String()).Msg("system color scheme changed")
}

func (e *Engine) isClosed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// releaseSubscription is the single release path for the system preference
// subscription, used on re-entry and on Close.
func (e *Engine) releaseSubscription() {
	e.mu.Lock()
	sub := e.subscription
	e.subscription = nil
	e.status.Subscribed = false
	e.mu.Unlock()

	sub.Release()
}
