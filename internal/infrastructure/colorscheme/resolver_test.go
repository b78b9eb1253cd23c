package colorscheme

import (
	"sync"
	"testing"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeDetector implements port.ColorSchemeDetector for testing.
type fakeDetector struct {
	mu          sync.Mutex
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (f *fakeDetector) Name() string    { return f.name }
func (f *fakeDetector) Priority() int   { return f.priority }
func (f *fakeDetector) Available() bool { return f.available }
func (f *fakeDetector) Detect() (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefersDark, f.detectOk
}

func (f *fakeDetector) set(prefersDark bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefersDark = prefersDark
}

func newFake(name string, priority int, prefersDark bool) *fakeDetector {
	return &fakeDetector{name: name, priority: priority, available: true, prefersDark: prefersDark, detectOk: true}
}

func TestResolver_DetectorPriority(t *testing.T) {
	ctrl := gomock.NewController(t)

	low := NewMockColorSchemeDetector(ctrl)
	low.EXPECT().Priority().Return(10).AnyTimes()

	high := NewMockColorSchemeDetector(ctrl)
	high.EXPECT().Priority().Return(100).AnyTimes()
	high.EXPECT().Available().Return(true)
	high.EXPECT().Detect().Return(false, true)
	high.EXPECT().Name().Return("high")

	// Register low first, high second (order shouldn't matter)
	resolver := NewResolver(low, high)

	pref := resolver.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
	assert.True(t, pref.Detected())
}

func TestResolver_SkipsUnavailableDetector(t *testing.T) {
	ctrl := gomock.NewController(t)

	unavailable := NewMockColorSchemeDetector(ctrl)
	unavailable.EXPECT().Priority().Return(100).AnyTimes()
	unavailable.EXPECT().Available().Return(false)

	resolver := NewResolver(unavailable, newFake("available", 10, true))

	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "available", pref.Source)
}

func TestResolver_SkipsFailedDetection(t *testing.T) {
	failing := newFake("failing", 100, false)
	failing.detectOk = false

	resolver := NewResolver(failing, newFake("succeeding", 10, true))

	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "succeeding", pref.Source)
}

func TestResolver_FallbackIsLightAndUndetected(t *testing.T) {
	t.Run("no detectors", func(t *testing.T) {
		pref := NewResolver().Resolve()

		assert.False(t, pref.PrefersDark)
		assert.False(t, pref.Detected())
	})

	t.Run("all fail", func(t *testing.T) {
		failing := newFake("fail1", 100, true)
		failing.detectOk = false
		unavailable := newFake("fail2", 50, true)
		unavailable.available = false

		pref := NewResolver(failing, unavailable).Resolve()

		assert.False(t, pref.PrefersDark)
		assert.False(t, pref.Detected())
	})
}

func TestResolver_RegisterDetector(t *testing.T) {
	resolver := NewResolver()
	resolver.RegisterDetector(newFake("late", 50, true))

	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "late", pref.Source)
}

func TestResolver_Refresh(t *testing.T) {
	detector := newFake("test", 50, false)
	resolver := NewResolver(detector)

	assert.False(t, resolver.Refresh().PrefersDark)
	assert.Equal(t, "test", resolver.Current().Source)

	detector.set(true)

	assert.True(t, resolver.Refresh().PrefersDark)
	assert.True(t, resolver.Current().PrefersDark)
}

func TestResolver_OnChange(t *testing.T) {
	detector := newFake("test", 50, true)
	resolver := NewResolver(detector)

	var callbackPref port.ColorSchemePreference
	var callbackCount int
	resolver.OnChange(func(pref port.ColorSchemePreference) {
		callbackPref = pref
		callbackCount++
	})

	// Initial refresh flips from the light default to dark
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)
	assert.True(t, callbackPref.PrefersDark)

	// Same preference - callback should NOT be called
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)

	detector.set(false)
	resolver.Refresh()
	assert.Equal(t, 2, callbackCount)
	assert.False(t, callbackPref.PrefersDark)
}

func TestResolver_OnChangeUnregister(t *testing.T) {
	detector := newFake("test", 50, true)
	resolver := NewResolver(detector)

	var callbackCount int
	unregister := resolver.OnChange(func(_ port.ColorSchemePreference) {
		callbackCount++
	})
	require.Equal(t, 1, resolver.Subscribers())

	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)

	unregister()
	unregister()
	assert.Equal(t, 0, resolver.Subscribers())

	detector.set(false)
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)
}

func TestResolver_CallbackMayUnregister(t *testing.T) {
	detector := newFake("test", 50, true)
	resolver := NewResolver(detector)

	var unregister func()
	calls := 0
	unregister = resolver.OnChange(func(_ port.ColorSchemePreference) {
		calls++
		unregister()
	})

	// Must not deadlock: callbacks run outside the resolver lock.
	resolver.Refresh()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, resolver.Subscribers())
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	resolver := NewResolver(newFake("test", 50, false))

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Refresh()
			}
		}()
		go func(id int) {
			defer wg.Done()
			unregister := resolver.OnChange(func(port.ColorSchemePreference) {})
			resolver.RegisterDetector(newFake("concurrent", id, id%2 == 0))
			unregister()
		}(i)
	}

	wg.Wait()
	// Test passes if no race conditions detected
}

func TestResolver_ImplementsInterface(t *testing.T) {
	var _ port.ColorSchemeResolver = NewResolver()
}
