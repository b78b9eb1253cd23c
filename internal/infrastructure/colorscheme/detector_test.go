package colorscheme

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/stretchr/testify/assert"
)

func TestParseGsettingsColorScheme(t *testing.T) {
	tests := []struct {
		raw      string
		wantDark bool
		wantOK   bool
	}{
		{raw: "'prefer-dark'\n", wantDark: true, wantOK: true},
		{raw: "'prefer-light'\n", wantDark: false, wantOK: true},
		{raw: "\"prefer-dark\"", wantDark: true, wantOK: true},
		{raw: "'default'\n", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		dark, ok := parseGsettingsColorScheme(tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.wantDark, dark, tt.raw)
	}
}

func TestGsettingsDetector(t *testing.T) {
	d := &GsettingsDetector{
		lookup: func(string) bool { return true },
		run: func(_ context.Context, name string, args ...string) ([]byte, error) {
			assert.Equal(t, "gsettings", name)
			assert.Equal(t, []string{"get", gsettingsSchema, gsettingsKey}, args)
			return []byte("'prefer-dark'\n"), nil
		},
	}

	assert.True(t, d.Available())
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	d.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("no dbus")
	}
	_, ok = d.Detect()
	assert.False(t, ok)
}

func TestDefaultsDetector(t *testing.T) {
	d := &DefaultsDetector{
		goos:   "linux",
		lookup: func(string) bool { return true },
	}
	assert.False(t, d.Available())

	d.goos = "darwin"
	assert.True(t, d.Available())

	d.run = func(context.Context, string, ...string) ([]byte, error) {
		return []byte("Dark\n"), nil
	}
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	// The key is absent in light mode and defaults exits non-zero.
	d.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}
	dark, ok = d.Detect()
	assert.True(t, ok)
	assert.False(t, dark)
}

func TestEnvDetector(t *testing.T) {
	d := NewEnvDetectorFor("UX_TEST_GTK_THEME")

	t.Setenv("UX_TEST_GTK_THEME", "")
	assert.False(t, d.Available())
	_, ok := d.Detect()
	assert.False(t, ok)

	t.Setenv("UX_TEST_GTK_THEME", "Adwaita:dark")
	assert.True(t, d.Available())
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	t.Setenv("UX_TEST_GTK_THEME", "Adwaita")
	dark, ok = d.Detect()
	assert.True(t, ok)
	assert.False(t, dark)
	assert.Equal(t, "UX_TEST_GTK_THEME", d.Name())
}

func TestGsettingsMonitor_RefreshesPerLine(t *testing.T) {
	detector := newFake("test", 50, false)
	resolver := NewResolver(detector)
	flips := 0
	resolver.OnChange(func(_ port.ColorSchemePreference) { flips++ })

	monitor := NewGsettingsMonitor(resolver)
	detector.set(true)
	monitor.consume(context.Background(), strings.NewReader("color-scheme: 'prefer-dark'\n"))

	assert.Equal(t, 1, flips)
	assert.True(t, resolver.Current().PrefersDark)
}

func TestPoller_RefreshesUntilCancelled(t *testing.T) {
	detector := newFake("test", 50, false)
	resolver := NewResolver(detector)
	changed := make(chan struct{}, 1)
	resolver.OnChange(func(_ port.ColorSchemePreference) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewPoller(resolver, 5*time.Millisecond).Run(ctx) }()

	detector.set(true)

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("poller never refreshed the resolver")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestStaticDetector_OutranksDesktop(t *testing.T) {
	resolver := NewResolver(newFake("desktop", priorityGsettings, false), NewStaticDetector(true))

	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "static", pref.Source)
}

func TestHasAvailable(t *testing.T) {
	off := newFake("off", 1, false)
	off.available = false

	assert.False(t, HasAvailable(nil))
	assert.False(t, HasAvailable([]port.ColorSchemeDetector{off}))
	assert.True(t, HasAvailable([]port.ColorSchemeDetector{off, NewStaticDetector(false)}))
	assert.Len(t, DesktopDetectors(), 3)
}
