// Package browser drives a live Chromium page over the DevTools protocol so
// the branding engine can write into a real document.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/logging"
)

// evalTimeout bounds a single script evaluation.
const evalTimeout = 5 * time.Second

// ErrClosed is returned by operations on a closed page.
var ErrClosed = errors.New("browser page closed")

// Options configures the browser launch.
type Options struct {
	// URL is the page to open.
	URL string
	// Headless runs Chromium without a window.
	Headless bool
	// ExecPath overrides the Chromium binary. Empty uses chromedp's lookup.
	ExecPath string
	// EmulateScheme forces prefers-color-scheme ("dark" or "light"). Empty
	// leaves the browser default.
	EmulateScheme string
}

// Page is a Chromium tab. It implements port.DocumentStyleSink.
type Page struct {
	ctx    context.Context // chromedp tab context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// Open launches Chromium, navigates to opts.URL and returns the page.
func Open(ctx context.Context, opts Options) (*Page, error) {
	log := logging.FromContext(ctx)

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts, chromedp.Flag("headless", opts.Headless))
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	p := &Page{
		ctx: tabCtx,
		cancel: func() {
			tabCancel()
			allocCancel()
		},
	}

	actions := []chromedp.Action{}
	if opts.EmulateScheme != "" {
		actions = append(actions, emulateScheme(opts.EmulateScheme))
	}
	actions = append(actions, chromedp.Navigate(opts.URL))

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		p.cancel()
		return nil, fmt.Errorf("open %s: %w", opts.URL, err)
	}

	log.Info().Str("url", opts.URL).Bool("headless", opts.Headless).Msg("browser page opened")
	return p, nil
}

// NewPage wraps an existing chromedp tab context. The caller keeps
// ownership of the context's lifetime.
func NewPage(tabCtx context.Context) *Page {
	return &Page{ctx: tabCtx, cancel: func() {}}
}

// Close shuts the tab and the browser it launched.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.cancel()
}

// Evaluate runs script in the page and decodes the result into res
// (nil discards it).
func (p *Page) Evaluate(script string, res any) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(p.ctx, evalTimeout)
	defer cancel()
	return chromedp.Run(ctx, chromedp.Evaluate(script, res))
}

// SetAttribute implements port.DocumentStyleSink.
func (p *Page) SetAttribute(_ context.Context, name, value string) error {
	return p.Evaluate(SetAttributeScript(name, value), nil)
}

// SetProperty implements port.DocumentStyleSink.
func (p *Page) SetProperty(_ context.Context, name, value string) error {
	return p.Evaluate(SetPropertyScript(name, value), nil)
}

// AppendFontFace implements port.DocumentStyleSink.
func (p *Page) AppendFontFace(_ context.Context, face entity.FontFace) error {
	return p.Evaluate(FontFaceScript(face), nil)
}

// EmulateScheme forces the page's prefers-color-scheme media feature.
func (p *Page) EmulateScheme(scheme string) error {
	return chromedp.Run(p.ctx, emulateScheme(scheme))
}

// WatchColorScheme forwards the page's prefers-color-scheme changes to
// resolver.Refresh. The listener survives navigations.
func (p *Page) WatchColorScheme(ctx context.Context, resolver port.ColorSchemeResolver) error {
	log := logging.FromContext(ctx)

	chromedp.ListenTarget(p.ctx, func(ev any) {
		called, ok := ev.(*runtime.EventBindingCalled)
		if !ok || called.Name != SchemeBindingName {
			return
		}
		// Listeners must not block the CDP event loop.
		go func(payload string) {
			pref := resolver.Refresh()
			log.Debug().
				Str("payload", payload).
				Bool("prefers_dark", pref.PrefersDark).
				Msg("page color scheme change")
		}(called.Payload)
	})

	listener := SchemeListenerScript()
	return chromedp.Run(p.ctx,
		runtime.AddBinding(SchemeBindingName),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(listener).Do(ctx)
			return err
		}),
		chromedp.Evaluate(listener, nil),
	)
}

// OnLoad calls fn after every document load in the tab, on its own
// goroutine. A load replaces the document and everything written to it.
func (p *Page) OnLoad(fn func()) {
	chromedp.ListenTarget(p.ctx, func(ev any) {
		if _, ok := ev.(*page.EventLoadEventFired); ok {
			go fn()
		}
	})
}

func emulateScheme(scheme string) chromedp.Action {
	return emulation.SetEmulatedMedia().WithFeatures([]*emulation.MediaFeature{
		{Name: "prefers-color-scheme", Value: scheme},
	})
}
