package colorscheme

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/logging"
)

// DefaultPollInterval is how often Poller re-queries detectors.
const DefaultPollInterval = 5 * time.Second

// GsettingsMonitor streams `gsettings monitor` output and refreshes the
// resolver on every reported change.
type GsettingsMonitor struct {
	resolver port.ColorSchemeResolver
}

// NewGsettingsMonitor creates a monitor feeding resolver.
func NewGsettingsMonitor(resolver port.ColorSchemeResolver) *GsettingsMonitor {
	return &GsettingsMonitor{resolver: resolver}
}

// Run blocks until ctx is cancelled or the monitor process exits.
func (m *GsettingsMonitor) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "gsettings", "monitor", gsettingsSchema, gsettingsKey)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("gsettings monitor pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start gsettings monitor: %w", err)
	}

	m.consume(ctx, stdout)

	if err := cmd.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("gsettings monitor exited: %w", err)
	}
	return nil
}

// consume refreshes the resolver once per line read from r.
func (m *GsettingsMonitor) consume(ctx context.Context, r io.Reader) {
	log := logging.FromContext(ctx)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		pref := m.resolver.Refresh()
		log.Debug().
			Str("event", scanner.Text()).
			Bool("prefers_dark", pref.PrefersDark).
			Msg("gsettings color scheme change")
	}
}

// Poller periodically refreshes the resolver for detectors that cannot
// push change notifications (environment, macOS defaults).
type Poller struct {
	resolver port.ColorSchemeResolver
	interval time.Duration
}

// NewPoller creates a poller. A non-positive interval uses DefaultPollInterval.
func NewPoller(resolver port.ColorSchemeResolver, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{resolver: resolver, interval: interval}
}

// Run refreshes the resolver on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.resolver.Refresh()
		}
	}
}
