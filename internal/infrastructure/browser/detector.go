package browser

const (
	detectorNamePage = "page"
	priorityPage     = 100
)

// Detector reads prefers-color-scheme from the live page, the same signal
// the page's own stylesheets see. It implements port.ColorSchemeDetector.
type Detector struct {
	page *Page
}

// NewDetector creates a detector bound to page. A nil page is never available.
func NewDetector(page *Page) *Detector {
	return &Detector{page: page}
}

// Name implements port.ColorSchemeDetector.
func (*Detector) Name() string {
	return detectorNamePage
}

// Priority implements port.ColorSchemeDetector.
func (*Detector) Priority() int {
	return priorityPage
}

// Available implements port.ColorSchemeDetector.
func (d *Detector) Available() bool {
	if d.page == nil {
		return false
	}
	d.page.mu.Lock()
	defer d.page.mu.Unlock()
	return !d.page.closed
}

// Detect implements port.ColorSchemeDetector.
func (d *Detector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}
	if err := d.page.Evaluate(prefersDarkScript, &prefersDark); err != nil {
		return false, false
	}
	return prefersDark, true
}
