package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher

	IconConfig  = "" // config
	IconImage   = "" // image file
	IconFont    = "" // font
	IconPalette = "" // palette
	IconMoon    = "" // moon
	IconSun     = "" // sun
	IconGlobe   = "" // browser/web
	IconCheck   = "" // check
	IconCross   = "" // cross
)
