// Package popup implements the popup controller: it decides whether a
// panel displays as an anchored dropdown or a centered dialog, drives
// position computation at the right moments (open, resize, scroll), and
// exposes a style contract the host applies to the panel verbatim.
package popup

// Mode selects how the panel is displayed.
type Mode string

const (
	// ModeDropdown anchors the panel to its trigger.
	ModeDropdown Mode = "dropdown"
	// ModeDialog centers the panel in the viewport.
	ModeDialog Mode = "dialog"
	// ModeAuto picks dialog below the breakpoint, dropdown above it.
	ModeAuto Mode = "auto"
)

// DefaultBreakpoint is the viewport width, in pixels, below which auto
// mode resolves to dialog.
const DefaultBreakpoint = 768

// ModeFor derives the effective display mode for a viewport width. An
// explicit dropdown or dialog configuration pins the mode regardless of
// width.
func ModeFor(viewportWidth float64, cfg Config) Mode {
	switch cfg.Mode {
	case ModeDropdown, ModeDialog:
		return cfg.Mode
	}
	if viewportWidth < cfg.breakpoint() {
		return ModeDialog
	}
	return ModeDropdown
}
