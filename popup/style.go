package popup

import (
	"strconv"
)

// Style returns the CSS declarations the host applies verbatim to the
// panel element.
//
// Dialog mode centers via CSS and needs no measurement. Dropdown mode
// keeps the panel invisible and non-interactive until the first real
// position is known, preventing a flash at (0,0) and stray pointer
// hits; once positioned, the computed coordinates apply and, a frame
// later, transitions are enabled.
func (c *Controller) Style() map[string]string {
	mode := c.CurrentMode()

	c.mu.Lock()
	defer c.mu.Unlock()

	if mode == ModeDialog {
		return map[string]string{
			"position":  "fixed",
			"top":       "50%",
			"left":      "50%",
			"transform": "translate(-50%, -50%)",
		}
	}

	if !c.hasPositioned {
		return map[string]string{
			"position":       "fixed",
			"top":            "0px",
			"left":           "0px",
			"opacity":        "0",
			"pointer-events": "none",
			"visibility":     "hidden",
			"transition":     "none",
		}
	}

	transition := "none"
	if c.transitionReady {
		transition = c.cfg.transition()
	}
	return map[string]string{
		"position":       "fixed",
		"top":            px(c.position.Top),
		"left":           px(c.position.Left),
		"opacity":        "1",
		"pointer-events": "auto",
		"visibility":     "visible",
		"transition":     transition,
	}
}

// px formats a coordinate as a CSS pixel length.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
