package geometry

// Margin is the fixed inset, in pixels, kept between a corrected panel
// and the viewport edges.
const Margin = 8

// Position is a computed panel position. Values are viewport-relative
// and meant to be applied as fixed-position offsets.
type Position struct {
	Top  float64
	Left float64
}

// ComputePosition computes where a panel should be placed relative to its
// trigger, corrected to stay within the viewport where possible.
//
// The base position follows the requested placement; the horizontal
// coordinate is then clamped into the viewport, and the vertical
// coordinate is flip-corrected: a panel overflowing the bottom flips
// above the trigger only if it fits there, and a panel overflowing the
// top is repositioned below the trigger.
//
// The function is pure. If panel has not been measured yet (zero extent)
// the result degenerates to trigger-relative coordinates; callers should
// defer invocation until the panel has been laid out at least once.
func ComputePosition(trigger, panel Rect, placement Placement, offset float64, viewport Viewport) Position {
	var top float64
	if placement.IsTop() {
		top = trigger.Top() - panel.Height - offset
	} else {
		top = trigger.Bottom() + offset
	}

	var left float64
	switch {
	case placement.IsStart():
		left = trigger.Left()
	case placement.IsEnd():
		left = trigger.Right() - panel.Width
	default:
		left = trigger.Left() + (trigger.Width-panel.Width)/2
	}

	// Horizontal clamp. The upper bound is applied last so a panel wider
	// than the viewport keeps its right edge at viewport.Width - Margin.
	if left < Margin {
		left = Margin
	}
	if max := viewport.Width - panel.Width - Margin; left > max {
		left = max
	}

	// Vertical correction.
	if top+panel.Height > viewport.Height-Margin {
		// Flip above the trigger, but only if the flipped position fits.
		if flipped := trigger.Top() - panel.Height - offset; flipped >= Margin {
			top = flipped
		}
	} else if top < Margin {
		top = trigger.Bottom() + offset
	}

	return Position{Top: top, Left: left}
}
