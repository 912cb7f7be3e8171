// Package ui provides a Fyne host adapter for the headless controllers:
// it supplies element measurements, routes window input through an
// event bridge, and applies the popup style contract to a panel.
package ui

import (
	"fyne.io/fyne/v2"

	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
)

// element adapts a Fyne canvas object to geometry.Measurable. Positions
// are read relative to the window content, which is the coordinate
// space the host lays its overlay out in.
type element struct {
	obj fyne.CanvasObject
}

// BoundingRect returns the object's current rectangle.
func (e *element) BoundingRect() geometry.Rect {
	pos := e.obj.Position()
	size := e.obj.Size()
	return geometry.NewRect(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height))
}

// keyNames maps Fyne key identifiers onto the bridge's key names.
var keyNames = map[fyne.KeyName]string{
	fyne.KeyEscape: event.KeyEscape,
	fyne.KeyDown:   event.KeyArrowDown,
	fyne.KeyUp:     event.KeyArrowUp,
	fyne.KeyReturn: event.KeyEnter,
	fyne.KeyEnter:  event.KeyEnter,
	fyne.KeyHome:   event.KeyHome,
	fyne.KeyEnd:    event.KeyEnd,
	fyne.KeyTab:    event.KeyTab,
}
