package platform

import (
	"image"

	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// ViewportSource reports where the tree's window sits on screen.
type ViewportSource interface {
	Viewport() uitree.Viewport
}

// EventSink receives change notifications raised by the tree.
type EventSink interface {
	uitree.Notifier
	// Drain returns and clears the events raised so far.
	Drain() []uitree.Event
}

// Screenshotter renders a picture of the laid-out tree.
type Screenshotter interface {
	// Capture draws elements, whose bounds are in screen space, into an
	// image of the viewport's client area.
	Capture(elements []model.Element, vp uitree.Viewport) (image.Image, error)
}
