package platform

import (
	"sync"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// Window is a headless top-level window. Its client area starts at (0,0)
// and its origin can be moved on screen.
type Window struct {
	mu     sync.RWMutex
	origin uitree.Point
	width  int
	height int
}

func NewWindow(origin uitree.Point, width, height int) *Window {
	return &Window{origin: origin, width: width, height: height}
}

// Viewport returns the client rectangle and the screen offset of the window.
func (w *Window) Viewport() uitree.Viewport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return uitree.Viewport{
		Client: uitree.XYWH(0, 0, w.width, w.height),
		Offset: w.origin,
	}
}

// MoveTo places the client area's top-left corner at p in screen space.
func (w *Window) MoveTo(p uitree.Point) {
	w.mu.Lock()
	w.origin = p
	w.mu.Unlock()
}

// Resize changes the client area size. Negative sizes are clamped to zero.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = max(width, 0), max(height, 0)
	w.mu.Unlock()
}
