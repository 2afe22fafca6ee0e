package uitree

// Point is a position in either client or screen space.
type Point struct {
	X, Y int
}

// Rect is a half-open rectangle: Left and Top are inside, Right and Bottom are not.
type Rect struct {
	Left, Top, Right, Bottom int
}

// XYWH builds a Rect from origin and size.
func XYWH(x, y, w, h int) Rect { return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h} }

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports a zero-area or inverted rectangle.
func (r Rect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the overlap of r and o. The result may be Empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
}

// Union returns the smallest rectangle covering r and o. An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if o.Empty() {
		return r
	}
	if r.Empty() {
		return o
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

func (r Rect) Translate(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// XYWH returns the rectangle as [x, y, width, height].
func (r Rect) XYWH() [4]int { return [4]int{r.Left, r.Top, r.Width(), r.Height()} }

// Viewport is the window's client rectangle in client coordinates plus the
// screen position of the client origin.
type Viewport struct {
	Client Rect
	Offset Point
}

// ToClient converts a screen point to client coordinates.
func (v Viewport) ToClient(p Point) Point {
	return Point{X: p.X - v.Offset.X, Y: p.Y - v.Offset.Y}
}

// ToScreen converts a client rectangle to screen coordinates.
func (v Viewport) ToScreen(r Rect) Rect { return r.Translate(v.Offset.X, v.Offset.Y) }
