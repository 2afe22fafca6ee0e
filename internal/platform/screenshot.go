package platform

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/uitree"
)

var (
	backgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	boxColor        = color.RGBA{R: 108, G: 112, B: 134, A: 255}
	buttonColor     = color.RGBA{R: 167, G: 139, B: 250, A: 255}
	focusColor      = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	textColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	outlineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// Renderer draws element rectangles and labels onto a blank canvas the
// size of the viewport's client area.
type Renderer struct {
	Mode LabelMode
}

func NewRenderer(mode LabelMode) *Renderer { return &Renderer{Mode: mode} }

// Capture implements Screenshotter.
func (r *Renderer) Capture(elements []model.Element, vp uitree.Viewport) (image.Image, error) {
	w, h := vp.Client.Width(), vp.Client.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty viewport %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for _, el := range model.FlattenElements(elements) {
		r.drawElement(img, el, vp.Offset)
	}
	return img, nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// drawElement converts screen bounds back to client pixels and draws the
// element's outline and label.
func (r *Renderer) drawElement(img *image.RGBA, el model.FlatElement, origin uitree.Point) {
	x := el.Bounds[0] - origin.X
	y := el.Bounds[1] - origin.Y
	w, h := el.Bounds[2], el.Bounds[3]
	if w <= 0 || h <= 0 {
		return
	}

	c := boxColor
	if len(el.Actions) > 0 {
		c = buttonColor
	}
	drawRectangle(img, x, y, x+w, y+h, c)
	if el.Focused {
		drawRectangle(img, x+1, y+1, x+w-1, y+h-1, focusColor)
	}

	label := el.Title
	if r.Mode == LabelIDs {
		label = "[" + el.ID + "]"
	}
	maxChars := (w - 4) / 7
	if maxChars <= 0 {
		return
	}
	if runes := []rune(label); len(runes) > maxChars {
		label = string(runes[:maxChars])
	}
	drawTextWithOutline(img, label, x+3, y+h/2+4, textColor, outlineColor)
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws the outline of [x1,x2) x [y1,y2), clipped to img.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	x1, y1 = max(x1, bounds.Min.X), max(y1, bounds.Min.Y)
	x2, y2 = min(x2, bounds.Max.X), min(y2, bounds.Max.Y)
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline draws text with its baseline starting at (x, y).
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, outline color.Color) {
	if !isWithinBounds(img.Bounds(), x, y) {
		return
	}
	d := &font.Drawer{Dst: img, Face: basicfont.Face7x13}

	d.Src = image.NewUniform(outline)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d.Dot = fixed.P(x+dx, y+dy)
			d.DrawString(text)
		}
	}

	d.Src = image.NewUniform(fg)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
