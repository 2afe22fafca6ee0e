package cmd

import (
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// RectResult is a rectangle in screen coordinates.
type RectResult struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

func toRectResult(r uitree.Rect) RectResult {
	return RectResult{X: r.Left, Y: r.Top, Width: r.Width(), Height: r.Height()}
}

// findElementByID searches the element tree recursively for an element with the given ID.
func findElementByID(elements []model.Element, id string) *model.Element {
	for i := range elements {
		if elements[i].ID == id {
			return &elements[i]
		}
		if found := findElementByID(elements[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}
