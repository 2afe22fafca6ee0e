package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/a11ytree/internal/uitree"
)

func parseInts(kind, s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid %s %q: expected %d comma-separated integers", kind, s, n)
	}
	vals := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", kind, s, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// ParsePoint parses an "x,y" string.
func ParsePoint(s string) (uitree.Point, error) {
	v, err := parseInts("point", s, 2)
	if err != nil {
		return uitree.Point{}, err
	}
	return uitree.Point{X: v[0], Y: v[1]}, nil
}

// ParseBBox parses an "x,y,w,h" string into a rectangle.
func ParseBBox(s string) (uitree.Rect, error) {
	v, err := parseInts("bbox", s, 4)
	if err != nil {
		return uitree.Rect{}, err
	}
	if v[2] < 0 || v[3] < 0 {
		return uitree.Rect{}, fmt.Errorf("invalid bbox %q: negative size", s)
	}
	return uitree.XYWH(v[0], v[1], v[2], v[3]), nil
}

// ParseTextPoint parses "<id>:<offset>".
func ParseTextPoint(s string) (uitree.TextPoint, error) {
	idStr, offStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return uitree.TextPoint{}, fmt.Errorf("invalid text point %q: expected <id>:<offset>", s)
	}
	id, err := uitree.ParseID(idStr)
	if err != nil {
		return uitree.TextPoint{}, err
	}
	off, err := strconv.Atoi(offStr)
	if err != nil {
		return uitree.TextPoint{}, fmt.Errorf("invalid text point %q: %w", s, err)
	}
	return uitree.TextPoint{ID: id, Offset: off}, nil
}

// ParseTextRange parses "<start>,<end>" where each end is a text point. A
// single point yields a degenerate range.
func ParseTextRange(s string) (uitree.TextRange, error) {
	startStr, endStr, found := strings.Cut(s, ",")
	start, err := ParseTextPoint(startStr)
	if err != nil {
		return uitree.TextRange{}, err
	}
	if !found {
		return uitree.TextRange{Start: start, End: start}, nil
	}
	end, err := ParseTextPoint(endStr)
	if err != nil {
		return uitree.TextRange{}, err
	}
	return uitree.TextRange{Start: start, End: end}, nil
}

// LabelMode controls what text is drawn on each rendered element.
type LabelMode int

const (
	// LabelNames draws the element's name.
	LabelNames LabelMode = iota
	// LabelIDs draws "[id]".
	LabelIDs
)

// ParseLabelMode converts a --labels flag value.
func ParseLabelMode(s string) (LabelMode, error) {
	switch strings.ToLower(s) {
	case "names", "name", "":
		return LabelNames, nil
	case "ids", "id":
		return LabelIDs, nil
	default:
		return LabelNames, fmt.Errorf("unknown label mode: %q (expected names or ids)", s)
	}
}
