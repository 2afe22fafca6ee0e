package a11y

import (
	"fmt"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// TextRange is a client-held text range. It stores ids, not positions, and
// is checked against the current snapshot on every call.
type TextRange struct {
	host *Host
	r    uitree.TextRange
}

func (h *Host) newRange(r uitree.TextRange) *TextRange {
	return &TextRange{host: h, r: r}
}

// NewRange wraps an explicit range after validating it.
func (h *Host) NewRange(r uitree.TextRange) (*TextRange, error) {
	if err := h.tree.Snapshot().CheckRange(r); err != nil {
		return nil, err
	}
	return h.newRange(r), nil
}

// Range returns the current endpoints.
func (t *TextRange) Range() uitree.TextRange { return t.r }

func (t *TextRange) check() (*uitree.Snapshot, error) {
	s := t.host.tree.Snapshot()
	if err := s.CheckRange(t.r); err != nil {
		return nil, err
	}
	return s, nil
}

func (t *TextRange) checkOther(o *TextRange) (*uitree.Snapshot, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil range", uitree.ErrInvalidArgument)
	}
	s, err := t.check()
	if err != nil {
		return nil, err
	}
	if err := s.CheckRange(o.r); err != nil {
		return nil, err
	}
	return s, nil
}

// Clone returns an independent copy.
func (t *TextRange) Clone() *TextRange { return t.host.newRange(t.r.Clone()) }

// Compare reports whether both ranges have identical endpoints.
func (t *TextRange) Compare(o *TextRange) (bool, error) {
	if _, err := t.checkOther(o); err != nil {
		return false, err
	}
	return t.r == o.r, nil
}

func (t *TextRange) CompareEndpoints(ep uitree.Endpoint, o *TextRange, oep uitree.Endpoint) (int, error) {
	s, err := t.checkOther(o)
	if err != nil {
		return 0, err
	}
	return s.CompareEndpoints(t.r, ep, o.r, oep), nil
}

func (t *TextRange) ExpandToEnclosingUnit(unit uitree.TextUnit) error {
	s, err := t.check()
	if err != nil {
		return err
	}
	r, err := s.ExpandToEnclosingUnit(t.r, unit)
	if err != nil {
		return err
	}
	t.r = r
	return nil
}

// FindText returns the first match inside the range, or nil.
func (t *TextRange) FindText(needle string, backward, ignoreCase bool) (*TextRange, error) {
	s, err := t.check()
	if err != nil {
		return nil, err
	}
	r, ok, err := s.FindText(t.r, needle, backward, ignoreCase)
	if err != nil || !ok {
		return nil, err
	}
	return t.host.newRange(r), nil
}

// Text returns up to maxLen runes; a negative maxLen means all.
func (t *TextRange) Text(maxLen int) (string, error) {
	s, err := t.check()
	if err != nil {
		return "", err
	}
	return s.Text(t.r, maxLen), nil
}

// Move moves the range by count units and returns the steps taken.
func (t *TextRange) Move(unit uitree.TextUnit, count int) (int, error) {
	s, err := t.check()
	if err != nil {
		return 0, err
	}
	r, moved, err := s.Move(t.r, unit, count)
	if err != nil {
		return 0, err
	}
	t.r = r
	return moved, nil
}

func (t *TextRange) MoveEndpointByRange(ep uitree.Endpoint, o *TextRange, oep uitree.Endpoint) error {
	s, err := t.checkOther(o)
	if err != nil {
		return err
	}
	t.r = s.MoveEndpointByRange(t.r, ep, o.r, oep)
	return nil
}

// EnclosingElement returns the deepest element containing the whole range.
func (t *TextRange) EnclosingElement() (Element, error) {
	s, err := t.check()
	if err != nil {
		return Element{}, err
	}
	return ElementOf(s.EnclosingElement(t.r)), nil
}

// BoundingRectangles returns the visible screen rectangles of the range.
func (t *TextRange) BoundingRectangles() ([]uitree.Rect, error) {
	s, err := t.check()
	if err != nil {
		return nil, err
	}
	return s.BoundingRectangles(t.r, t.host.viewport.Viewport()), nil
}

// Children returns the elements wholly inside the range.
func (t *TextRange) Children() ([]Element, error) {
	s, err := t.check()
	if err != nil {
		return nil, err
	}
	ids := s.ElementsIn(t.r)
	out := make([]Element, len(ids))
	for i, id := range ids {
		out[i] = ElementOf(id)
	}
	return out, nil
}

func (t *TextRange) MoveEndpointByUnit(uitree.Endpoint, uitree.TextUnit, int) (int, error) {
	return 0, uitree.ErrNotImplemented
}

func (t *TextRange) FindAttribute(int, any, bool) (*TextRange, error) {
	return nil, uitree.ErrNotImplemented
}

func (t *TextRange) AttributeValue(int) (any, error) { return nil, uitree.ErrNotImplemented }

func (t *TextRange) Select() error              { return uitree.ErrNotImplemented }
func (t *TextRange) AddToSelection() error      { return uitree.ErrNotImplemented }
func (t *TextRange) RemoveFromSelection() error { return uitree.ErrNotImplemented }
func (t *TextRange) ScrollIntoView(bool) error  { return uitree.ErrNotImplemented }
