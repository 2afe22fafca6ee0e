package a11y

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// PatternID names a control pattern.
type PatternID int

const (
	PatternText PatternID = iota
	PatternValue
	PatternInvoke
)

func (p PatternID) String() string {
	switch p {
	case PatternText:
		return "text"
	case PatternValue:
		return "value"
	case PatternInvoke:
		return "invoke"
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

func ParsePattern(s string) (PatternID, error) {
	for _, p := range []PatternID{PatternText, PatternValue, PatternInvoke} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown pattern %q", uitree.ErrInvalidArgument, s)
}

var patternsByType = map[uitree.Type][]PatternID{
	uitree.TypeDocument: {PatternText, PatternValue},
	uitree.TypeText:     {PatternText},
	uitree.TypeButton:   {PatternInvoke},
}

// Patterns lists the patterns e supports.
func (h *Host) Patterns(e Element) ([]PatternID, error) {
	id, err := h.resolve(e)
	if err != nil || id == uitree.RootID {
		return nil, err
	}
	return patternsByType[h.tree.Snapshot().Node(id).Type], nil
}

// SupportsPattern reports whether e supports p.
func (h *Host) SupportsPattern(e Element, p PatternID) (bool, error) {
	ps, err := h.Patterns(e)
	if err != nil {
		return false, err
	}
	for _, have := range ps {
		if have == p {
			return true, nil
		}
	}
	return false, nil
}

func (h *Host) patternTarget(e Element, p PatternID) (uitree.ID, bool, error) {
	ok, err := h.SupportsPattern(e, p)
	if err != nil || !ok {
		return uitree.InvalidID, false, err
	}
	return e.ID, true, nil
}

// TextPattern returns the text provider of e. ok is false for elements that
// do not support it.
func (h *Host) TextPattern(e Element) (*TextProvider, bool, error) {
	id, ok, err := h.patternTarget(e, PatternText)
	if !ok {
		return nil, false, err
	}
	return &TextProvider{host: h, id: id}, true, nil
}

func (h *Host) ValuePattern(e Element) (*ValueProvider, bool, error) {
	id, ok, err := h.patternTarget(e, PatternValue)
	if !ok {
		return nil, false, err
	}
	return &ValueProvider{host: h, id: id}, true, nil
}

func (h *Host) InvokePattern(e Element) (*InvokeProvider, bool, error) {
	id, ok, err := h.patternTarget(e, PatternInvoke)
	if !ok {
		return nil, false, err
	}
	return &InvokeProvider{host: h, id: id}, true, nil
}

// ValueProvider exposes a read-only value: the element's name.
type ValueProvider struct {
	host *Host
	id   uitree.ID
}

func (p *ValueProvider) Value() (string, error) {
	if _, err := p.host.resolve(ElementOf(p.id)); err != nil {
		return "", err
	}
	return p.host.tree.Snapshot().Node(p.id).Name, nil
}

func (p *ValueProvider) IsReadOnly() bool { return true }

// SetValue always fails; values are read-only.
func (p *ValueProvider) SetValue(string) error { return uitree.ErrAccessDenied }

// InvokeProvider activates a button.
type InvokeProvider struct {
	host *Host
	id   uitree.ID
}

func (p *InvokeProvider) Invoke() error { return p.host.Invoke(ElementOf(p.id)) }

// SelectionMode describes what text selection a provider supports.
type SelectionMode int

const (
	SelectionNone SelectionMode = iota
	SelectionSingle
	SelectionMultiple
)

// TextProvider serves text ranges rooted at a Document or Text element.
type TextProvider struct {
	host *Host
	id   uitree.ID
}

// DocumentRange spans the element and all of its descendants.
func (p *TextProvider) DocumentRange() (*TextRange, error) {
	if _, err := p.host.resolve(ElementOf(p.id)); err != nil {
		return nil, err
	}
	return p.host.newRange(p.host.tree.Snapshot().SpanRange(p.id)), nil
}

func (p *TextProvider) SupportedTextSelection() SelectionMode { return SelectionNone }

// Selection is always empty.
func (p *TextProvider) Selection() ([]*TextRange, error) { return nil, nil }

func (p *TextProvider) VisibleRanges() ([]*TextRange, error) { return nil, uitree.ErrNotImplemented }

// RangeFromChild spans child, which must be the provider element or inside it.
func (p *TextProvider) RangeFromChild(child Element) (*TextRange, error) {
	id, err := p.host.resolve(child)
	if err != nil {
		return nil, err
	}
	if _, err := p.host.resolve(ElementOf(p.id)); err != nil {
		return nil, err
	}
	s := p.host.tree.Snapshot()
	if id != p.id && !s.IsAncestor(p.id, id) {
		return nil, fmt.Errorf("%w: %s is not inside %s", uitree.ErrInvalidArgument, id, p.id)
	}
	return p.host.newRange(s.SpanRange(id)), nil
}

// RangeFromPoint returns a degenerate range at the start of the deepest
// element under a screen point. Points outside the provider element resolve
// to the provider's own start.
func (p *TextProvider) RangeFromPoint(screen uitree.Point) (*TextRange, error) {
	if _, err := p.host.resolve(ElementOf(p.id)); err != nil {
		return nil, err
	}
	s := p.host.tree.Snapshot()
	hit := p.host.tree.HitTest(screen, p.host.viewport.Viewport())
	if hit != p.id && !s.IsAncestor(p.id, hit) {
		hit = p.id
	}
	pt := uitree.TextPoint{ID: hit}
	return p.host.newRange(uitree.TextRange{Start: pt, End: pt}), nil
}
