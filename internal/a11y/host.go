package a11y

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// ViewportSource reports the window's client rectangle and its screen offset.
type ViewportSource interface {
	Viewport() uitree.Viewport
}

// Host answers client queries against the tree's current snapshot. Handles
// whose ids are gone fail with uitree.ErrStaleElement.
type Host struct {
	tree     *uitree.Tree
	viewport ViewportSource
	name     string
	log      *slog.Logger
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithName sets the name reported for the root element.
func WithName(name string) HostOption { return func(h *Host) { h.name = name } }

func WithLogger(l *slog.Logger) HostOption { return func(h *Host) { h.log = l } }

func NewHost(tree *uitree.Tree, vp ViewportSource, opts ...HostOption) *Host {
	h := &Host{
		tree:     tree,
		viewport: vp,
		name:     "a11ytree",
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Tree returns the underlying tree.
func (h *Host) Tree() *uitree.Tree { return h.tree }

// resolve maps a handle to an id present in the current snapshot.
func (h *Host) resolve(e Element) (uitree.ID, error) {
	if e.IsRoot() {
		return uitree.RootID, nil
	}
	if !e.ID.Valid() {
		return uitree.InvalidID, fmt.Errorf("%w: element id %s", uitree.ErrInvalidArgument, e.ID)
	}
	if !h.tree.Snapshot().Has(e.ID) {
		return uitree.InvalidID, fmt.Errorf("element %s: %w", e.ID, uitree.ErrStaleElement)
	}
	return e.ID, nil
}

// Navigate steps from e in direction dir. ok is false when there is no such
// relative.
func (h *Host) Navigate(e Element, dir Direction) (Element, bool, error) {
	id, err := h.resolve(e)
	if err != nil {
		return Element{}, false, err
	}
	s := h.tree.Snapshot()
	var next uitree.ID
	switch dir {
	case Parent:
		next = s.Parent(id)
	case NextSibling:
		next = s.NextSibling(id)
	case PrevSibling:
		next = s.PrevSibling(id)
	case FirstChild:
		next = s.FirstChild(id)
	case LastChild:
		next = s.LastChild(id)
	default:
		return Element{}, false, fmt.Errorf("%w: direction %d", uitree.ErrInvalidArgument, int(dir))
	}
	if next == uitree.InvalidID {
		return Element{}, false, nil
	}
	return ElementOf(next), true, nil
}

// Property returns the value of prop for e, or an empty Value when the
// property does not apply.
func (h *Host) Property(e Element, prop PropertyID) (Value, error) {
	id, err := h.resolve(e)
	if err != nil {
		return Value{}, err
	}
	if id == uitree.RootID {
		return h.rootProperty(prop), nil
	}

	n := h.tree.Snapshot().Node(id)
	switch prop {
	case PropName:
		return stringValue(n.Name), nil
	case PropControlType:
		return Value{Kind: ValueInt, Int: controlTypeIDs[n.Type], Str: n.Type.String()}, nil
	case PropIsControlElement, PropIsContentElement, PropIsEnabled, PropIsKeyboardFocusable:
		return boolValue(true), nil
	case PropHasKeyboardFocus:
		return boolValue(h.tree.Focused() == id), nil
	case PropLabeledBy:
		if n.Type == uitree.TypeDocument {
			return stringValue(n.Name), nil
		}
	case PropClassName:
		return stringValue("a11ytree." + n.Type.String()), nil
	case PropProviderDescription:
		return stringValue("a11ytree element provider"), nil
	case PropAutomationID:
		return stringValue(id.String()), nil
	case PropRuntimeID:
		return intsValue([]int{appendRuntimeID, int(id.Runtime())}), nil
	case PropTextLength:
		return Value{Kind: ValueInt, Int: n.TextLen}, nil
	}
	h.log.Debug("property not supported", "id", id, "property", prop.String())
	return Value{}, nil
}

func (h *Host) rootProperty(prop PropertyID) Value {
	switch prop {
	case PropName:
		return stringValue(h.name)
	case PropControlType:
		return Value{Kind: ValueInt, Int: controlTypeIDs[uitree.TypePane], Str: uitree.TypePane.String()}
	case PropIsControlElement, PropIsContentElement, PropIsEnabled, PropIsKeyboardFocusable:
		return boolValue(true)
	case PropHasKeyboardFocus:
		return boolValue(h.tree.Focused() == uitree.RootID)
	case PropProviderDescription:
		return stringValue("a11ytree root provider")
	}
	return Value{}
}

// RuntimeID returns the client-visible runtime id. The root has none of its
// own; the hosting window supplies it.
func (h *Host) RuntimeID(e Element) ([]int, error) {
	id, err := h.resolve(e)
	if err != nil || id == uitree.RootID {
		return nil, err
	}
	return []int{appendRuntimeID, int(id.Runtime())}, nil
}

// BoundingRect returns e's rectangle in screen coordinates. The root reports
// the viewport.
func (h *Host) BoundingRect(e Element) (uitree.Rect, error) {
	id, err := h.resolve(e)
	if err != nil {
		return uitree.Rect{}, err
	}
	vp := h.viewport.Viewport()
	if id == uitree.RootID {
		return vp.ToScreen(vp.Client), nil
	}
	return vp.ToScreen(h.tree.Snapshot().Node(id).Rect), nil
}

// Invoke activates e's action.
func (h *Host) Invoke(e Element) error {
	id, err := h.resolve(e)
	if err != nil {
		return err
	}
	return h.tree.Activate(id)
}

// SetFocus focuses e. Focusing the root clears focus.
func (h *Host) SetFocus(e Element) error {
	id, err := h.resolve(e)
	if err != nil {
		return err
	}
	return h.tree.SetFocus(id)
}

// Focus returns the focused element, or the root when nothing is focused.
func (h *Host) Focus() Element { return ElementOf(h.tree.Focused()) }

// HitTest returns the deepest element under a screen point.
func (h *Host) HitTest(screen uitree.Point) Element {
	return ElementOf(h.tree.HitTest(screen, h.viewport.Viewport()))
}
