package uitree

import "fmt"

// Focused returns the focused id, or RootID when nothing is focused.
func (t *Tree) Focused() ID { return t.focused }

// SetFocus focuses id. RootID clears focus. Setting the current focus again
// is a no-op.
func (t *Tree) SetFocus(id ID) error {
	if id != RootID && !t.snap.Has(id) {
		return fmt.Errorf("set focus %s: %w", id, ErrStaleElement)
	}
	t.setFocus(id)
	return nil
}

// FocusNext moves focus to the next node in build order. It stops at the
// last node. With nothing focused the first node gets focus.
func (t *Tree) FocusNext() { t.moveFocus(1) }

// FocusPrev moves focus to the previous node in build order. It stops at the
// first node. With nothing focused the first node gets focus.
func (t *Tree) FocusPrev() { t.moveFocus(-1) }

// TakeFocusChanged reports whether focus changed since the last call and
// clears the flag.
func (t *Tree) TakeFocusChanged() bool {
	changed := t.focusChanged
	t.focusChanged = false
	return changed
}

func (t *Tree) moveFocus(step int) {
	n := t.snap.Len()
	if n == 0 {
		return
	}
	if t.focused == RootID {
		t.setFocus(t.snap.ids[0])
		return
	}
	i := t.snap.IndexOf(t.focused) + step
	if i < 0 || i >= n {
		return
	}
	t.setFocus(t.snap.ids[i])
}

func (t *Tree) setFocus(id ID) {
	if id == t.focused {
		return
	}
	t.log.Debug("focus changed", "from", t.focused, "to", id)
	t.focused = id
	t.focusChanged = true
	t.raise(Event{Kind: EventFocusChanged, ID: id})
}
