package uitree

import "fmt"

// Activate runs the action registered for id in the current snapshot.
// Ids without an entry, including ids dropped by a rebuild, fail with
// ErrNoAction.
func (t *Tree) Activate(id ID) error {
	act, ok := t.snap.actions[id]
	if !ok {
		return fmt.Errorf("activate %s: %w", id, ErrNoAction)
	}
	t.log.Info("activate", "id", id, "name", t.snap.names[t.snap.IndexOf(id)])
	t.raise(Event{Kind: EventInvoked, ID: id})
	act()
	return nil
}

// ActivateFocused activates the focused element.
func (t *Tree) ActivateFocused() error {
	return t.Activate(t.focused)
}
