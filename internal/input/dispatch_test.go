package input

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mj1618/a11ytree/internal/uitree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) (*Driver, *uitree.Tree, []uitree.ID, *int) {
	t.Helper()
	tree := uitree.New()
	var ids []uitree.ID
	hits := 0
	require.NoError(t, tree.Describe(func(b *uitree.Builder) {
		b.Pane("Main", func() {
			ids = append(ids, b.Text("Intro"))
			ids = append(ids, b.Button("OK", func() { hits++ }))
		})
	}))
	d := NewDriver(tree, DefaultBindings(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return d, tree, ids, &hits
}

func TestDriverMovesFocus(t *testing.T) {
	d, tree, ids, _ := newTestDriver(t)

	cmd, err := d.Tap(Chord{Key: KeyDown})
	require.NoError(t, err)
	assert.Equal(t, CommandFocusNext, cmd)
	assert.NotEqual(t, uitree.RootID, tree.Focused(), "first move focuses the first node")

	_, err = d.Tap(Chord{Key: KeyTab})
	require.NoError(t, err)
	assert.Equal(t, ids[0], tree.Focused())

	cmd, err = d.Tap(Chord{Key: KeyTab, Shift: true})
	require.NoError(t, err)
	assert.Equal(t, CommandFocusPrev, cmd)
	assert.NotEqual(t, ids[0], tree.Focused())

	_, err = d.Tap(Chord{Key: KeyUp})
	require.NoError(t, err)
	_, err = d.Tap(Chord{Key: KeyUp})
	require.NoError(t, err)
	assert.Equal(t, tree.Snapshot().At(0).ID, tree.Focused(), "clamped at the first node")
}

func TestDriverHeldKeyDoesNotRepeat(t *testing.T) {
	d, tree, _, _ := newTestDriver(t)

	cmd, err := d.Key(KeyDown, true)
	require.NoError(t, err)
	assert.Equal(t, CommandFocusNext, cmd)
	first := tree.Focused()

	cmd, err = d.Key(KeyDown, true)
	require.NoError(t, err)
	assert.Equal(t, CommandNone, cmd)
	assert.Equal(t, first, tree.Focused())

	cmd, err = d.Key(KeyDown, false)
	require.NoError(t, err)
	assert.Equal(t, CommandNone, cmd)
}

func TestDriverActivate(t *testing.T) {
	d, tree, ids, hits := newTestDriver(t)

	_, err := d.Tap(Chord{Key: KeyReturn})
	assert.ErrorIs(t, err, uitree.ErrNoAction, "nothing focused")

	require.NoError(t, tree.SetFocus(ids[1]))
	cmd, err := d.Tap(Chord{Key: KeyReturn})
	require.NoError(t, err)
	assert.Equal(t, CommandActivate, cmd)
	assert.Equal(t, 1, *hits)
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings([]string{"space"}, nil, []string{"enter", "space"})
	require.NoError(t, err)
	assert.Equal(t, CommandFocusNext, b.Resolve(KeySpace, false), "next is checked first")
	assert.Equal(t, CommandFocusPrev, b.Resolve(KeyUp, false), "defaults kept")
	assert.Equal(t, CommandNone, b.Resolve(KeyDown, false))

	_, err = ParseBindings([]string{"ctrl+n"}, nil, nil)
	assert.Error(t, err)
}
