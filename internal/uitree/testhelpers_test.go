package uitree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type scenario struct {
	tree                 *Tree
	pane, doc            ID
	p1, p2, p3           ID
	minimize, close      ID
	minimized, closeHits int
}

var paragraphs = []string{
	"This is the first paragraph.",
	"Hello, Dreamer of dreams.",
	"Yet another paragraph",
}

func buildScenario(t *testing.T, opts ...Option) *scenario {
	t.Helper()
	sc := &scenario{tree: New(opts...)}
	err := sc.tree.Describe(func(b *Builder) {
		sc.pane = b.Pane("Main", func() {
			sc.doc = b.Document("Main", func() {
				sc.p1 = b.Text(paragraphs[0])
				sc.p2 = b.Text(paragraphs[1])
				sc.p3 = b.Text(paragraphs[2])
			})
			sc.minimize = b.Button("Minimize Application", func() { sc.minimized++ })
			sc.close = b.Button("Close Application", func() { sc.closeHits++ })
		})
	})
	require.NoError(t, err)
	return sc
}

type recordingNotifier struct {
	listening bool
	events    []Event
}

func (n *recordingNotifier) ClientsAreListening() bool { return n.listening }
func (n *recordingNotifier) Raise(ev Event)            { n.events = append(n.events, ev) }
