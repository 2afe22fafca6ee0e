package uitree

import (
	"fmt"
	"io"
	"log/slog"
)

// Tree owns the current snapshot, focus state and the notifier. All methods
// must be called from one goroutine; queries made while Describe runs see the
// previous snapshot.
type Tree struct {
	snap         *Snapshot
	focused      ID
	focusChanged bool
	building     bool

	gen      IDGenerator
	layout   Layout
	notifier Notifier
	log      *slog.Logger
}

// Option configures a Tree.
type Option func(*Tree)

func WithLogger(l *slog.Logger) Option { return func(t *Tree) { t.log = l } }

func WithNotifier(n Notifier) Option { return func(t *Tree) { t.notifier = n } }

// WithIDBits selects 64 or 32 bit element ids.
func WithIDBits(bits int) Option { return func(t *Tree) { t.gen.Bits = bits } }

func WithLayout(l Layout) Option { return func(t *Tree) { t.layout = l } }

// New returns a Tree with an empty snapshot.
func New(opts ...Option) *Tree {
	t := &Tree{
		snap:   newSnapshot(0),
		gen:    IDGenerator{Bits: 64},
		layout: DefaultLayout(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Snapshot returns the published snapshot.
func (t *Tree) Snapshot() *Snapshot { return t.snap }

// Describe runs one describe pass and publishes the result. A contract
// violation inside fn aborts the pass: the previous snapshot stays current
// and the violation is returned as a *ContractError.
func (t *Tree) Describe(fn func(b *Builder)) (err error) {
	if t.building {
		return ErrRebuildInProgress
	}
	t.building = true
	defer func() { t.building = false }()

	b := newBuilder(t.snap.generation+1, t.gen, t.layout)
	snap, err := t.build(b, fn)
	if err != nil {
		t.log.Error("describe aborted", "err", err)
		return err
	}

	t.snap = snap
	if t.focused != RootID && !snap.Has(t.focused) {
		t.log.Debug("focused element removed", "id", t.focused)
		t.setFocus(RootID)
	}
	t.log.Debug("tree rebuilt", "generation", snap.generation, "nodes", snap.Len())
	t.raise(Event{Kind: EventStructureChanged, ID: RootID})

	if b.hasFocus && b.focus != t.focused && (b.focus == RootID || snap.Has(b.focus)) {
		t.setFocus(b.focus)
	}
	return nil
}

func (t *Tree) build(b *Builder, fn func(b *Builder)) (snap *Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("describe: %w", ce)
		}
	}()
	fn(b)
	return b.finish(), nil
}

func (t *Tree) raise(ev Event) {
	if t.notifier == nil || !t.notifier.ClientsAreListening() {
		return
	}
	ev.Generation = t.snap.generation
	t.notifier.Raise(ev)
}
