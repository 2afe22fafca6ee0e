package uitree

import "unicode/utf8"

// Layout controls automatic stacked rectangles. When enabled every node gets
// a line of LineHeight indented by Indent per depth level, and containers
// grow to cover their descendants when their scope closes.
type Layout struct {
	Enabled    bool
	Width      int
	LineHeight int
	Indent     int
}

// DefaultLayout matches a 1200px wide window with 20px lines.
func DefaultLayout() Layout {
	return Layout{Enabled: true, Width: 1200, LineHeight: 20, Indent: 10}
}

// Builder records one describe pass. Nodes must be added in pre-order;
// every Begin must be matched by an End for the same id.
type Builder struct {
	snap   *Snapshot
	gen    IDGenerator
	layout Layout
	depth  int
	y      int

	focus    ID
	hasFocus bool
}

func newBuilder(generation uint64, gen IDGenerator, layout Layout) *Builder {
	return &Builder{snap: newSnapshot(generation), gen: gen, layout: layout}
}

// Depth is the depth the next node will be added at.
func (b *Builder) Depth() int { return b.depth }

// Begin adds a container node and opens its scope.
func (b *Builder) Begin(name string, t Type) ID {
	id := b.add(name, t)
	b.depth++
	return id
}

// End closes the innermost scope, which must belong to id.
func (b *Builder) End(id ID) {
	if b.depth == 0 {
		violate("end", id, "no open scope")
	}
	b.depth--
	i := len(b.snap.ids) - 1
	for i >= 0 && b.snap.depths[i] != b.depth {
		i--
	}
	if i < 0 || b.snap.ids[i] != id {
		violate("end", id, "scope at depth %d is not the innermost open one", b.depth)
	}
	if b.layout.Enabled {
		r := b.snap.rects[i]
		for j := i + 1; j < len(b.snap.ids); j++ {
			r = r.Union(b.snap.rects[j])
		}
		b.snap.rects[i] = r
	}
}

// Leaf adds a node at the current depth without opening a scope.
func (b *Builder) Leaf(name string, t Type) ID {
	return b.add(name, t)
}

// Pane adds a Pane and describes its children with fn.
func (b *Builder) Pane(name string, fn func()) ID {
	return b.scope(name, TypePane, fn)
}

// Document adds a Document and describes its children with fn.
func (b *Builder) Document(name string, fn func()) ID {
	return b.scope(name, TypeDocument, fn)
}

func (b *Builder) Text(name string) ID { return b.Leaf(name, TypeText) }

// Button adds a Button and registers action for it. A nil action leaves the
// button without an entry, so activating it fails.
func (b *Builder) Button(name string, action Action) ID {
	id := b.Leaf(name, TypeButton)
	if action != nil {
		b.snap.actions[id] = action
	}
	return id
}

// SetRect overrides the rectangle of an already added node.
func (b *Builder) SetRect(id ID, r Rect) {
	b.snap.rects[b.snap.IndexOf(id)] = r
}

// RequestFocus asks for id to be focused once the pass is published.
func (b *Builder) RequestFocus(id ID) {
	b.focus = id
	b.hasFocus = true
}

func (b *Builder) scope(name string, t Type, fn func()) ID {
	id := b.Begin(name, t)
	if fn != nil {
		fn()
	}
	b.End(id)
	return id
}

func (b *Builder) add(name string, t Type) ID {
	if t == TypeNone {
		violate("add", InvalidID, "node %q has type none", name)
	}
	s := b.snap
	parent := RootID
	if b.depth > 0 {
		i := len(s.ids) - 1
		for i >= 0 && s.depths[i] != b.depth-1 {
			i--
		}
		if i < 0 {
			violate("add", InvalidID, "no parent at depth %d for %q", b.depth-1, name)
		}
		parent = s.ids[i]
	}

	id := b.gen.Make(name, parent)
	if b.gen.Reserved(id) {
		violate("add", id, "generated reserved id for %q", name)
	}
	if prev, dup := s.index[id]; dup {
		violate("add", id, "id of %q collides with %q", name, s.names[prev])
	}

	n := utf8.RuneCountInString(name)
	var r Rect
	if b.layout.Enabled {
		r = Rect{
			Left:   b.layout.Indent * b.depth,
			Top:    b.y,
			Right:  b.layout.Width,
			Bottom: b.y + b.layout.LineHeight,
		}
		b.y += b.layout.LineHeight
	}
	s.append(Node{ID: id, Name: name, Type: t, Parent: parent, Depth: b.depth, Rect: r, TextLen: n})

	for p := parent; p != RootID; {
		pi := s.IndexOf(p)
		s.textLens[pi] += n
		p = s.parents[pi]
	}
	return id
}

func (b *Builder) finish() *Snapshot {
	if b.depth != 0 {
		violate("finish", InvalidID, "%d scope(s) left open", b.depth)
	}
	return b.snap
}
