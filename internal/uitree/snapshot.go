package uitree

import "unicode/utf8"

// Action is the activation callback of a Button.
type Action func()

// Snapshot is one complete build of the tree. Columns are parallel slices
// indexed by build order, which is depth-first pre-order. A Snapshot is never
// modified after Tree.Describe publishes it.
type Snapshot struct {
	ids      []ID
	names    []string
	types    []Type
	parents  []ID
	depths   []int
	rects    []Rect
	textLens []int

	index   map[ID]int
	actions map[ID]Action

	generation uint64
}

// Node is a copy of one row of a Snapshot.
type Node struct {
	Index   int
	ID      ID
	Name    string
	Type    Type
	Parent  ID
	Depth   int
	Rect    Rect
	TextLen int
}

func newSnapshot(generation uint64) *Snapshot {
	return &Snapshot{
		index:      make(map[ID]int),
		actions:    make(map[ID]Action),
		generation: generation,
	}
}

// Len returns the number of stored nodes.
func (s *Snapshot) Len() int { return len(s.ids) }

// Generation counts successful rebuilds; the first published snapshot is 1.
func (s *Snapshot) Generation() uint64 { return s.generation }

// Has reports whether id is a stored node.
func (s *Snapshot) Has(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// IndexOf returns the build-order position of id. Looking up an id that is
// not stored is a contract violation.
func (s *Snapshot) IndexOf(id ID) int {
	i, ok := s.index[id]
	if !ok {
		violate("lookup", id, "id not in snapshot")
	}
	return i
}

// At returns the node at build-order position i.
func (s *Snapshot) At(i int) Node {
	if i < 0 || i >= len(s.ids) {
		violate("at", InvalidID, "index %d out of range [0,%d)", i, len(s.ids))
	}
	return Node{
		Index:   i,
		ID:      s.ids[i],
		Name:    s.names[i],
		Type:    s.types[i],
		Parent:  s.parents[i],
		Depth:   s.depths[i],
		Rect:    s.rects[i],
		TextLen: s.textLens[i],
	}
}

// Node returns the row for id.
func (s *Snapshot) Node(id ID) Node { return s.At(s.IndexOf(id)) }

// Depth returns the nesting level of id; the root is -1.
func (s *Snapshot) Depth(id ID) int {
	if id == RootID {
		return -1
	}
	return s.depths[s.IndexOf(id)]
}

// HasAction reports whether id has an activation entry.
func (s *Snapshot) HasAction(id ID) bool {
	_, ok := s.actions[id]
	return ok
}

// subtreeEnd returns the index one past the last descendant of node i.
func (s *Snapshot) subtreeEnd(i int) int {
	d := s.depths[i]
	j := i + 1
	for j < len(s.ids) && s.depths[j] > d {
		j++
	}
	return j
}

// nameLen is the length of the name at i in runes.
func (s *Snapshot) nameLen(i int) int { return utf8.RuneCountInString(s.names[i]) }

func (s *Snapshot) append(n Node) int {
	i := len(s.ids)
	s.ids = append(s.ids, n.ID)
	s.names = append(s.names, n.Name)
	s.types = append(s.types, n.Type)
	s.parents = append(s.parents, n.Parent)
	s.depths = append(s.depths, n.Depth)
	s.rects = append(s.rects, n.Rect)
	s.textLens = append(s.textLens, n.TextLen)
	s.index[n.ID] = i
	return i
}
