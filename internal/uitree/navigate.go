package uitree

// Navigation functions take ids that exist in the snapshot (or RootID) and
// return InvalidID when the requested relative does not exist.

// Parent returns the parent of id. Top-level nodes return RootID and the
// root itself has no parent.
func (s *Snapshot) Parent(id ID) ID {
	if id == RootID {
		return InvalidID
	}
	return s.parents[s.IndexOf(id)]
}

func (s *Snapshot) NextSibling(id ID) ID {
	if id == RootID {
		return InvalidID
	}
	i := s.IndexOf(id)
	d := s.depths[i]
	for j := i + 1; j < len(s.ids); j++ {
		switch {
		case s.depths[j] < d:
			return InvalidID
		case s.depths[j] == d:
			return s.ids[j]
		}
	}
	return InvalidID
}

func (s *Snapshot) PrevSibling(id ID) ID {
	if id == RootID {
		return InvalidID
	}
	i := s.IndexOf(id)
	d := s.depths[i]
	for j := i - 1; j >= 0; j-- {
		switch {
		case s.depths[j] < d:
			return InvalidID
		case s.depths[j] == d:
			return s.ids[j]
		}
	}
	return InvalidID
}

func (s *Snapshot) FirstChild(id ID) ID {
	start, d := s.childScan(id)
	if start < len(s.ids) && s.depths[start] == d+1 {
		return s.ids[start]
	}
	return InvalidID
}

func (s *Snapshot) LastChild(id ID) ID {
	start, d := s.childScan(id)
	last := InvalidID
	for j := start; j < len(s.ids) && s.depths[j] > d; j++ {
		if s.depths[j] == d+1 {
			last = s.ids[j]
		}
	}
	return last
}

// Children returns the direct children of id in build order.
func (s *Snapshot) Children(id ID) []ID {
	start, d := s.childScan(id)
	var out []ID
	for j := start; j < len(s.ids) && s.depths[j] > d; j++ {
		if s.depths[j] == d+1 {
			out = append(out, s.ids[j])
		}
	}
	return out
}

// childScan returns the index where id's children start and id's depth.
func (s *Snapshot) childScan(id ID) (int, int) {
	if id == RootID {
		return 0, -1
	}
	i := s.IndexOf(id)
	return i + 1, s.depths[i]
}

// LeastCommonAncestor returns the deepest node that is an ancestor-or-self
// of both a and b. It is RootID when they share no stored ancestor.
func (s *Snapshot) LeastCommonAncestor(a, b ID) ID {
	da, db := s.Depth(a), s.Depth(b)
	for da > db {
		a = s.Parent(a)
		da--
	}
	for db > da {
		b = s.Parent(b)
		db--
	}
	for a != b {
		a = s.Parent(a)
		b = s.Parent(b)
	}
	return a
}

// IsAncestor reports whether anc is a strict ancestor of id.
func (s *Snapshot) IsAncestor(anc, id ID) bool {
	if id == RootID {
		return false
	}
	if anc == RootID {
		return true
	}
	ai := s.IndexOf(anc)
	i := s.IndexOf(id)
	return i > ai && i < s.subtreeEnd(ai)
}
