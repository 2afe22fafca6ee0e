package uitree

// Locate returns the deepest node whose rectangle contains p, given in
// client coordinates. Ties at equal depth go to the later node. It returns
// RootID when no rectangle contains p.
func (s *Snapshot) Locate(p Point) ID {
	best, bestDepth := RootID, 0
	for i, r := range s.rects {
		if s.depths[i] >= bestDepth && r.Contains(p) {
			best, bestDepth = s.ids[i], s.depths[i]
		}
	}
	return best
}

// HitTest locates the element under a screen point.
func (t *Tree) HitTest(screen Point, vp Viewport) ID {
	return t.snap.Locate(vp.ToClient(screen))
}
