package uitree

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextPoint addresses a position inside the name of one element. Offset is
// counted in runes.
type TextPoint struct {
	ID     ID  `yaml:"id"     json:"id"`
	Offset int `yaml:"offset" json:"offset"`
}

// TextRange is a span between two points with Start <= End. It may cross
// element boundaries.
type TextRange struct {
	Start TextPoint `yaml:"start" json:"start"`
	End   TextPoint `yaml:"end"   json:"end"`
}

// Degenerate reports an empty range.
func (r TextRange) Degenerate() bool { return r.Start == r.End }

// Clone returns an independent copy.
func (r TextRange) Clone() TextRange { return r }

// Endpoint selects the start or end of a range.
type Endpoint int

const (
	EndpointStart Endpoint = iota
	EndpointEnd
)

func (e Endpoint) String() string {
	if e == EndpointEnd {
		return "end"
	}
	return "start"
}

// ParseEndpoint accepts "start" or "end".
func ParseEndpoint(s string) (Endpoint, error) {
	switch strings.ToLower(s) {
	case "start":
		return EndpointStart, nil
	case "end":
		return EndpointEnd, nil
	}
	return 0, fmt.Errorf("%w: unknown endpoint %q (use start or end)", ErrInvalidArgument, s)
}

// Point returns the selected endpoint of r.
func (r TextRange) Point(ep Endpoint) TextPoint {
	if ep == EndpointEnd {
		return r.End
	}
	return r.Start
}

// TextUnit is the granularity for expansion and movement.
type TextUnit int

const (
	UnitCharacter TextUnit = iota
	UnitFormat
	UnitWord
	UnitLine
	UnitParagraph
	UnitPage
	UnitDocument
)

var unitNames = []string{"character", "format", "word", "line", "paragraph", "page", "document"}

func (u TextUnit) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

func ParseTextUnit(s string) (TextUnit, error) {
	for i, name := range unitNames {
		if strings.EqualFold(s, name) {
			return TextUnit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown text unit %q", ErrInvalidArgument, s)
}

// CheckRange validates r against the snapshot. Missing ids are stale;
// bad offsets or inverted endpoints are invalid arguments.
func (s *Snapshot) CheckRange(r TextRange) error {
	for _, p := range []TextPoint{r.Start, r.End} {
		i, ok := s.index[p.ID]
		if !ok {
			return fmt.Errorf("text point %s: %w", p.ID, ErrStaleElement)
		}
		if p.Offset < 0 || p.Offset > s.nameLen(i) {
			return fmt.Errorf("%w: offset %d outside %s", ErrInvalidArgument, p.Offset, p.ID)
		}
	}
	if s.ComparePoints(r.Start, r.End) > 0 {
		return fmt.Errorf("%w: range start after end", ErrInvalidArgument)
	}
	return nil
}

// ComparePoints orders two points. Points on different elements compare by
// build order only, so a container's point sorts before every point of its
// children regardless of offset.
func (s *Snapshot) ComparePoints(a, b TextPoint) int {
	if a.ID == b.ID {
		return cmpInt(a.Offset, b.Offset)
	}
	return cmpInt(s.IndexOf(a.ID), s.IndexOf(b.ID))
}

// CompareEndpoints orders an endpoint of r against an endpoint of o.
func (s *Snapshot) CompareEndpoints(r TextRange, ep Endpoint, o TextRange, oep Endpoint) int {
	return s.ComparePoints(r.Point(ep), o.Point(oep))
}

// SpanRange covers id's name and every descendant: from the start of id to
// the end of the last node in its subtree.
func (s *Snapshot) SpanRange(id ID) TextRange {
	i := s.IndexOf(id)
	last := s.subtreeEnd(i) - 1
	return TextRange{
		Start: TextPoint{ID: id},
		End:   TextPoint{ID: s.ids[last], Offset: s.nameLen(last)},
	}
}

// Text concatenates the names covered by r. A negative maxLen means no limit.
func (s *Snapshot) Text(r TextRange, maxLen int) string {
	var sb strings.Builder
	n := 0
	s.walk(r, func(i, from, to int) bool {
		runes := []rune(s.names[i])[from:to]
		if maxLen >= 0 && n+len(runes) > maxLen {
			runes = runes[:maxLen-n]
		}
		sb.WriteString(string(runes))
		n += len(runes)
		return maxLen < 0 || n < maxLen
	})
	return sb.String()
}

// FindText searches forward from r.Start for needle. A match must lie in a
// single element and end at or before r.End. Backward and case-insensitive
// searches are not implemented.
func (s *Snapshot) FindText(r TextRange, needle string, backward, ignoreCase bool) (TextRange, bool, error) {
	if backward || ignoreCase {
		return TextRange{}, false, ErrNotImplemented
	}
	if needle == "" {
		return TextRange{}, false, fmt.Errorf("%w: empty search text", ErrInvalidArgument)
	}
	want := utf8.RuneCountInString(needle)
	var found TextRange
	ok := false
	s.walk(r, func(i, from, to int) bool {
		hay := string([]rune(s.names[i])[from:])
		at := strings.Index(hay, needle)
		if at < 0 {
			return true
		}
		start := from + utf8.RuneCountInString(hay[:at])
		if start+want > to {
			return false
		}
		found = TextRange{
			Start: TextPoint{ID: s.ids[i], Offset: start},
			End:   TextPoint{ID: s.ids[i], Offset: start + want},
		}
		ok = true
		return false
	})
	return found, ok, nil
}

// ExpandToEnclosingUnit widens r to the whole names of its start and end
// elements. Units are not distinguished.
func (s *Snapshot) ExpandToEnclosingUnit(r TextRange, unit TextUnit) (TextRange, error) {
	if unit < UnitCharacter || unit > UnitDocument {
		return r, fmt.Errorf("%w: unit %d", ErrInvalidArgument, int(unit))
	}
	r.Start.Offset = 0
	r.End.Offset = s.nameLen(s.IndexOf(r.End.ID))
	return r, nil
}

// Move collapses r to its start, normalises to the enclosing node of the
// unit's type, then steps count nodes of that type forward or backward. The
// result spans the node landed on. moved is the number of steps taken, with
// the sign of count.
func (s *Snapshot) Move(r TextRange, unit TextUnit, count int) (TextRange, int, error) {
	var want Type
	switch unit {
	case UnitParagraph:
		want = TypeText
	case UnitPage, UnitDocument:
		want = TypeDocument
	case UnitCharacter, UnitFormat, UnitWord, UnitLine:
		return r, 0, ErrNotImplemented
	default:
		return r, 0, fmt.Errorf("%w: unit %d", ErrInvalidArgument, int(unit))
	}

	i, ok := s.normalize(r.Start.ID, want)
	if !ok {
		return r, 0, nil
	}

	step := 1
	if count < 0 {
		step = -1
	}
	moved := 0
	for moved != count {
		j := i + step
		for j >= 0 && j < len(s.ids) && s.types[j] != want {
			j += step
		}
		if j < 0 || j >= len(s.ids) {
			break
		}
		i = j
		moved += step
	}
	return s.SpanRange(s.ids[i]), moved, nil
}

// normalize finds the ancestor-or-self of id with type want, falling back to
// the nearest node of that type after id, then before it.
func (s *Snapshot) normalize(id ID, want Type) (int, bool) {
	for p := id; p != RootID; p = s.parents[s.IndexOf(p)] {
		if i := s.IndexOf(p); s.types[i] == want {
			return i, true
		}
	}
	start := s.IndexOf(id)
	for j := start; j < len(s.ids); j++ {
		if s.types[j] == want {
			return j, true
		}
	}
	for j := start - 1; j >= 0; j-- {
		if s.types[j] == want {
			return j, true
		}
	}
	return 0, false
}

// MoveEndpointByRange moves one endpoint of r onto an endpoint of target.
// If that would invert the range the other endpoint follows.
func (s *Snapshot) MoveEndpointByRange(r TextRange, ep Endpoint, target TextRange, tep Endpoint) TextRange {
	p := target.Point(tep)
	if ep == EndpointStart {
		r.Start = p
		if s.ComparePoints(r.Start, r.End) > 0 {
			r.End = p
		}
		return r
	}
	r.End = p
	if s.ComparePoints(r.End, r.Start) < 0 {
		r.Start = p
	}
	return r
}

// EnclosingElement returns the deepest element containing both endpoints.
func (s *Snapshot) EnclosingElement(r TextRange) ID {
	if r.Start.ID == r.End.ID {
		return r.Start.ID
	}
	lca := s.LeastCommonAncestor(r.Start.ID, r.End.ID)
	for _, id := range []ID{r.Start.ID, r.End.ID} {
		if lca != id && !s.IsAncestor(lca, id) {
			violate("enclosing", lca, "does not enclose %s", id)
		}
	}
	return lca
}

// BoundingRectangles clips the rectangle of every element in r to the
// viewport and returns the visible parts in screen coordinates.
func (s *Snapshot) BoundingRectangles(r TextRange, vp Viewport) []Rect {
	var out []Rect
	for i := s.IndexOf(r.Start.ID); i <= s.IndexOf(r.End.ID); i++ {
		clip := s.rects[i].Intersect(vp.Client)
		if clip.Empty() {
			continue
		}
		out = append(out, vp.ToScreen(clip))
	}
	return out
}

// ElementsIn returns the elements that lie wholly inside r from their first
// character: the start element only when r begins at its offset 0, and every
// later element up to and including the end element.
func (s *Snapshot) ElementsIn(r TextRange) []ID {
	var out []ID
	first := s.IndexOf(r.Start.ID)
	for i := first; i <= s.IndexOf(r.End.ID); i++ {
		if i == first && r.Start.Offset != 0 {
			continue
		}
		out = append(out, s.ids[i])
	}
	return out
}

// walk visits each element covered by r with the rune span [from, to) of its
// name. It stops when fn returns false.
func (s *Snapshot) walk(r TextRange, fn func(i, from, to int) bool) {
	first, last := s.IndexOf(r.Start.ID), s.IndexOf(r.End.ID)
	for i := first; i <= last; i++ {
		from, to := 0, s.nameLen(i)
		if i == first {
			from = r.Start.Offset
		}
		if i == last {
			to = r.End.Offset
		}
		if from > to {
			from = to
		}
		if !fn(i, from, to) {
			return
		}
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
