package model

import "github.com/mj1618/a11ytree/internal/uitree"

// Element is a serializable view of one tree node.
type Element struct {
	ID       string    `yaml:"i"             json:"i"`             // Hex node id
	Role     string    `yaml:"r"             json:"r"`             // Abbreviated role code
	Title    string    `yaml:"t,omitempty"   json:"t,omitempty"`   // Node name
	Bounds   [4]int    `yaml:"b,flow"        json:"b"`             // [x, y, width, height] in screen space
	Focused  bool      `yaml:"f,omitempty"   json:"f,omitempty"`   // Has keyboard focus
	TextLen  int       `yaml:"n,omitempty"   json:"n,omitempty"`   // Characters in the subtree
	Actions  []string  `yaml:"a,omitempty"   json:"a,omitempty"`   // Available actions
	Ref      string    `yaml:"ref,omitempty" json:"ref,omitempty"` // Path-based ref
	Children []Element `yaml:"c,omitempty"   json:"c,omitempty"`   // Child elements
}

// FromSnapshot converts the nodes of snap into an element forest. Bounds are
// translated into screen space by vp.
func FromSnapshot(snap *uitree.Snapshot, focused uitree.ID, vp uitree.Viewport) []Element {
	return fromChildren(snap, uitree.RootID, focused, vp)
}

// Subtree converts the subtree rooted at id. It is FromSnapshot for RootID.
func Subtree(snap *uitree.Snapshot, id, focused uitree.ID, vp uitree.Viewport) []Element {
	if id == uitree.RootID {
		return FromSnapshot(snap, focused, vp)
	}
	return []Element{fromNode(snap, id, focused, vp)}
}

func fromChildren(snap *uitree.Snapshot, parent, focused uitree.ID, vp uitree.Viewport) []Element {
	var out []Element
	for _, c := range snap.Children(parent) {
		out = append(out, fromNode(snap, c, focused, vp))
	}
	return out
}

func fromNode(snap *uitree.Snapshot, id, focused uitree.ID, vp uitree.Viewport) Element {
	n := snap.Node(id)
	el := Element{
		ID:       id.String(),
		Role:     RoleFor(n.Type),
		Title:    n.Name,
		Bounds:   vp.ToScreen(n.Rect).XYWH(),
		Focused:  id == focused,
		TextLen:  n.TextLen,
		Children: fromChildren(snap, id, focused, vp),
	}
	if snap.HasAction(id) {
		el.Actions = []string{"invoke"}
	}
	return el
}
