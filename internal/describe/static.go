package describe

import (
	"fmt"

	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// Node is one element of a static scene.
type Node struct {
	Type     string `yaml:"type"`
	Name     string `yaml:"name"`
	Focus    bool   `yaml:"focus,omitempty"`
	Rect     []int  `yaml:"rect,omitempty,flow"` // x, y, width, height
	Children []Node `yaml:"children,omitempty"`
}

// Static is a scene that never changes. Buttons count their activations.
type Static struct {
	Title       string `yaml:"name"`
	Nodes       []Node `yaml:"nodes"`
	invocations map[string]int
}

func (s *Static) Name() string { return s.Title }

// Invocations returns how often the named button has been activated.
func (s *Static) Invocations(name string) int { return s.invocations[name] }

func (s *Static) Describe(b *uitree.Builder) {
	if s.invocations == nil {
		s.invocations = make(map[string]int)
	}
	for _, n := range s.Nodes {
		s.describeNode(b, n)
	}
}

func (s *Static) describeNode(b *uitree.Builder, n Node) {
	t, _ := uitree.ParseType(n.Type)
	var id uitree.ID
	switch {
	case t.Container():
		id = b.Begin(n.Name, t)
		for _, c := range n.Children {
			s.describeNode(b, c)
		}
		b.End(id)
	case t == uitree.TypeButton:
		name := n.Name
		id = b.Button(name, func() {
			s.invocations[name]++
			logger.Info("button invoked", "scene", s.Title, "name", name)
		})
	default:
		id = b.Leaf(n.Name, t)
	}
	if len(n.Rect) == 4 {
		b.SetRect(id, uitree.XYWH(n.Rect[0], n.Rect[1], n.Rect[2], n.Rect[3]))
	}
	if n.Focus {
		b.RequestFocus(id)
	}
}

// Validate checks types, nesting and rectangles before any describe pass.
func (s *Static) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("scene has no name")
	}
	return validateNodes(s.Nodes, "")
}

func validateNodes(nodes []Node, path string) error {
	for i, n := range nodes {
		where := fmt.Sprintf("%s/%d", path, i)
		t, err := uitree.ParseType(n.Type)
		if err != nil {
			return fmt.Errorf("node %s: %w", where, err)
		}
		if !t.Container() && len(n.Children) > 0 {
			return fmt.Errorf("node %s: %s %q cannot have children", where, t, n.Name)
		}
		if len(n.Rect) != 0 && len(n.Rect) != 4 {
			return fmt.Errorf("node %s: rect needs 4 values, got %d", where, len(n.Rect))
		}
		if err := validateNodes(n.Children, where); err != nil {
			return err
		}
	}
	return nil
}

// uniqueNames suffixes repeated sibling names with " (2)", " (3)", so
// generated scenes do not produce colliding ids. A suffix never takes a name
// already used by another sibling.
func uniqueNames(nodes []Node) {
	taken := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		taken[n.Name] = true
	}
	used := make(map[string]bool, len(nodes))
	for i := range nodes {
		name := nodes[i].Name
		if used[name] {
			for k := 2; ; k++ {
				candidate := fmt.Sprintf("%s (%d)", name, k)
				if !used[candidate] && !taken[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		nodes[i].Name = name
		uniqueNames(nodes[i].Children)
	}
}
