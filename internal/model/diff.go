package model

import (
	"fmt"
	"strconv"
)

// ChangeType is the kind of change between two trees.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// UIChange is a single difference between two flattened trees.
type UIChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Element *FlatElement         `yaml:"el,omitempty"      json:"el,omitempty"`      // added
	Path    string               `yaml:"p,omitempty"       json:"p,omitempty"`       // added
	ID      string               `yaml:"id,omitempty"      json:"id,omitempty"`      // removed, changed
	Role    string               `yaml:"r,omitempty"       json:"r,omitempty"`       // removed
	Title   string               `yaml:"t,omitempty"       json:"t,omitempty"`       // removed
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // changed
}

// DiffElements compares two flat element lists matched by id. Node ids are
// derived from names and ancestry, so a renamed node shows up as removed
// plus added.
func DiffElements(prev, curr []FlatElement) []UIChange {
	prevMap := make(map[string]FlatElement, len(prev))
	for _, el := range prev {
		prevMap[el.ID] = el
	}
	currMap := make(map[string]FlatElement, len(curr))
	for _, el := range curr {
		currMap[el.ID] = el
	}

	var changes []UIChange
	for _, el := range curr {
		prevEl, existed := prevMap[el.ID]
		if !existed {
			elCopy := el
			changes = append(changes, UIChange{
				Type:    ChangeAdded,
				Element: &elCopy,
				Path:    el.Path,
			})
			continue
		}
		if diffs := diffProperties(prevEl, el); len(diffs) > 0 {
			changes = append(changes, UIChange{
				Type:    ChangeChanged,
				ID:      el.ID,
				Changes: diffs,
			})
		}
	}

	for _, el := range prev {
		if _, exists := currMap[el.ID]; !exists {
			changes = append(changes, UIChange{
				Type:  ChangeRemoved,
				ID:    el.ID,
				Role:  el.Role,
				Title: el.Title,
			})
		}
	}

	return changes
}

func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Title != curr.Title {
		diffs["t"] = [2]string{prev.Title, curr.Title}
	}
	if prev.Role != curr.Role {
		diffs["r"] = [2]string{prev.Role, curr.Role}
	}
	if prev.Bounds != curr.Bounds {
		diffs["b"] = [2]string{
			fmt.Sprintf("%v", prev.Bounds),
			fmt.Sprintf("%v", curr.Bounds),
		}
	}
	if prev.Focused != curr.Focused {
		diffs["f"] = [2]string{strconv.FormatBool(prev.Focused), strconv.FormatBool(curr.Focused)}
	}
	if prev.TextLen != curr.TextLen {
		diffs["n"] = [2]string{strconv.Itoa(prev.TextLen), strconv.Itoa(curr.TextLen)}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
