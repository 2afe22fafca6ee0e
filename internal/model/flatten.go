package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID      string   `yaml:"i"             json:"i"`
	Role    string   `yaml:"r"             json:"r"`
	Title   string   `yaml:"t,omitempty"   json:"t,omitempty"`
	Bounds  [4]int   `yaml:"b,flow"        json:"b"`
	Focused bool     `yaml:"f,omitempty"   json:"f,omitempty"`
	TextLen int      `yaml:"n,omitempty"   json:"n,omitempty"`
	Actions []string `yaml:"a,omitempty"   json:"a,omitempty"`
	Ref     string   `yaml:"ref,omitempty" json:"ref,omitempty"`
	Path    string   `yaml:"p,omitempty"   json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list in build
// order. Each element gets a path of role codes joined with " > ".
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := el.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Role
	}

	*result = append(*result, FlatElement{
		ID:      el.ID,
		Role:    el.Role,
		Title:   el.Title,
		Bounds:  el.Bounds,
		Focused: el.Focused,
		TextLen: el.TextLen,
		Actions: el.Actions,
		Ref:     el.Ref,
		Path:    currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
