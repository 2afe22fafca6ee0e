package model

import "github.com/mj1618/a11ytree/internal/uitree"

// RoleMap maps node types to compact role codes.
var RoleMap = map[uitree.Type]string{
	uitree.TypeText:     "txt",
	uitree.TypeDocument: "doc",
	uitree.TypeButton:   "btn",
	uitree.TypePane:     "pane",
}

// MetaRoles maps meta-role names to the concrete roles they expand to.
var MetaRoles = map[string][]string{
	"interactive": {"btn"},
	"content":     {"txt", "doc"},
	"container":   {"pane", "doc"},
}

// ExpandRoles expands any meta-roles in the given list to their concrete roles.
// Non-meta roles are passed through unchanged. Duplicates are removed.
func ExpandRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	var expanded []string
	for _, r := range roles {
		if concrete, ok := MetaRoles[r]; ok {
			for _, c := range concrete {
				if !seen[c] {
					seen[c] = true
					expanded = append(expanded, c)
				}
			}
		} else if !seen[r] {
			seen[r] = true
			expanded = append(expanded, r)
		}
	}
	return expanded
}

// RoleFor returns the role code of a node type.
func RoleFor(t uitree.Type) string {
	if short, ok := RoleMap[t]; ok {
		return short
	}
	return "other"
}
