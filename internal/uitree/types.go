package uitree

import (
	"fmt"
	"strings"
)

// Type is the control type of a node.
type Type uint8

const (
	TypeNone Type = iota
	TypeText
	TypeDocument
	TypeButton
	TypePane
)

var typeNames = map[Type]string{
	TypeNone:     "none",
	TypeText:     "text",
	TypeDocument: "document",
	TypeButton:   "button",
	TypePane:     "pane",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// ParseType converts a type name to a Type. "none" is rejected.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if t != TypeNone && name == strings.ToLower(s) {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("%w: unknown element type %q", ErrInvalidArgument, s)
}

// Container reports whether nodes of this type are opened as scopes.
func (t Type) Container() bool { return t == TypeDocument || t == TypePane }
