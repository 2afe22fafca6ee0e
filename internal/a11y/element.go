// Package a11y exposes a uitree.Tree to assistive-technology clients: element
// handles, navigation, properties, control patterns and text ranges.
package a11y

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// Kind tags an element handle.
type Kind int

const (
	KindRoot Kind = iota
	KindElement
)

func (k Kind) String() string {
	if k == KindRoot {
		return "root"
	}
	return "element"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Element is a client-held handle. It carries its kind and id so no type
// recovery is needed when a client hands it back.
type Element struct {
	Kind Kind      `yaml:"kind" json:"kind"`
	ID   uitree.ID `yaml:"id"   json:"id"`
}

// Root is the handle of the synthetic root.
func Root() Element { return Element{Kind: KindRoot, ID: uitree.RootID} }

// ElementOf wraps id, mapping RootID to the root handle.
func ElementOf(id uitree.ID) Element {
	if id == uitree.RootID {
		return Root()
	}
	return Element{Kind: KindElement, ID: id}
}

func (e Element) IsRoot() bool { return e.Kind == KindRoot }

func (e Element) String() string {
	if e.IsRoot() {
		return "root"
	}
	return e.ID.String()
}

// ParseElement accepts "root" or a hex id.
func ParseElement(s string) (Element, error) {
	id, err := uitree.ParseID(s)
	if err != nil {
		return Element{}, err
	}
	if id == uitree.InvalidID {
		return Element{}, fmt.Errorf("%w: element %q", uitree.ErrInvalidArgument, s)
	}
	return ElementOf(id), nil
}

// Direction is a structural navigation step.
type Direction int

const (
	Parent Direction = iota
	NextSibling
	PrevSibling
	FirstChild
	LastChild
)

var directionNames = map[string]Direction{
	"parent":       Parent,
	"next":         NextSibling,
	"next-sibling": NextSibling,
	"prev":         PrevSibling,
	"prev-sibling": PrevSibling,
	"first":        FirstChild,
	"first-child":  FirstChild,
	"last":         LastChild,
	"last-child":   LastChild,
}

func ParseDirection(s string) (Direction, error) {
	if d, ok := directionNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q (use parent, next, prev, first, last)", uitree.ErrInvalidArgument, s)
}
