package a11y

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// PropertyID names a queryable element property.
type PropertyID int

const (
	PropName PropertyID = iota
	PropControlType
	PropIsControlElement
	PropIsContentElement
	PropIsEnabled
	PropIsKeyboardFocusable
	PropHasKeyboardFocus
	PropLabeledBy
	PropClassName
	PropProviderDescription
	PropAutomationID
	PropRuntimeID
	PropTextLength
)

var propertyNames = []string{
	"name", "control-type", "is-control-element", "is-content-element",
	"is-enabled", "is-keyboard-focusable", "has-keyboard-focus", "labeled-by",
	"class-name", "provider-description", "automation-id", "runtime-id", "text-length",
}

func (p PropertyID) String() string {
	if p >= 0 && int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("property(%d)", int(p))
}

// Properties lists every known property in declaration order.
func Properties() []PropertyID {
	out := make([]PropertyID, len(propertyNames))
	for i := range out {
		out[i] = PropertyID(i)
	}
	return out
}

// ParseProperty accepts kebab, snake or camel case names ("HasKeyboardFocus",
// "has_keyboard_focus"), plus "focusable" and "focused" shorthands.
func ParseProperty(s string) (PropertyID, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(s))
	switch norm {
	case "focusable":
		return PropIsKeyboardFocusable, nil
	case "focused", "hasfocus":
		return PropHasKeyboardFocus, nil
	}
	for i, name := range propertyNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return PropertyID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown property %q", uitree.ErrInvalidArgument, s)
}

// ValueKind tags a property value.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueString
	ValueInt
	ValueBool
	ValueInts
)

// Value is a typed property value. An empty value means the property is not
// supported for the element.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int
	Bool bool
	Ints []int
}

func stringValue(s string) Value { return Value{Kind: ValueString, Str: s} }
func boolValue(b bool) Value     { return Value{Kind: ValueBool, Bool: b} }
func intsValue(v []int) Value    { return Value{Kind: ValueInts, Ints: v} }

func (v Value) IsEmpty() bool { return v.Kind == ValueEmpty }

// Any returns the value as a plain Go value for serialization.
func (v Value) Any() any {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueInt:
		if v.Str != "" {
			return map[string]any{"id": v.Int, "name": v.Str}
		}
		return v.Int
	case ValueBool:
		return v.Bool
	case ValueInts:
		return v.Ints
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueInt:
		if v.Str != "" {
			return fmt.Sprintf("%s (%d)", v.Str, v.Int)
		}
		return strconv.Itoa(v.Int)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueInts:
		parts := make([]string, len(v.Ints))
		for i, n := range v.Ints {
			parts[i] = strconv.Itoa(n)
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return ""
}

// Control type ids as reported to clients.
var controlTypeIDs = map[uitree.Type]int{
	uitree.TypeButton:   50000,
	uitree.TypeText:     50020,
	uitree.TypeDocument: 50030,
	uitree.TypePane:     50033,
}

// appendRuntimeID is the first element of every runtime id; the host
// prepends the window's own runtime id.
const appendRuntimeID = 3
