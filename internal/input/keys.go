// Package input turns key transitions into focus and activation commands.
package input

import (
	"fmt"
	"strings"
)

// Key is an abstract key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyTab
	KeyReturn
	KeySpace
	KeyEscape
	KeyShift
)

var keyNames = map[string]Key{
	"up":     KeyUp,
	"down":   KeyDown,
	"tab":    KeyTab,
	"return": KeyReturn,
	"enter":  KeyReturn,
	"space":  KeySpace,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"shift":  KeyShift,
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyTab:
		return "tab"
	case KeyReturn:
		return "return"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	case KeyShift:
		return "shift"
	}
	return "unknown"
}

// ParseKey converts a key name to a Key.
func ParseKey(s string) (Key, error) {
	if k, ok := keyNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

// Chord is a key with the shift state it requires.
type Chord struct {
	Key   Key
	Shift bool
}

func (c Chord) String() string {
	if c.Shift {
		return "shift+" + c.Key.String()
	}
	return c.Key.String()
}

// ParseChord parses "tab" or "shift+tab".
func ParseChord(s string) (Chord, error) {
	var c Chord
	parts := strings.Split(strings.ToLower(s), "+")
	for i, p := range parts {
		k, err := ParseKey(p)
		if err != nil {
			return Chord{}, fmt.Errorf("invalid chord %q: %w", s, err)
		}
		if k == KeyShift && i < len(parts)-1 {
			c.Shift = true
			continue
		}
		c.Key = k
	}
	if c.Key == KeyUnknown || c.Key == KeyShift {
		return Chord{}, fmt.Errorf("invalid chord %q: no key", s)
	}
	return c, nil
}

// DigitalButton tracks one key across updates. Pressed and Released hold
// only for the update that caused the transition.
type DigitalButton struct {
	down     bool
	pressed  bool
	released bool
}

// Update records the key's current state.
func (b *DigitalButton) Update(isDown bool) {
	b.pressed = isDown && !b.down
	b.released = !isDown && b.down
	b.down = isDown
}

func (b *DigitalButton) Down() bool     { return b.down }
func (b *DigitalButton) Pressed() bool  { return b.pressed }
func (b *DigitalButton) Released() bool { return b.released }

// Keyboard holds the state of every key seen so far.
type Keyboard struct {
	buttons map[Key]*DigitalButton
}

func NewKeyboard() *Keyboard {
	return &Keyboard{buttons: make(map[Key]*DigitalButton)}
}

// Update records a key-down or key-up event and returns the key's state.
func (kb *Keyboard) Update(k Key, down bool) *DigitalButton {
	b, ok := kb.buttons[k]
	if !ok {
		b = &DigitalButton{}
		kb.buttons[k] = b
	}
	b.Update(down)
	return b
}

// Shift reports whether shift is held.
func (kb *Keyboard) Shift() bool {
	b, ok := kb.buttons[KeyShift]
	return ok && b.Down()
}
