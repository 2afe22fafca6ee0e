package input

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// Command is what a key press asks the tree to do.
type Command int

const (
	CommandNone Command = iota
	CommandFocusNext
	CommandFocusPrev
	CommandActivate
)

func (c Command) String() string {
	switch c {
	case CommandFocusNext:
		return "focus-next"
	case CommandFocusPrev:
		return "focus-prev"
	case CommandActivate:
		return "activate"
	}
	return "none"
}

// Bindings maps chords to commands.
type Bindings struct {
	Next     []Chord
	Prev     []Chord
	Activate []Chord
}

// DefaultBindings: Down and Tab move forward, Up and Shift+Tab move back,
// Return activates.
func DefaultBindings() Bindings {
	return Bindings{
		Next:     []Chord{{Key: KeyDown}, {Key: KeyTab}},
		Prev:     []Chord{{Key: KeyUp}, {Key: KeyTab, Shift: true}},
		Activate: []Chord{{Key: KeyReturn}},
	}
}

// ParseBindings builds bindings from chord strings. Empty lists keep the
// defaults.
func ParseBindings(next, prev, activate []string) (Bindings, error) {
	b := DefaultBindings()
	for _, set := range []struct {
		src []string
		dst *[]Chord
	}{{next, &b.Next}, {prev, &b.Prev}, {activate, &b.Activate}} {
		if len(set.src) == 0 {
			continue
		}
		chords := make([]Chord, 0, len(set.src))
		for _, s := range set.src {
			c, err := ParseChord(s)
			if err != nil {
				return Bindings{}, err
			}
			chords = append(chords, c)
		}
		*set.dst = chords
	}
	return b, nil
}

// Resolve returns the command bound to key with the given shift state.
func (b Bindings) Resolve(k Key, shift bool) Command {
	c := Chord{Key: k, Shift: shift}
	for _, set := range []struct {
		chords []Chord
		cmd    Command
	}{{b.Next, CommandFocusNext}, {b.Prev, CommandFocusPrev}, {b.Activate, CommandActivate}} {
		for _, have := range set.chords {
			if have == c {
				return set.cmd
			}
		}
	}
	return CommandNone
}

// Target receives commands. *uitree.Tree implements it.
type Target interface {
	FocusNext()
	FocusPrev()
	ActivateFocused() error
}

var _ Target = (*uitree.Tree)(nil)

// Driver feeds key events to a Target.
type Driver struct {
	kb       *Keyboard
	bindings Bindings
	target   Target
	log      *slog.Logger
}

func NewDriver(target Target, bindings Bindings, log *slog.Logger) *Driver {
	return &Driver{kb: NewKeyboard(), bindings: bindings, target: target, log: log}
}

// Key applies one key transition. Only presses trigger commands; a key that
// is already down does not repeat.
func (d *Driver) Key(k Key, down bool) (Command, error) {
	b := d.kb.Update(k, down)
	if !b.Pressed() {
		return CommandNone, nil
	}
	cmd := d.bindings.Resolve(k, d.kb.Shift())
	if cmd != CommandNone {
		d.log.Debug("key command", "key", k.String(), "shift", d.kb.Shift(), "command", cmd.String())
	}
	return cmd, d.Run(cmd)
}

// Tap presses and releases a chord, holding shift if the chord needs it.
func (d *Driver) Tap(c Chord) (Command, error) {
	if c.Shift {
		d.kb.Update(KeyShift, true)
		defer d.kb.Update(KeyShift, false)
	}
	cmd, err := d.Key(c.Key, true)
	d.kb.Update(c.Key, false)
	return cmd, err
}

// Run executes cmd against the target.
func (d *Driver) Run(cmd Command) error {
	switch cmd {
	case CommandFocusNext:
		d.target.FocusNext()
	case CommandFocusPrev:
		d.target.FocusPrev()
	case CommandActivate:
		if err := d.target.ActivateFocused(); err != nil {
			return fmt.Errorf("activate focused: %w", err)
		}
	}
	return nil
}
