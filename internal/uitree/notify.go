package uitree

import "fmt"

// EventKind classifies a change notification.
type EventKind int

const (
	EventFocusChanged EventKind = iota
	EventInvoked
	EventStructureChanged
)

func (k EventKind) String() string {
	switch k {
	case EventFocusChanged:
		return "focus-changed"
	case EventInvoked:
		return "invoked"
	case EventStructureChanged:
		return "structure-changed"
	}
	return "unknown"
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EventKind) UnmarshalText(b []byte) error {
	for _, c := range []EventKind{EventFocusChanged, EventInvoked, EventStructureChanged} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("%w: event kind %q", ErrInvalidArgument, b)
}

// Event is a change notification for an external client.
type Event struct {
	Kind       EventKind `yaml:"kind"       json:"kind"`
	ID         ID        `yaml:"id"         json:"id"`
	Generation uint64    `yaml:"generation" json:"generation"`
}

// Notifier delivers events to clients. Raise is only called when
// ClientsAreListening returns true.
type Notifier interface {
	ClientsAreListening() bool
	Raise(Event)
}
