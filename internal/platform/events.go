package platform

import (
	"sync"

	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// EventLog is an in-memory event sink. It reports listening clients only
// while its listening flag is set.
type EventLog struct {
	mu        sync.Mutex
	listening bool
	events    []uitree.Event
}

func NewEventLog(listening bool) *EventLog {
	return &EventLog{listening: listening}
}

// SetListening toggles whether clients are considered subscribed.
func (l *EventLog) SetListening(on bool) {
	l.mu.Lock()
	l.listening = on
	l.mu.Unlock()
}

func (l *EventLog) ClientsAreListening() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listening
}

func (l *EventLog) Raise(ev uitree.Event) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
	logger.Debug("event raised", "kind", ev.Kind.String(), "id", ev.ID.String(), "generation", ev.Generation)
}

func (l *EventLog) Drain() []uitree.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.events
	l.events = nil
	return out
}

var _ EventSink = (*EventLog)(nil)
