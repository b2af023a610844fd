package world

import (
	"fmt"
	"log"
	"strings"
)

// EventKind classifies an EventLog entry.
type EventKind string

const (
	EventCreate    EventKind = "create"
	EventRemove    EventKind = "remove"
	EventCollision EventKind = "collision"
	EventSound     EventKind = "sound"
	EventText      EventKind = "text"
)

// Event is one thing the host did on behalf of the simulation.
type Event struct {
	Tick  int
	Kind  EventKind
	Label string
	Value string
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] create    marble3      RollingBallBlue
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-9s %-12s %s", e.Tick, e.Kind, e.Label, e.Value)
}

// EventLog records host activity during a run. When Verbose is set every
// entry is also written to the standard logger.
type EventLog struct {
	Verbose bool
	entries []Event
}

func NewEventLog(verbose bool) *EventLog {
	return &EventLog{Verbose: verbose}
}

// Add records an entry. A nil log discards it.
func (l *EventLog) Add(tick int, kind EventKind, label, value string) {
	if l == nil {
		return
	}
	e := Event{Tick: tick, Kind: kind, Label: label, Value: value}
	l.entries = append(l.entries, e)
	if l.Verbose {
		log.Print(e)
	}
}

func (l *EventLog) Entries() []Event {
	return l.entries
}

// Count returns how many entries of kind were recorded.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the entries of kind, optionally narrowed to labels with prefix.
func (l *EventLog) Filter(kind EventKind, labelPrefix string) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Kind == kind && strings.HasPrefix(e.Label, labelPrefix) {
			out = append(out, e)
		}
	}
	return out
}

func (l *EventLog) String() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
