// Package prepass holds the view selection logic of the prepass viewer.
// It has no knowledge of the engine, the scene or input devices.
package prepass

import "math"

// Event is a discrete, edge-triggered request to change the view.
type Event int

const (
	EventReset Event = iota
	EventAdvance
	EventRetreat
)

func (e Event) String() string {
	switch e {
	case EventReset:
		return "reset"
	case EventAdvance:
		return "advance"
	case EventRetreat:
		return "retreat"
	default:
		return "unknown"
	}
}

// Selector tracks which prepass output is being displayed.
// The zero value is ready to use and shows the combined output.
type Selector struct {
	index uint32
}

// NewSelector returns a selector showing the combined output.
func NewSelector() *Selector {
	return &Selector{}
}

// Index returns the current prepass view index.
func (s *Selector) Index() uint32 {
	return s.index
}

// Selection returns the render target selection for the current index.
func (s *Selector) Selection() Selection {
	return SelectionFor(s.index)
}

// HandleEvent applies a single event. The returned bool reports whether
// the index changed; the selection is only meaningful when it did.
//
// Retreat at index zero and Advance at the largest index are no-ops.
func (s *Selector) HandleEvent(event Event) (Selection, bool) {
	switch event {
	case EventReset:
		s.index = 0
	case EventAdvance:
		if s.index == math.MaxUint32 {
			return Selection{}, false
		}
		s.index++
	case EventRetreat:
		if s.index == 0 {
			return Selection{}, false
		}
		s.index--
	default:
		return Selection{}, false
	}
	return SelectionFor(s.index), true
}

// Apply handles all events observed during one step, in order.
func (s *Selector) Apply(events ...Event) (Selection, bool) {
	changed := false
	for _, event := range events {
		if _, ok := s.HandleEvent(event); ok {
			changed = true
		}
	}
	if !changed {
		return Selection{}, false
	}
	return SelectionFor(s.index), true
}
