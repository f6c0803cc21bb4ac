package prepass

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorStartsCombined(t *testing.T) {
	var s Selector
	assert.Equal(t, uint32(0), s.Index())
	assert.Equal(t, Selection{}, s.Selection())
	assert.Equal(t, "combined", s.Selection().Label())
	assert.Equal(t, uint32(0), NewSelector().Index())
}

func TestSelectorAdvanceThreeTimes(t *testing.T) {
	s := NewSelector()

	var (
		selection Selection
		changed   bool
	)
	for range 3 {
		selection, changed = s.HandleEvent(EventAdvance)
		require.True(t, changed)
	}

	assert.Equal(t, uint32(3), s.Index())
	assert.Equal(t, Selection{ShowMotionVectors: true, PrepassView: 3}, selection)
	assert.Equal(t, "motion vectors", selection.Label())
	assert.Equal(t, "Prepass 3 Output: motion vectors\n", selection.Caption())
}

func TestSelectorRetreat(t *testing.T) {
	s := &Selector{index: 3}

	selection, changed := s.HandleEvent(EventRetreat)
	require.True(t, changed)
	assert.Equal(t, uint32(2), s.Index())
	assert.Equal(t, Selection{ShowNormals: true, PrepassView: 2}, selection)
	assert.Equal(t, "normals", selection.Label())
}

func TestSelectorRetreatClampsAtZero(t *testing.T) {
	s := NewSelector()

	selection, changed := s.HandleEvent(EventRetreat)
	assert.False(t, changed)
	assert.Equal(t, Selection{}, selection)
	assert.Equal(t, uint32(0), s.Index())
}

func TestSelectorAdvanceSaturates(t *testing.T) {
	s := &Selector{index: math.MaxUint32}

	_, changed := s.HandleEvent(EventAdvance)
	assert.False(t, changed)
	assert.Equal(t, uint32(math.MaxUint32), s.Index())
}

func TestSelectorReset(t *testing.T) {
	s := &Selector{index: 10}

	selection, changed := s.HandleEvent(EventReset)
	require.True(t, changed)
	assert.Equal(t, uint32(0), s.Index())
	assert.Equal(t, Selection{PrepassView: 0}, selection)
	assert.Equal(t, "combined", selection.Label())
	assert.Equal(t, "Prepass 0 Output: combined\n", selection.Caption())
}

func TestSelectorResetAtZeroIsChange(t *testing.T) {
	s := NewSelector()

	selection, changed := s.HandleEvent(EventReset)
	assert.True(t, changed)
	assert.Equal(t, Selection{}, selection)
}

func TestSelectorUnknownEvent(t *testing.T) {
	s := &Selector{index: 5}

	_, changed := s.HandleEvent(Event(42))
	assert.False(t, changed)
	assert.Equal(t, uint32(5), s.Index())
}

func TestSelectorApply(t *testing.T) {
	testCases := []struct {
		name        string
		start       uint32
		events      []Event
		wantIndex   uint32
		wantChanged bool
	}{
		{
			name:        "no events",
			start:       7,
			wantIndex:   7,
			wantChanged: false,
		},
		{
			name:        "reset then advance",
			start:       9,
			events:      []Event{EventReset, EventAdvance},
			wantIndex:   1,
			wantChanged: true,
		},
		{
			name:        "advance then retreat",
			start:       2,
			events:      []Event{EventAdvance, EventRetreat},
			wantIndex:   2,
			wantChanged: true,
		},
		{
			name:        "clamped retreats only",
			start:       0,
			events:      []Event{EventRetreat, EventRetreat},
			wantIndex:   0,
			wantChanged: false,
		},
		{
			name:        "retreat below zero then advance",
			start:       0,
			events:      []Event{EventRetreat, EventAdvance},
			wantIndex:   1,
			wantChanged: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Selector{index: tc.start}
			selection, changed := s.Apply(tc.events...)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.wantIndex, s.Index())
			if changed {
				assert.Equal(t, SelectionFor(tc.wantIndex), selection)
			}
		})
	}
}

func TestSelectorRandomWalkStaysConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	events := []Event{EventReset, EventAdvance, EventAdvance, EventAdvance, EventRetreat, EventRetreat, EventRetreat}

	s := NewSelector()
	model := 0
	for range 10000 {
		event := events[rng.Intn(len(events))]
		selection, changed := s.HandleEvent(event)

		switch event {
		case EventReset:
			model = 0
		case EventAdvance:
			model++
		case EventRetreat:
			if model > 0 {
				model--
			}
		}

		require.Equal(t, uint32(model), s.Index())
		if changed {
			require.Equal(t, s.Index(), selection.PrepassView)
			require.Equal(t, Label(s.Index()), selection.Label())
		}
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "reset", EventReset.String())
	assert.Equal(t, "advance", EventAdvance.String())
	assert.Equal(t, "retreat", EventRetreat.String())
	assert.Equal(t, "unknown", Event(-1).String())
}
