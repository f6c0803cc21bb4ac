package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	"github.com/stretchr/testify/assert"

	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/prepass"
)

func TestOverlayText(t *testing.T) {
	text := overlayText(prepass.SelectionFor(prepass.ViewNormals), input.DefaultKeymap())

	assert.Equal(t, strings.Join([]string{
		"Prepass 2 Output: normals",
		"",
		"",
		"Controls",
		"---------------",
		"Space - Next output",
		"Backspace - Previous output",
		"R - Combined output",
		"Tab - Metrics",
		"L - Licenses",
		"Escape - Quit",
	}, "\n"), text)
}

func TestOverlayTextFollowsSelector(t *testing.T) {
	selector := prepass.NewSelector()
	keymap := input.DefaultKeymap()

	for range 5 {
		selector.HandleEvent(prepass.EventAdvance)
	}
	assert.True(t, strings.HasPrefix(overlayText(selector.Selection(), keymap), "Prepass 5 Output: deferred\n"))
}

func TestWrapLines(t *testing.T) {
	lines := slices.Collect(wrapLines("abcdefgh", 3))
	assert.Equal(t, []string{"abc", "def", "gh"}, lines)

	lines = slices.Collect(wrapLines("", 3))
	assert.Equal(t, []string{""}, lines)
}

func TestFormatLoadError(t *testing.T) {
	message := formatLoadError(errors.New("missing subject.dat"), "./assets", viewerAssets, 80)
	assert.Contains(t, message, "Assets directory: ./assets\n")
	assert.Contains(t, message, "Required files: prepass-scene.dat, subject.dat\n")
	assert.Contains(t, message, "Error: missing subject.dat\n")
	assert.True(t, strings.HasSuffix(message, "Press Escape to exit."))

	message = formatLoadError(nil, "/srv/viewer", viewerAssets, 80)
	assert.Contains(t, message, "Assets directory: /srv/viewer\n")
	assert.Contains(t, message, "Error: unknown\n")
}

func TestFormatLoadErrorWrapsLongErrors(t *testing.T) {
	message := formatLoadError(errors.New(strings.Repeat("x", 25)), "./assets", viewerAssets, 10)
	assert.Contains(t, message, "Error: xxxxxxxxxx\nxxxxxxxxxx\nxxxxx\n")
}

func TestKeyLabel(t *testing.T) {
	assert.Equal(t, "Tab", keyLabel(input.MetricsKey))
	assert.Equal(t, "L", keyLabel(input.LicensesKey))
	assert.Equal(t, "Escape", keyLabel(input.QuitKey))
}

type sceneCalls struct {
	calls []string
}

func (s *sceneCalls) SetActiveScene(scene *game.Scene) {
	if scene == nil {
		s.calls = append(s.calls, "deactivate")
	} else {
		s.calls = append(s.calls, "activate")
	}
}

func (s *sceneCalls) Delete() {
	s.calls = append(s.calls, "delete")
}

func TestReleaseSceneDeletesAfterDeactivating(t *testing.T) {
	recorder := &sceneCalls{}
	releaseScene(recorder, recorder)
	assert.Equal(t, []string{"deactivate", "delete"}, recorder.calls)
}

func TestReleaseScenePerVisit(t *testing.T) {
	engine := &sceneCalls{}
	var deleted int
	for range 3 {
		scene := &sceneCalls{}
		releaseScene(engine, scene)
		deleted += len(scene.calls)
	}
	assert.Equal(t, 3, deleted)
	assert.Equal(t, []string{"deactivate", "deactivate", "deactivate"}, engine.calls)
}

func TestClosesLicenses(t *testing.T) {
	testCases := []struct {
		name  string
		event ui.KeyboardEvent
		want  bool
	}{
		{
			name:  "licenses key",
			event: ui.KeyboardEvent{Code: input.LicensesKey, Action: ui.KeyboardActionDown},
			want:  true,
		},
		{
			name:  "quit key",
			event: ui.KeyboardEvent{Code: input.QuitKey, Action: ui.KeyboardActionDown},
			want:  true,
		},
		{
			name:  "licenses key release",
			event: ui.KeyboardEvent{Code: input.LicensesKey, Action: ui.KeyboardActionUp},
		},
		{
			name:  "selector key",
			event: ui.KeyboardEvent{Code: ui.KeyCodeSpace, Action: ui.KeyboardActionDown},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, closesLicenses(tc.event))
		})
	}
}
