package ui

import (
	"slices"
	"testing"

	"github.com/mokiat/lacking/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/prepass"
)

type recordingSink struct {
	blocks [][]byte
}

func (s *recordingSink) UploadSettings(block []byte) {
	s.blocks = append(s.blocks, slices.Clone(block))
}

func press(code ui.KeyCode) ui.KeyboardEvent {
	return ui.KeyboardEvent{Code: code, Action: ui.KeyboardActionDown}
}

func TestOutputSwitchUploadsInitialSelection(t *testing.T) {
	sink := &recordingSink{}
	newOutputSwitch(input.DefaultKeymap(), &prepass.Selector{}, sink)

	require.Len(t, sink.blocks, 1)
	assert.Equal(t, prepass.SelectionFor(0).Uniform(nil), sink.blocks[0])
}

func TestOutputSwitchUploadsOnChange(t *testing.T) {
	sink := &recordingSink{}
	selector := prepass.NewSelector()
	output := newOutputSwitch(input.DefaultKeymap(), selector, sink)

	handled, changed := output.HandleKey(press(ui.KeyCodeSpace))
	assert.True(t, handled)
	assert.True(t, changed)

	require.Len(t, sink.blocks, 2)
	assert.Len(t, sink.blocks[1], prepass.UniformSize)
	assert.Equal(t, prepass.SelectionFor(prepass.ViewDepth).Uniform(nil), sink.blocks[1])
	assert.Equal(t, prepass.SelectionFor(prepass.ViewDepth), output.Selection())
	assert.Equal(t, uint32(1), selector.Index())
}

func TestOutputSwitchSkipsUnchanged(t *testing.T) {
	sink := &recordingSink{}
	output := newOutputSwitch(input.DefaultKeymap(), prepass.NewSelector(), sink)

	handled, changed := output.HandleKey(press(ui.KeyCodeBackspace))
	assert.True(t, handled)
	assert.False(t, changed)

	handled, changed = output.HandleKey(ui.KeyboardEvent{Code: ui.KeyCodeSpace, Action: ui.KeyboardActionUp})
	assert.False(t, handled)
	assert.False(t, changed)

	handled, _ = output.HandleKey(press(ui.KeyCodeEscape))
	assert.False(t, handled)

	assert.Len(t, sink.blocks, 1)
}

func TestOutputSwitchWithoutSink(t *testing.T) {
	output := newOutputSwitch(input.DefaultKeymap(), prepass.NewSelector(), nil)

	_, changed := output.HandleKey(press(ui.KeyCodeSpace))
	assert.True(t, changed)
	assert.Equal(t, uint32(1), output.Selection().PrepassView)
}

func TestSettingsSinkFunc(t *testing.T) {
	var received []byte
	sink := SettingsSinkFunc(func(block []byte) {
		received = block
	})
	sink.UploadSettings([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, received)
}
