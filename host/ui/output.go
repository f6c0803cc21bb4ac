package ui

import (
	"log/slog"

	"github.com/mokiat/lacking/ui"

	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/prepass"
)

// SettingsSink receives the encoded prepass settings block. The block is
// reused between calls, so implementations must copy what they keep.
type SettingsSink interface {
	UploadSettings(block []byte)
}

type SettingsSinkFunc func(block []byte)

func (f SettingsSinkFunc) UploadSettings(block []byte) {
	f(block)
}

// outputSwitch connects selector keys to the selector and uploads the
// settings block of every new selection.
type outputSwitch struct {
	keymap    input.Keymap
	selector  *prepass.Selector
	sink      SettingsSink
	selection prepass.Selection
	block     []byte
}

// newOutputSwitch uploads the current selection once, since a freshly
// created scene has not seen any settings yet.
func newOutputSwitch(keymap input.Keymap, selector *prepass.Selector, sink SettingsSink) *outputSwitch {
	result := &outputSwitch{
		keymap:   keymap,
		selector: selector,
		sink:     sink,
	}
	result.upload(selector.Selection())
	return result
}

func (s *outputSwitch) Selection() prepass.Selection {
	return s.selection
}

// HandleKey reports whether the event belongs to a selector key and
// whether it changed the selection.
func (s *outputSwitch) HandleKey(event ui.KeyboardEvent) (handled, changed bool) {
	selectorEvent, ok := s.keymap.Translate(event)
	if !ok {
		return false, false
	}
	selection, changed := s.selector.HandleEvent(selectorEvent)
	if !changed {
		return true, false
	}
	s.upload(selection)
	slog.Debug("Prepass output changed",
		slog.String("event", selectorEvent.String()),
		slog.Int("view", int(selection.PrepassView)),
		slog.String("label", selection.Label()),
	)
	return true, true
}

func (s *outputSwitch) upload(selection prepass.Selection) {
	s.selection = selection
	s.block = selection.Uniform(s.block)
	if s.sink != nil {
		s.sink.UploadSettings(s.block)
	}
}
