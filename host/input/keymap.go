package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mokiat/lacking/ui"

	"github.com/nobonobo/prepass-viewer/prepass"
)

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrDuplicateKey = errors.New("key bound more than once")
	ErrReservedKey  = errors.New("key reserved by the viewer")
)

// Keys with a fixed meaning in the viewer. They cannot be bound to
// selector events.
var (
	MetricsKey  = ui.KeyCodeTab
	LicensesKey = ui.KeyCodeL
	QuitKey     = ui.KeyCodeEscape
)

func reserved(code ui.KeyCode) bool {
	return code == MetricsKey || code == LicensesKey || code == QuitKey
}

// Keymap binds the three selector events to keyboard keys.
type Keymap struct {
	Reset   ui.KeyCode
	Advance ui.KeyCode
	Retreat ui.KeyCode
}

func DefaultKeymap() Keymap {
	return Keymap{
		Reset:   ui.KeyCodeR,
		Advance: ui.KeyCodeSpace,
		Retreat: ui.KeyCodeBackspace,
	}
}

// NewKeymap builds a keymap from key names as they appear in the
// configuration file.
func NewKeymap(reset, advance, retreat string) (Keymap, error) {
	var (
		result Keymap
		err    error
	)
	if result.Reset, err = ParseKey(reset); err != nil {
		return Keymap{}, fmt.Errorf("reset key: %w", err)
	}
	if result.Advance, err = ParseKey(advance); err != nil {
		return Keymap{}, fmt.Errorf("advance key: %w", err)
	}
	if result.Retreat, err = ParseKey(retreat); err != nil {
		return Keymap{}, fmt.Errorf("retreat key: %w", err)
	}
	for _, binding := range []struct {
		name string
		code ui.KeyCode
	}{
		{reset, result.Reset},
		{advance, result.Advance},
		{retreat, result.Retreat},
	} {
		if reserved(binding.code) {
			return Keymap{}, fmt.Errorf("%w: %q", ErrReservedKey, binding.name)
		}
	}
	if result.Reset == result.Advance || result.Reset == result.Retreat || result.Advance == result.Retreat {
		return Keymap{}, fmt.Errorf("%w: reset=%q advance=%q retreat=%q", ErrDuplicateKey, reset, advance, retreat)
	}
	return result, nil
}

// Translate turns a key press into a selector event. Releases and
// auto-repeats while a key is held produce nothing.
func (m Keymap) Translate(event ui.KeyboardEvent) (prepass.Event, bool) {
	if event.Action != ui.KeyboardActionDown {
		return 0, false
	}
	switch event.Code {
	case m.Reset:
		return prepass.EventReset, true
	case m.Advance:
		return prepass.EventAdvance, true
	case m.Retreat:
		return prepass.EventRetreat, true
	default:
		return 0, false
	}
}

// Name returns the configuration name of a key, or "?" for keys that
// have none.
func Name(code ui.KeyCode) string {
	for name, candidate := range keyNames {
		if candidate == code {
			return name
		}
	}
	return "?"
}

// ParseKey resolves a case-insensitive key name.
func ParseKey(name string) (ui.KeyCode, error) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return code, nil
}

var keyNames = map[string]ui.KeyCode{
	"space":     ui.KeyCodeSpace,
	"backspace": ui.KeyCodeBackspace,
	"enter":     ui.KeyCodeEnter,
	"escape":    ui.KeyCodeEscape,
	"tab":       ui.KeyCodeTab,
	"left":      ui.KeyCodeArrowLeft,
	"right":     ui.KeyCodeArrowRight,
	"up":        ui.KeyCodeArrowUp,
	"down":      ui.KeyCodeArrowDown,

	"a": ui.KeyCodeA, "b": ui.KeyCodeB, "c": ui.KeyCodeC, "d": ui.KeyCodeD,
	"e": ui.KeyCodeE, "f": ui.KeyCodeF, "g": ui.KeyCodeG, "h": ui.KeyCodeH,
	"i": ui.KeyCodeI, "j": ui.KeyCodeJ, "k": ui.KeyCodeK, "l": ui.KeyCodeL,
	"m": ui.KeyCodeM, "n": ui.KeyCodeN, "o": ui.KeyCodeO, "p": ui.KeyCodeP,
	"q": ui.KeyCodeQ, "r": ui.KeyCodeR, "s": ui.KeyCodeS, "t": ui.KeyCodeT,
	"u": ui.KeyCodeU, "v": ui.KeyCodeV, "w": ui.KeyCodeW, "x": ui.KeyCodeX,
	"y": ui.KeyCodeY, "z": ui.KeyCodeZ,

	"0": ui.KeyCode0, "1": ui.KeyCode1, "2": ui.KeyCode2, "3": ui.KeyCode3,
	"4": ui.KeyCode4, "5": ui.KeyCode5, "6": ui.KeyCode6, "7": ui.KeyCode7,
	"8": ui.KeyCode8, "9": ui.KeyCode9,
}
