package ui

import (
	"github.com/mokiat/lacking/game"

	"github.com/nobonobo/prepass-viewer/host/config"
	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/prepass"
)

type GlobalState struct {
	Engine      *game.Engine
	ResourceSet *game.ResourceSet
	Config      config.Config
	Keymap      input.Keymap

	// Selector outlives the viewer screen so that returning from the
	// licenses screen keeps the chosen output.
	Selector *prepass.Selector

	// Settings receives the uniform block of the active output. May be nil.
	Settings SettingsSink
}
