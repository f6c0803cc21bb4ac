package main

import (
	"encoding/hex"
	"log/slog"

	"github.com/mokiat/lacking/app"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/prepass-viewer/host/config"
	"github.com/nobonobo/prepass-viewer/host/resources"
	viewerui "github.com/nobonobo/prepass-viewer/host/ui"
)

type controllerInfo struct {
	Storage     chunked.Storage
	GameShaders graphics.ShaderCollection
	GameBuilder graphics.ShaderBuilder
	UIShaders   ui.ShaderCollection
	Config      config.Config
}

func createController(info controllerInfo) (app.Controller, error) {
	keymap, err := info.Config.Keymap()
	if err != nil {
		return nil, err
	}

	locator := ui.WrappedLocator(resource.NewFSLocator(resources.UI))

	gameController := game.NewController(info.Storage, info.GameShaders, info.GameBuilder)
	uiController := ui.NewController(locator, info.UIShaders, func(w *ui.Window) {
		viewerui.BootstrapApplication(w, gameController, info.Config, keymap, viewerui.SettingsSinkFunc(logSettings))
	})

	return app.NewLayeredController(gameController, uiController), nil
}

// logSettings stands in for a shader parameter upload. The engine's
// forward pipeline has no slot for the prepass uniform block.
func logSettings(block []byte) {
	slog.Debug("Prepass settings uploaded", slog.String("block", hex.EncodeToString(block)))
}
