//go:build js

package main

import (
	"fmt"

	jsapp "github.com/mokiat/lacking-js/app"
	jsgame "github.com/mokiat/lacking-js/game"
	jsui "github.com/mokiat/lacking-js/ui"
	"github.com/mokiat/lacking/storage/chunked"

	"github.com/nobonobo/prepass-viewer/host/config"
)

func runApplication(_ string) error {
	// The browser build has no file system to read a config from.
	cfg := config.Default()

	storage, err := chunked.NewWebStorage(".")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	controller, err := createController(controllerInfo{
		Storage:     storage,
		GameShaders: jsgame.NewShaderCollection(),
		GameBuilder: jsgame.NewShaderBuilder(),
		UIShaders:   jsui.NewShaderCollection(),
		Config:      cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}

	appCfg := jsapp.NewConfig("screen")
	appCfg.AddGLExtension("EXT_color_buffer_float")
	appCfg.SetFullscreen(false)
	appCfg.SetAudioEnabled(false)
	return jsapp.Run(appCfg, controller)
}
