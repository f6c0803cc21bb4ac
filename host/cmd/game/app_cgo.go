//go:build !js

package main

import (
	"fmt"
	"log/slog"

	nativeapp "github.com/mokiat/lacking-native/app"
	nativegame "github.com/mokiat/lacking-native/game"
	nativeui "github.com/mokiat/lacking-native/ui"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/prepass-viewer/host/config"
	"github.com/nobonobo/prepass-viewer/host/resources"
)

func runApplication(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.Info("Config loaded",
		slog.String("assets", cfg.Assets),
		slog.Int("width", cfg.Window.Width),
		slog.Int("height", cfg.Window.Height),
	)

	storage, err := chunked.NewFileStorage(cfg.Assets)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	controller, err := createController(controllerInfo{
		Storage:     storage,
		GameShaders: nativegame.NewShaderCollection(),
		GameBuilder: nativegame.NewShaderBuilder(),
		UIShaders:   nativeui.NewShaderCollection(),
		Config:      cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}

	appCfg := nativeapp.NewConfig(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	appCfg.SetFullscreen(cfg.Window.Fullscreen)
	appCfg.SetMaximized(false)
	appCfg.SetMinSize(512, 512)
	appCfg.SetVSync(cfg.Window.VSync)
	appCfg.SetIcon("ui/images/icon.png")
	appCfg.SetLocator(ui.WrappedLocator(resource.NewFSLocator(resources.UI)))
	appCfg.SetAudioEnabled(false)
	return nativeapp.Run(appCfg, controller)
}
