// Command game runs the prepass viewer.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/nobonobo/prepass-viewer/host/config"
)

func main() {
	var (
		configPath = flag.String("config", config.Filename, "viewer configuration file")
		verbose    = flag.Bool("v", false, "log output switches and settings uploads")
	)
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	slog.Info("Viewer started")
	if err := runApplication(*configPath); err != nil {
		slog.Error("Viewer crashed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Viewer stopped")
}
