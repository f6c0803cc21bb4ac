//go:build !js

package ui

// Fullscreen is driven by the native window configuration.
func Fullscreen(on bool) {}

func updateHash(view uint32) {}
