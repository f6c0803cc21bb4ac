//go:build js

package ui

import (
	"fmt"
	"log/slog"
	"syscall/js"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
)

func Fullscreen(on bool) {
	elm := document.Get("documentElement")
	if on {
		var f js.Func
		f = js.FuncOf(func(this js.Value, args []js.Value) any {
			defer f.Release()
			slog.Warn("Fullscreen request rejected",
				slog.String("error", args[0].Call("toString").String()),
			)
			return nil
		})
		elm.Call("requestFullscreen").Call("catch", f)
	} else {
		if document.Get("fullscreenElement").Truthy() {
			go document.Call("exitFullscreen")
		}
	}
}

// updateHash mirrors the active prepass output into the page URL without
// adding history entries.
func updateHash(view uint32) {
	targetHash := fmt.Sprintf("#prepass-%d", view)
	if location.Get("hash").String() != targetHash {
		window.Get("history").Call("replaceState", js.Null(), "", targetHash)
	}
}
