package ui

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/host/resources"
	"github.com/nobonobo/prepass-viewer/host/ui/widget"
)

var (
	loadingState LoadingState
	loadingError error
)

// ScreenData is passed to every screen of the application.
type ScreenData struct {
	App *applicationComponent
}

// --- Intro Screen ---

var IntroScreen = co.Define[*introScreenComponent]()

type introScreenComponent struct {
	co.BaseComponent

	title string
}

// OnCreate starts loading the viewer assets right away; the title stays
// up for a second before the loading animation takes over.
func (c *introScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.title = globalState.Config.Window.Title
	app := co.GetData[ScreenData](c.Properties()).App

	loadingState = LoadingState{
		Promise: NewLoadingPromise(
			co.Window(c.Scope()),
			LoadViewerData(globalState.ResourceSet),
			func(d *ViewerData) {
				viewerSceneData = d
			},
			func(err error) {
				loadingError = err
			},
		),
		SuccessViewName: ViewNameViewer,
		ErrorViewName:   ViewNameError,
	}

	co.After(c.Scope(), time.Second, func() {
		app.SetActiveView(ViewNameLoading)
	})
}

func (c *introScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("title", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.LabelData{
				Font:      co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf"),
				FontSize:  opt.V(float32(64)),
				FontColor: opt.V(ui.White()),
				Text:      c.title,
			})
		}))
	})
}

// --- Loading Screen ---

var LoadingScreen = co.Define[*loadingScreenComponent]()

type loadingScreenComponent struct {
	co.BaseComponent

	text string
}

func (c *loadingScreenComponent) OnCreate() {
	app := co.GetData[ScreenData](c.Properties()).App
	c.text = fmt.Sprintf("Loading %d assets", len(viewerAssets))

	state := loadingState
	state.Promise.OnSuccess(func() {
		app.SetActiveView(state.SuccessViewName)
	})
	state.Promise.OnError(func() {
		app.SetActiveView(state.ErrorViewName)
	})
}

func (c *loadingScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("loading", co.New(widget.Loading, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(widget.LoadingData{
				Text: c.text,
			})
		}))
	})
}

type LoadingState struct {
	Promise         LoadingPromise
	SuccessViewName ViewName
	ErrorViewName   ViewName
}

type LoadingPromise interface {
	OnSuccess(func())
	OnError(func())
}

// NewLoadingPromise wraps an asset promise so that its callbacks run on
// the UI worker rather than on the loading goroutine.
func NewLoadingPromise[T any](worker game.Worker, promise async.Promise[T], onSuccess func(T), onError func(error)) LoadingPromise {
	return &loadingPromise[T]{
		worker:    worker,
		promise:   promise,
		onSuccess: onSuccess,
		onError:   onError,
	}
}

type loadingPromise[T any] struct {
	worker    game.Worker
	promise   async.Promise[T]
	onSuccess func(T)
	onError   func(error)
}

func (p *loadingPromise[T]) OnSuccess(cb func()) {
	p.promise.OnSuccess(func(value T) {
		p.worker.Schedule(func() {
			p.onSuccess(value)
			cb()
		})
	})
}

func (p *loadingPromise[T]) OnError(cb func()) {
	p.promise.OnError(func(err error) {
		p.worker.Schedule(func() {
			p.onError(err)
			cb()
		})
	})
}

// --- Error Screen ---

var ErrorScreen = co.Define[*errorScreenComponent]()

var _ ui.ElementKeyboardHandler = (*errorScreenComponent)(nil)

type errorScreenComponent struct {
	co.BaseComponent

	message string
}

func (c *errorScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.message = formatLoadError(loadingError, globalState.Config.Assets, viewerAssets, 80)
}

func (c *errorScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		co.WithChild("message", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(ui.RGBA(96, 0, 0, 220)),
				Padding:         ui.Spacing{Left: 30, Right: 30, Top: 20, Bottom: 20},
				Layout:          layout.Anchor(),
			})

			co.WithChild("text", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf"),
					FontSize:  opt.V(float32(20)),
					FontColor: opt.V(ui.White()),
					Text:      c.message,
				})
			}))
		}))
	})
}

func (c *errorScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action == ui.KeyboardActionDown && event.Code == input.QuitKey {
		co.Window(c.Scope()).Close()
	}
	return true
}

// formatLoadError describes a failed asset load together with the files
// the viewer expected and where it looked for them.
func formatLoadError(err error, assetsDir string, assets []string, maxLineLength int) string {
	var builder strings.Builder
	fmt.Fprintln(&builder, "The viewer could not load its assets.")
	fmt.Fprintln(&builder)
	fmt.Fprintf(&builder, "Assets directory: %s\n", assetsDir)
	fmt.Fprintf(&builder, "Required files: %s\n", strings.Join(assets, ", "))
	fmt.Fprintln(&builder, "Build them with the studio command if they are missing.")
	fmt.Fprintln(&builder)
	fmt.Fprint(&builder, "Error: ")
	if err == nil {
		fmt.Fprintln(&builder, "unknown")
	} else {
		for line := range wrapLines(err.Error(), maxLineLength) {
			fmt.Fprintln(&builder, line)
		}
	}
	fmt.Fprintln(&builder)
	fmt.Fprintf(&builder, "Press %s to exit.", keyLabel(input.QuitKey))
	return builder.String()
}

func wrapLines(text string, maxLineLength int) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		for len(runes) > maxLineLength {
			if !yield(string(runes[:maxLineLength])) {
				return
			}
			runes = runes[maxLineLength:]
		}
		yield(string(runes))
	}
}

// --- Licenses Screen ---

var LicensesScreen = co.Define[*licensesScreenComponent]()

var _ ui.ElementKeyboardHandler = (*licensesScreenComponent)(nil)

type licensesScreenComponent struct {
	co.BaseComponent

	app *applicationComponent
}

func (c *licensesScreenComponent) OnCreate() {
	c.app = co.GetData[ScreenData](c.Properties()).App
}

func (c *licensesScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if !closesLicenses(event) {
		return false
	}
	c.app.SetActiveView(ViewNameViewer)
	return true
}

// closesLicenses reports whether the event returns to the viewer: a press
// of the key that opened the licenses or of the viewer's quit key.
func closesLicenses(event ui.KeyboardEvent) bool {
	if event.Action != ui.KeyboardActionDown {
		return false
	}
	return event.Code == input.LicensesKey || event.Code == input.QuitKey
}

func (c *licensesScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		co.WithChild("hint", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				Top:  opt.V(10),
				Left: opt.V(10),
			})
			co.WithData(std.LabelData{
				Font:      co.OpenFont(c.Scope(), "ui:///roboto-italic.ttf"),
				FontSize:  opt.V(float32(18)),
				FontColor: opt.V(ui.White()),
				Text:      fmt.Sprintf("%s / %s - back to viewer", keyLabel(input.LicensesKey), keyLabel(input.QuitKey)),
			})
		}))

		co.WithChild("scroll", co.New(std.ScrollPane, func() {
			co.WithLayoutData(layout.Data{
				Top:    opt.V(40),
				Bottom: opt.V(0),
				Left:   opt.V(0),
				Right:  opt.V(0),
			})
			co.WithData(std.ScrollPaneData{
				DisableHorizontal: true,
			})

			co.WithChild("text", co.New(std.Container, func() {
				co.WithLayoutData(layout.Data{
					GrowHorizontally: true,
				})
				co.WithData(std.ContainerData{
					BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 200)),
					Padding:         ui.Spacing{Left: 20, Right: 20, Top: 20, Bottom: 20},
					Layout:          layout.Anchor(),
				})

				co.WithChild("licenses", co.New(std.Label, func() {
					co.WithData(std.LabelData{
						Font:      co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf"),
						FontSize:  opt.V(float32(16)),
						FontColor: opt.V(ui.White()),
						Text:      resources.Licenses,
					})
				}))
			}))
		}))
	})
}
