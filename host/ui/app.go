package ui

import (
	"log/slog"

	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/mvc"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/prepass-viewer/host/config"
	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/prepass"
)

// BootstrapApplication mounts the screen switcher on the window. The sink
// receives the encoded output settings whenever the viewer changes them.
func BootstrapApplication(window *ui.Window, gameController *game.Controller, cfg config.Config, keymap input.Keymap, sink SettingsSink) {
	engine := gameController.Engine()
	eventBus := mvc.NewEventBus()

	scope := co.RootScope(window)
	scope = co.TypedValueScope(scope, eventBus)
	scope = co.TypedValueScope(scope, GlobalState{
		Engine:      engine,
		ResourceSet: engine.CreateResourceSet(),
		Config:      cfg,
		Keymap:      keymap,
		Selector:    prepass.NewSelector(),
		Settings:    sink,
	})
	co.Initialize(scope, co.New(Application, nil))
}

var Application = mvc.EventListener(co.Define[*applicationComponent]())

type applicationComponent struct {
	co.BaseComponent

	eventBus   *mvc.EventBus
	activeView ViewName
}

func (c *applicationComponent) OnCreate() {
	c.eventBus = co.TypedValue[*mvc.EventBus](c.Scope())
	c.activeView = ViewNameIntro
}

func (c *applicationComponent) Render() co.Instance {
	return co.New(std.Switch, func() {
		co.WithData(std.SwitchData{
			ChildKey: c.activeView,
		})

		data := ScreenData{App: c}
		co.WithChild(ViewNameIntro, co.New(IntroScreen, func() {
			co.WithData(data)
		}))
		co.WithChild(ViewNameLoading, co.New(LoadingScreen, func() {
			co.WithData(data)
		}))
		co.WithChild(ViewNameError, co.New(ErrorScreen, func() {
			co.WithData(data)
		}))
		co.WithChild(ViewNameViewer, co.New(ViewerScreen, func() {
			co.WithData(data)
		}))
		co.WithChild(ViewNameLicenses, co.New(LicensesScreen, func() {
			co.WithData(data)
		}))
	})
}

func (c *applicationComponent) OnEvent(event mvc.Event) {
	switch event.(type) {
	case ApplicationActiveViewChangedEvent:
		c.Invalidate()
	}
}

func (c *applicationComponent) ActiveView() ViewName {
	return c.activeView
}

func (c *applicationComponent) SetActiveView(view ViewName) {
	slog.Debug("Active view changed", slog.String("from", c.activeView), slog.String("to", view))
	c.activeView = view
	c.eventBus.Notify(ApplicationActiveViewChangedEvent{
		ActiveView: view,
	})
}

const (
	ViewNameIntro    ViewName = "intro"
	ViewNameError    ViewName = "error"
	ViewNameLoading  ViewName = "loading"
	ViewNameLicenses ViewName = "licenses"
	ViewNameViewer   ViewName = "viewer"
)

type ViewName = string

type ApplicationActiveViewChangedEvent struct {
	ActiveView ViewName
}
