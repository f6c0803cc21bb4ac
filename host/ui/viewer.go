package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/debug/metric/metricui"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/prepass-viewer/host/input"
	"github.com/nobonobo/prepass-viewer/prepass"
)

const (
	sceneAsset   = "prepass-scene.dat"
	subjectAsset = "subject.dat"
)

// viewerAssets lists the files LoadViewerData reads from the asset storage.
var viewerAssets = []string{sceneAsset, subjectAsset}

func LoadViewerData(resourceSet *game.ResourceSet) async.Promise[*ViewerData] {
	var data ViewerData
	return async.InjectionPromise(async.JoinOperations(
		resourceSet.FetchResource(sceneAsset, &data.Scene),
		resourceSet.FetchResource(subjectAsset, &data.Subject),
	), &data)
}

type ViewerData struct {
	Scene   *game.ModelTemplate
	Subject *game.ModelTemplate
}

var ViewerScreen = co.Define[*viewerScreenComponent]()

type viewerScreenComponent struct {
	co.BaseComponent

	app *applicationComponent

	debugVisible bool

	engine *game.Engine
	scene  *game.Scene

	keymap input.Keymap
	output *outputSwitch

	// spin applies the rotation animation to the displayed model.
	spin    func(dprec.Quat)
	elapsed time.Duration

	textFont *ui.Font
}

var _ ui.ElementKeyboardHandler = (*viewerScreenComponent)(nil)

func (c *viewerScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.engine = globalState.Engine
	c.keymap = globalState.Keymap
	c.output = newOutputSwitch(globalState.Keymap, globalState.Selector, globalState.Settings)

	componentData := co.GetData[ScreenData](c.Properties())
	c.app = componentData.App

	c.textFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")

	c.createScene(viewerSceneData)
	c.engine.SetActiveScene(c.scene)
	c.engine.ResetDeltaTime()

	Fullscreen(globalState.Config.Window.Fullscreen)
}

func (c *viewerScreenComponent) OnDelete() {
	releaseScene(c.engine, c.scene)
	c.scene = nil
	Fullscreen(false)
}

type sceneActivator interface {
	SetActiveScene(scene *game.Scene)
}

type sceneDeleter interface {
	Delete()
}

// releaseScene detaches the scene from the engine before deleting it.
// OnCreate builds a fresh scene on every visit.
func releaseScene(engine sceneActivator, scene sceneDeleter) {
	engine.SetActiveScene(nil)
	scene.Delete()
}

var _ ui.ElementRenderHandler = (*viewerScreenComponent)(nil)

func (c *viewerScreenComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	c.elapsed += canvas.ElapsedTime()
	c.spin(prepass.Spin(c.elapsed))

	// The rotation is continuous, so every frame needs a redraw.
	c.Invalidate()
}

func (c *viewerScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if handled, changed := c.output.HandleKey(event); handled {
		if changed {
			updateHash(c.output.Selection().PrepassView)
			c.Invalidate()
		}
		return true
	}

	if event.Action != ui.KeyboardActionDown {
		return false
	}
	switch event.Code {
	case input.QuitKey:
		co.Window(c.Scope()).Close()
		return true

	case input.MetricsKey:
		c.debugVisible = !c.debugVisible
		c.Invalidate()
		return true

	case input.LicensesKey:
		c.app.SetActiveView(ViewNameLicenses)
		return true

	default:
		return false
	}
}

func (c *viewerScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		if c.debugVisible {
			co.WithChild("flamegraph", co.New(metricui.FlameGraph, func() {
				co.WithData(metricui.FlameGraphData{
					UpdateInterval: time.Second,
				})
				co.WithLayoutData(layout.Data{
					Bottom: opt.V(0),
					Left:   opt.V(0),
					Right:  opt.V(0),
				})
			}))
		}

		co.WithChild("overlay", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				Top:  opt.V(10),
				Left: opt.V(10),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 120)),
				Padding:         ui.Spacing{Left: 10, Right: 10, Top: 10, Bottom: 10},
				Layout:          layout.Anchor(),
			})

			co.WithChild("text", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.textFont,
					FontSize:  opt.V(float32(18)),
					FontColor: opt.V(ui.White()),
					Text:      overlayText(c.output.Selection(), c.keymap),
				})
			}))
		}))
	})
}

// overlayText is the caption of the active output followed by the
// controls legend.
func overlayText(selection prepass.Selection, keymap input.Keymap) string {
	var builder strings.Builder
	builder.WriteString(selection.Caption())
	builder.WriteString("\n\n")
	builder.WriteString("Controls\n")
	builder.WriteString("---------------\n")
	fmt.Fprintf(&builder, "%s - Next output\n", keyLabel(keymap.Advance))
	fmt.Fprintf(&builder, "%s - Previous output\n", keyLabel(keymap.Retreat))
	fmt.Fprintf(&builder, "%s - Combined output\n", keyLabel(keymap.Reset))
	fmt.Fprintf(&builder, "%s - Metrics\n", keyLabel(input.MetricsKey))
	fmt.Fprintf(&builder, "%s - Licenses\n", keyLabel(input.LicensesKey))
	fmt.Fprintf(&builder, "%s - Quit", keyLabel(input.QuitKey))
	return builder.String()
}

func keyLabel(code ui.KeyCode) string {
	name := input.Name(code)
	return strings.ToUpper(name[:1]) + name[1:]
}

func (c *viewerScreenComponent) createScene(data *ViewerData) {
	c.scene = c.engine.CreateScene(game.SceneInfo{
		IncludePhysics: opt.V(false),
		IncludeECS:     opt.V(false),
	})

	sceneModel := c.scene.InstantiateModel(game.ModelInfo{
		Template:  data.Scene,
		Name:      opt.V("Scene"),
		IsDynamic: false,
	})

	camera := c.createCamera(c.scene.Graphics())
	c.scene.Graphics().SetActiveCamera(camera)

	if cameraNode := sceneModel.FindNode("Camera"); !cameraNode.IsNil() {
		c.scene.CameraBindingSet().Bind(cameraNode, camera)
	}

	subjectModel := c.scene.InstantiateModel(game.ModelInfo{
		Template:  data.Subject,
		Name:      opt.V("Subject"),
		Position:  opt.V(dprec.NewVec3(-1.0, 1.0, 0.0)),
		IsDynamic: true,
	})
	subjectNode := c.scene.Hierarchy().Wrap(subjectModel.Root())
	c.spin = func(rotation dprec.Quat) {
		subjectNode.SetRotation(rotation)
	}
}

func (c *viewerScreenComponent) createCamera(scene *graphics.Scene) *graphics.Camera {
	result := scene.CreateCamera()
	result.SetFoVMode(graphics.FoVModeHorizontalPlus)
	result.SetFoV(sprec.Degrees(45))
	result.SetAutoExposure(false)
	result.SetExposure(1.0)
	result.SetAutoFocus(false)
	result.SetCascadeDistances([]float32{32.0})
	return result
}

// Set by the intro screen once the assets are loaded.
var viewerSceneData *ViewerData
