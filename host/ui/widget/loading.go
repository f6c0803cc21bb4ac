package widget

import (
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/std"
)

var Loading = co.Define[*loadingComponent]()

type LoadingData struct {
	Text     string
	Interval time.Duration
}

var defaultLoadingData = LoadingData{
	Text:     "Loading",
	Interval: 500 * time.Millisecond,
}

type loadingComponent struct {
	co.BaseComponent

	data        LoadingData
	elapsedTime time.Duration
	frames      [][]rune

	font     *ui.Font
	fontSize float32

	maxLabelSize sprec.Vec2
}

func (c *loadingComponent) OnCreate() {
	c.font = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.fontSize = 48.0
}

func (c *loadingComponent) OnUpsert() {
	c.data = co.GetOptionalData(c.Properties(), defaultLoadingData)
	if c.data.Interval <= 0 {
		c.data.Interval = defaultLoadingData.Interval
	}
	c.frames = LoadingFrames(c.data.Text, 3)

	lastFrame := c.frames[len(c.frames)-1]
	c.maxLabelSize = sprec.Vec2{
		X: c.font.LineWidth(lastFrame, c.fontSize),
		Y: c.font.LineHeight(c.fontSize),
	}
}

func (c *loadingComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:   c,
			IdealSize: opt.V(ui.NewSize(int(c.maxLabelSize.X), int(c.maxLabelSize.Y))),
		})
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithChildren(c.Properties().Children())
	})
}

func (c *loadingComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	c.elapsedTime += canvas.ElapsedTime()

	tickIndex := int(c.elapsedTime / c.data.Interval)
	text := c.frames[tickIndex%len(c.frames)]

	drawBounds := canvas.DrawBounds(element, false)

	canvas.Push()
	canvas.Translate(drawBounds.Position)
	canvas.Translate(sprec.Vec2{
		X: (drawBounds.Size.X - c.maxLabelSize.X) / 2,
		Y: (drawBounds.Size.Y - c.maxLabelSize.Y) / 2,
	})
	canvas.FillTextLine(text, sprec.ZeroVec2(), ui.Typography{
		Font:  c.font,
		Size:  c.fontSize,
		Color: ui.White(),
	})
	canvas.Pop()

	element.Invalidate() // force redraw
}

// LoadingFrames returns the animation frames of text followed by zero
// up to maxDots dots.
func LoadingFrames(text string, maxDots int) [][]rune {
	frames := make([][]rune, 0, maxDots+1)
	for dots := 0; dots <= maxDots; dots++ {
		frame := []rune(text)
		for range dots {
			frame = append(frame, '.')
		}
		frames = append(frames, frame)
	}
	return frames
}
