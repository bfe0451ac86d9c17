package renderers

import (
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
	"github.com/lixenwraith/dice-roller/vmath"
)

// SceneRenderer rasterises the 3D table and die with half-block pixels
type SceneRenderer struct {
	builder *render.SceneBuilder
	camera  vmath.Camera
	canvas  *render.Canvas
}

// NewSceneRenderer creates a scene renderer for a die of the given half extent
func NewSceneRenderer(halfExtent float64, palette render.Palette) *SceneRenderer {
	return &SceneRenderer{
		builder: render.NewSceneBuilder(halfExtent, palette),
		camera:  render.DefaultCamera(),
		canvas:  render.NewCanvas(0, 0, palette.Background),
	}
}

// Render implements SystemRenderer
func (s *SceneRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return
	}
	if w, h := s.canvas.Size(); w != ctx.Width || h != ctx.Height*2 {
		s.canvas.Resize(ctx.Width, ctx.Height)
	} else {
		s.canvas.Clear()
	}

	pw, ph := s.canvas.Size()
	proj := vmath.NewProjector(s.camera, pw, ph, parameter.CellPixelAspect)
	s.builder.Build(ctx.Snapshot, proj).Draw(s.canvas)
	s.canvas.Blit(buf, 0, 0)
}
