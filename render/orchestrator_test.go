package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// stampRenderer writes its rune at the origin
type stampRenderer struct {
	r       rune
	hidden  bool
	renders int
}

func (s *stampRenderer) Render(_ RenderContext, buf *Buffer) {
	s.renders++
	buf.Set(0, 0, s.r, tcell.StyleDefault)
}

func (s *stampRenderer) IsVisible() bool {
	return !s.hidden
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2, Cell{Rune: ' '})

	// Registered out of order; higher priority renders last and wins
	overlay := &stampRenderer{r: 'o'}
	scene := &stampRenderer{r: 's'}
	o.Register(overlay, PriorityOverlay)
	o.Register(scene, PriorityScene)

	o.RenderFrame(RenderContext{Width: 4, Height: 2})

	if r, _, _, _ := screen.GetContent(0, 0); r != 'o' {
		t.Errorf("origin = %q, want overlay on top", r)
	}
	if scene.renders != 1 || overlay.renders != 1 {
		t.Errorf("renders = %d/%d, want 1/1", scene.renders, overlay.renders)
	}
}

func TestOrchestratorStableWithinPriority(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2, Cell{Rune: ' '})

	o.Register(&stampRenderer{r: 'a'}, PriorityUI)
	o.Register(&stampRenderer{r: 'b'}, PriorityUI)
	o.RenderFrame(RenderContext{})

	if got := o.Buffer().Get(0, 0).Rune; got != 'b' {
		t.Errorf("origin = %q, want later registration on top", got)
	}
}

func TestOrchestratorSkipsHidden(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2, Cell{Rune: ' '})

	debug := &stampRenderer{r: 'd', hidden: true}
	o.Register(debug, PriorityDebug)
	o.RenderFrame(RenderContext{})

	if debug.renders != 0 {
		t.Error("hidden renderer was called")
	}
	if got := o.Buffer().Get(0, 0).Rune; got != ' ' {
		t.Errorf("origin = %q, want fill", got)
	}
}

func TestOrchestratorResize(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2, Cell{Rune: ' '})
	o.Resize(8, 3)
	if w, h := o.Buffer().Size(); w != 8 || h != 3 {
		t.Errorf("buffer = %dx%d, want 8x3", w, h)
	}
}
