package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/dice-roller/engine"
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/vmath"
)

func testScene(snap engine.Snapshot) (Scene, *vmath.Projector) {
	proj := vmath.NewProjector(DefaultCamera(), 160, 96, 1)
	b := NewSceneBuilder(1, DefaultPalette())
	return b.Build(snap, proj), proj
}

func restingSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Position:    mgl64.Vec3{0, 1, 0},
		Orientation: mgl64.QuatIdent(),
		HasResult:   true,
		Result:      2,
	}
}

func TestSceneSortedByLayerThenDepth(t *testing.T) {
	scene, _ := testScene(restingSnapshot())
	if len(scene.Polygons) == 0 {
		t.Fatal("empty scene")
	}
	for i := 1; i < len(scene.Polygons); i++ {
		prev, cur := scene.Polygons[i-1], scene.Polygons[i]
		if prev.Layer > cur.Layer {
			t.Fatalf("polygon %d: layer %d after %d", i, cur.Layer, prev.Layer)
		}
		if prev.Layer == cur.Layer && prev.Depth < cur.Depth {
			t.Fatalf("polygon %d: depth %v after nearer %v", i, cur.Depth, prev.Depth)
		}
	}
}

func TestSceneDieFacesCulled(t *testing.T) {
	scene, _ := testScene(restingSnapshot())
	white := DefaultPalette().DieFace

	// A cube shows at most three faces; the die faces are the only bright polygons
	// with four points in the solid layer
	faces := 0
	for _, p := range scene.Polygons {
		if p.Layer == LayerSolid && len(p.Points) == 4 && p.Color.R > 0.9*white.R && p.Color.G > 0.6 && p.Color.B > 0.6 {
			faces++
		}
	}
	if faces == 0 || faces > 3 {
		t.Errorf("visible die faces = %d, want 1..3", faces)
	}
}

func TestSceneDrawsDieAtProjectedCentre(t *testing.T) {
	snap := restingSnapshot()
	scene, proj := testScene(snap)

	c := NewCanvas(160, 48, DefaultPalette().Background)
	scene.Draw(c)

	// A pip-free spot on the top face is visible from the camera and lit near white
	x, y, _, ok := proj.Project(mgl64.Vec3{0.5, 2, -0.5})
	if !ok {
		t.Fatal("die top not in front of camera")
	}
	got := c.At(int(x), int(y))
	if got.R < 0.8 || got.G < 0.8 {
		t.Errorf("pixel at die top = %v, want bright face", got)
	}
}

func TestSceneShadowShrinksWithHeight(t *testing.T) {
	area := func(pos mgl64.Vec3) float64 {
		snap := restingSnapshot()
		snap.Position = pos
		scene, _ := testScene(snap)
		for _, p := range scene.Polygons {
			if p.Layer == LayerDecal && len(p.Points) == parameter.ShadowSegments {
				return polygonArea(p.Points)
			}
		}
		t.Fatal("no shadow polygon")
		return 0
	}
	if low, high := area(mgl64.Vec3{0, 1, 0}), area(mgl64.Vec3{0, 6, 0}); high >= low {
		t.Errorf("shadow area high=%v not smaller than low=%v", high, low)
	}
}

func polygonArea(pts []Point) float64 {
	a := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if a < 0 {
		a = -a
	}
	return a / 2
}

func TestTangentsOrthonormal(t *testing.T) {
	for _, n := range []mgl64.Vec3{vmath.AxisX, vmath.Up, vmath.AxisZ.Mul(-1)} {
		u, v := tangents(n)
		if !vmath.ApproxEqual(u.Len(), 1, 1e-12) || !vmath.ApproxEqual(v.Len(), 1, 1e-12) {
			t.Errorf("n=%v: tangents not unit", n)
		}
		if !vmath.ApproxEqual(u.Dot(n), 0, 1e-12) || !vmath.ApproxEqual(v.Dot(n), 0, 1e-12) || !vmath.ApproxEqual(u.Dot(v), 0, 1e-12) {
			t.Errorf("n=%v: tangents not orthogonal", n)
		}
	}
}
