package vmath

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestReflectAxis(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel float64
		wantPos  float64
		wantVel  float64
		wantHit  bool
	}{
		{"inside", 0, 1, 0, 1, false},
		{"below moving out", -3, -2, -2, 1, true},
		{"below moving in", -3, 2, -2, 2, true},
		{"above moving out", 3, 4, 2, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			hit := ReflectAxis(&pos, &vel, -2, 2, 0.5)
			if hit != tt.wantHit || pos != tt.wantPos || vel != tt.wantVel {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", pos, vel, hit, tt.wantPos, tt.wantVel, tt.wantHit)
			}
		})
	}
}

func TestFloorContactInclusive(t *testing.T) {
	pos, vel := 1.0, -0.2
	impact, hit := FloorContact(&pos, &vel, 1.0, 0.5)
	if !hit {
		t.Fatal("resting exactly at floor must count as contact")
	}
	if impact != 0.2 || vel != 0.1 || pos != 1.0 {
		t.Errorf("got impact=%v vel=%v pos=%v", impact, vel, pos)
	}

	pos, vel = 1.5, -0.2
	if _, hit := FloorContact(&pos, &vel, 1.0, 0.5); hit {
		t.Error("above floor reported contact")
	}
}

func TestRandSymmetricBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		v := RandSymmetric(rng, 0.25)
		if v < -0.25 || v >= 0.25 {
			t.Fatalf("value %v out of range", v)
		}
		r := RandRange(rng, 5, 7)
		if r < 5 || r >= 7 {
			t.Fatalf("range value %v out of [5,7)", r)
		}
	}
}

func TestProjectorCentersTarget(t *testing.T) {
	cam := Camera{
		Eye:    mgl64.Vec3{0, 8, 12},
		Target: mgl64.Vec3{0, 1, 0},
		Up:     Up,
		FovY:   75,
		Near:   0.1,
		Far:    1000,
	}
	p := NewProjector(cam, 160, 96, 1)

	x, y, depth, ok := p.Project(cam.Target)
	if !ok {
		t.Fatal("target not projected")
	}
	if !ApproxEqual(x, 80, 1e-6) || !ApproxEqual(y, 48, 1e-6) {
		t.Errorf("target projected to (%v, %v), want viewport center", x, y)
	}
	want := cam.Eye.Sub(cam.Target).Len()
	if !ApproxEqual(depth, want, 1e-6) {
		t.Errorf("depth %v, want %v", depth, want)
	}

	// Higher world points land higher on screen
	_, yHigh, _, _ := p.Project(mgl64.Vec3{0, 3, 0})
	if yHigh >= y {
		t.Errorf("raised point y=%v not above target y=%v", yHigh, y)
	}

	if _, _, _, ok := p.Project(mgl64.Vec3{0, 8, 20}); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestProjectorFacing(t *testing.T) {
	cam := Camera{Eye: mgl64.Vec3{0, 0, 10}, Target: mgl64.Vec3{}, Up: Up, FovY: 60, Near: 0.1, Far: 100}
	p := NewProjector(cam, 10, 10, 1)
	if !p.Facing(mgl64.Vec3{}, AxisZ) {
		t.Error("+Z face toward camera reported hidden")
	}
	if p.Facing(mgl64.Vec3{}, AxisZ.Mul(-1)) {
		t.Error("-Z face reported visible")
	}
}

func TestProjectorDegenerateCameraLooksDownZ(t *testing.T) {
	eye := mgl64.Vec3{1, 2, 3}
	cam := Camera{Eye: eye, Target: eye, Up: Up, FovY: 60, Near: 0.1, Far: 100}
	p := NewProjector(cam, 10, 10, 1)

	x, y, depth, ok := p.Project(eye.Sub(AxisZ.Mul(5)))
	if !ok {
		t.Fatal("point ahead of a degenerate camera not projected")
	}
	if !ApproxEqual(x, 5, 1e-6) || !ApproxEqual(y, 5, 1e-6) || !ApproxEqual(depth, 5, 1e-6) {
		t.Errorf("projected to (%v, %v) depth %v, want centre at depth 5", x, y, depth)
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp inside = %v", got)
	}
	if got := Lerp(1.3, 0.6, 0); got != 1.3 {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(0.5) = %v", got)
	}
}
