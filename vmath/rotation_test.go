package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSpinQuatZeroIsIdentity(t *testing.T) {
	q := SpinQuat(mgl64.Vec3{})
	v := q.Rotate(AxisX)
	if !Vec3ApproxEqual(v, AxisX, 1e-12) {
		t.Errorf("zero spin rotated X to %v", v)
	}
}

func TestIntegrateSpinQuarterTurn(t *testing.T) {
	tests := []struct {
		name string
		spin mgl64.Vec3
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"yaw X to -Z", mgl64.Vec3{0, math.Pi / 2, 0}, AxisX, mgl64.Vec3{0, 0, -1}},
		{"pitch Y to Z", mgl64.Vec3{math.Pi / 2, 0, 0}, AxisY, AxisZ},
		{"roll X to Y", mgl64.Vec3{0, 0, math.Pi / 2}, AxisX, AxisY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := IntegrateSpin(mgl64.QuatIdent(), tt.spin)
			got := q.Rotate(tt.in)
			if !Vec3ApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntegrateSpinStaysNormalized(t *testing.T) {
	q := mgl64.QuatIdent()
	w := mgl64.Vec3{0.21, -0.13, 0.07}
	for i := 0; i < 10000; i++ {
		q = IntegrateSpin(q, w)
	}
	if !ApproxEqual(q.Len(), 1, 1e-9) {
		t.Errorf("quaternion length drifted to %v", q.Len())
	}
}

func TestYawKeepsUp(t *testing.T) {
	q := Yaw(mgl64.QuatIdent(), 1.3)
	if got := q.Rotate(Up); !Vec3ApproxEqual(got, Up, 1e-12) {
		t.Errorf("yaw moved up axis to %v", got)
	}
}
