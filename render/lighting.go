package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dice-roller/parameter"
)

// DirectionalLight shines from Position toward the origin
type DirectionalLight struct {
	Position  mgl64.Vec3
	Color     colorful.Color
	Intensity float64
}

// AccentLight is a point light orbiting the table centre
// At scene time t it sits at (sin(Rate*t+Phase), _, Direction*cos(Rate*t+Phase)) scaled by Radius
type AccentLight struct {
	Color     colorful.Color
	Intensity float64
	Range     float64
	Radius    float64
	Height    float64
	Rate      float64
	Phase     float64
	Direction float64
}

// Position returns the orbit position at scene time t
func (a AccentLight) Position(t float64) mgl64.Vec3 {
	angle := a.Rate*t + a.Phase
	return mgl64.Vec3{
		math.Sin(angle) * a.Radius,
		a.Height,
		a.Direction * math.Cos(angle) * a.Radius,
	}
}

// Lights is the scene light rig
type Lights struct {
	Ambient     colorful.Color
	Directional []DirectionalLight
	Accents     []AccentLight
}

// DefaultLights builds the stock rig: white ambient, white main, blue fill, pink and cyan accents
func DefaultLights() Lights {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Lights{
		Ambient: Scale(white, parameter.AmbientIntensity),
		Directional: []DirectionalLight{
			{
				Position:  mgl64.Vec3{parameter.MainLightX, parameter.MainLightY, parameter.MainLightZ},
				Color:     mustHex(parameter.MainLightHex),
				Intensity: parameter.MainLightIntensity,
			},
			{
				Position:  mgl64.Vec3{parameter.FillLightX, parameter.FillLightY, parameter.FillLightZ},
				Color:     mustHex(parameter.FillLightHex),
				Intensity: parameter.FillLightIntensity,
			},
		},
		Accents: []AccentLight{
			{
				Color:     mustHex(parameter.Accent1Hex),
				Intensity: parameter.AccentIntensity,
				Range:     parameter.AccentRange,
				Radius:    parameter.AccentOrbitRadius,
				Height:    parameter.AccentHeight,
				Rate:      parameter.Accent1Rate,
				Direction: 1,
			},
			{
				// x = cos(rate*t), z = sin(rate*t)
				Color:     mustHex(parameter.Accent2Hex),
				Intensity: parameter.AccentIntensity,
				Range:     parameter.AccentRange,
				Radius:    parameter.AccentOrbitRadius,
				Height:    parameter.AccentHeight,
				Rate:      parameter.Accent2Rate,
				Phase:     math.Pi / 2,
				Direction: -1,
			},
		},
	}
}

// Irradiance sums the light arriving at point with unit normal n at scene time t
func (l Lights) Irradiance(point, normal mgl64.Vec3, t float64) colorful.Color {
	total := l.Ambient

	for _, d := range l.Directional {
		dir := d.Position
		if dir.Len() == 0 {
			continue
		}
		lambert := normal.Dot(dir.Normalize())
		if lambert > 0 {
			total = Add(total, Scale(d.Color, d.Intensity*lambert))
		}
	}

	for _, a := range l.Accents {
		toLight := a.Position(t).Sub(point)
		dist := toLight.Len()
		if dist == 0 || (a.Range > 0 && dist >= a.Range) {
			continue
		}
		lambert := normal.Dot(toLight.Mul(1 / dist))
		if lambert <= 0 {
			continue
		}
		atten := 1.0
		if a.Range > 0 {
			f := 1 - dist/a.Range
			atten = f * f
		}
		total = Add(total, Scale(a.Color, a.Intensity*lambert*atten))
	}

	return total
}

// Shade lights a base colour and clamps it to gamut
func (l Lights) Shade(base colorful.Color, point, normal mgl64.Vec3, t float64) colorful.Color {
	return Modulate(base, l.Irradiance(point, normal, t)).Clamped()
}
