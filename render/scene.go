package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dice-roller/engine"
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/physics"
	"github.com/lixenwraith/dice-roller/vmath"
)

// Layer groups polygons drawn back to front; depth sorting happens within a layer
type Layer int

const (
	LayerFloor Layer = iota // Table slab
	LayerDecal              // Felt lines and shadow, flat on the felt
	LayerSolid              // Rails, cup and die
)

// Polygon is a projected, shaded, convex screen polygon
type Polygon struct {
	Points []Point
	Depth  float64 // Eye distance of the source centroid
	Color  colorful.Color
	Layer  Layer
}

// Scene is a draw list in painter's order
type Scene struct {
	Polygons []Polygon
}

// Draw fills every polygon onto the canvas in order
func (s Scene) Draw(c *Canvas) {
	for _, p := range s.Polygons {
		c.FillPolygon(p.Points, p.Color)
	}
}

// DefaultCamera is the stock viewpoint above and in front of the table
func DefaultCamera() vmath.Camera {
	return vmath.Camera{
		Eye:    mgl64.Vec3{parameter.CameraEyeX, parameter.CameraEyeY, parameter.CameraEyeZ},
		Target: mgl64.Vec3{parameter.CameraTargetX, parameter.CameraTargetY, parameter.CameraTargetZ},
		Up:     vmath.Up,
		FovY:   parameter.CameraFovY,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
	}
}

// SceneBuilder turns a simulation snapshot into a draw list
type SceneBuilder struct {
	Palette    Palette
	Lights     Lights
	HalfExtent float64 // Die half edge
}

// NewSceneBuilder creates a builder with the default light rig
func NewSceneBuilder(halfExtent float64, palette Palette) *SceneBuilder {
	return &SceneBuilder{
		Palette:    palette,
		Lights:     DefaultLights(),
		HalfExtent: halfExtent,
	}
}

// sceneBuild accumulates polygons for one frame
type sceneBuild struct {
	proj  *vmath.Projector
	t     float64
	polys []Polygon
}

// Build produces the sorted draw list for snap as seen through proj
func (b *SceneBuilder) Build(snap engine.Snapshot, proj *vmath.Projector) Scene {
	sb := &sceneBuild{
		proj:  proj,
		t:     snap.SceneTime,
		polys: make([]Polygon, 0, 128),
	}

	b.addTable(sb)
	b.addRails(sb)
	b.addCup(sb)
	b.addShadow(sb, snap.Position)
	b.addDie(sb, snap.Position, snap.Orientation)

	sort.SliceStable(sb.polys, func(i, j int) bool {
		pi, pj := sb.polys[i], sb.polys[j]
		if pi.Layer != pj.Layer {
			return pi.Layer < pj.Layer
		}
		return pi.Depth > pj.Depth
	})

	return Scene{Polygons: sb.polys}
}

// add projects world vertices and appends a polygon; dropped when any vertex is behind the camera
func (sb *sceneBuild) add(world []mgl64.Vec3, col colorful.Color, layer Layer) {
	pts := make([]Point, 0, len(world))
	var centroid mgl64.Vec3
	for _, w := range world {
		x, y, _, ok := sb.proj.Project(w)
		if !ok {
			return
		}
		pts = append(pts, Point{X: x, Y: y})
		centroid = centroid.Add(w)
	}
	centroid = centroid.Mul(1 / float64(len(world)))

	sb.polys = append(sb.polys, Polygon{
		Points: pts,
		Depth:  centroid.Sub(sb.proj.Eye()).Len(),
		Color:  col,
		Layer:  layer,
	})
}

// boxFaces lists the outward normal and tangent axes of each cube face
var boxFaces = [6][3]mgl64.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

// addBox emits the camera-facing faces of an axis-aligned box
func (b *SceneBuilder) addBox(sb *sceneBuild, center, half mgl64.Vec3, base colorful.Color, layer Layer) {
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		faceCenter := center.Add(mul3(n, half))
		if !sb.proj.Facing(faceCenter, n) {
			continue
		}
		du, dv := mul3(u, half), mul3(v, half)
		quad := []mgl64.Vec3{
			faceCenter.Sub(du).Sub(dv),
			faceCenter.Add(du).Sub(dv),
			faceCenter.Add(du).Add(dv),
			faceCenter.Sub(du).Add(dv),
		}
		sb.add(quad, b.Lights.Shade(base, faceCenter, n, sb.t), layer)
	}
}

func (b *SceneBuilder) addTable(sb *sceneBuild) {
	half := mgl64.Vec3{parameter.TableHalfWidthFloat, parameter.TableThicknessFloat / 2, parameter.TableHalfDepthFloat}
	center := mgl64.Vec3{0, -parameter.TableThicknessFloat / 2, 0}
	b.addBox(sb, center, half, b.Palette.Table, LayerFloor)

	// Felt lines are unlit
	const y = 0.01
	for i := -parameter.FeltLineCount; i <= parameter.FeltLineCount; i++ {
		z := float64(i)
		sb.add([]mgl64.Vec3{
			{-parameter.FeltLineHalfLength, y, z - parameter.FeltLineHalfWidth},
			{parameter.FeltLineHalfLength, y, z - parameter.FeltLineHalfWidth},
			{parameter.FeltLineHalfLength, y, z + parameter.FeltLineHalfWidth},
			{-parameter.FeltLineHalfLength, y, z + parameter.FeltLineHalfWidth},
		}, b.Palette.FeltLine, LayerDecal)
	}
}

func (b *SceneBuilder) addRails(sb *sceneBuild) {
	hw, hd := parameter.TableHalfWidthFloat, parameter.TableHalfDepthFloat
	t := parameter.RailThickness / 2
	y := parameter.RailHeight / 2
	long := mgl64.Vec3{hw + 2*t, y, t}
	short := mgl64.Vec3{t, y, hd + 2*t}

	b.addBox(sb, mgl64.Vec3{0, y, hd + t}, long, b.Palette.Rail, LayerSolid)
	b.addBox(sb, mgl64.Vec3{0, y, -hd - t}, long, b.Palette.Rail, LayerSolid)
	b.addBox(sb, mgl64.Vec3{hw + t, y, 0}, short, b.Palette.Rail, LayerSolid)
	b.addBox(sb, mgl64.Vec3{-hw - t, y, 0}, short, b.Palette.Rail, LayerSolid)
}

// addCup emits the open frustum: visible side segments plus the dark inside seen through the rim
func (b *SceneBuilder) addCup(sb *sceneBuild) {
	const n = parameter.CupSegments
	top := make([]mgl64.Vec3, n)
	bottom := make([]mgl64.Vec3, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		s, c := math.Sin(a), math.Cos(a)
		top[i] = mgl64.Vec3{parameter.CupX + c*parameter.CupTopRadius, parameter.CupHeight, parameter.CupZ + s*parameter.CupTopRadius}
		bottom[i] = mgl64.Vec3{parameter.CupX + c*parameter.CupBottomRadius, 0, parameter.CupZ + s*parameter.CupBottomRadius}
	}

	// Side normals tilt up since the cup widens toward the rim
	slope := (parameter.CupTopRadius - parameter.CupBottomRadius) / parameter.CupHeight
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mid := (float64(i) + 0.5) / n * 2 * math.Pi
		normal := mgl64.Vec3{math.Cos(mid), -slope, math.Sin(mid)}.Normalize()
		quad := []mgl64.Vec3{bottom[i], bottom[j], top[j], top[i]}
		center := quad[0].Add(quad[1]).Add(quad[2]).Add(quad[3]).Mul(0.25)
		if !sb.proj.Facing(center, normal) {
			continue
		}
		sb.add(quad, b.Lights.Shade(b.Palette.Cup, center, normal, sb.t), LayerSolid)
	}

	rimCenter := mgl64.Vec3{parameter.CupX, parameter.CupHeight, parameter.CupZ}
	if sb.proj.Facing(rimCenter, vmath.Up) {
		sb.add(top, b.Palette.CupInside, LayerSolid)
	}
}

// addShadow emits a disc under the die that shrinks and fades toward the felt colour with height
func (b *SceneBuilder) addShadow(sb *sceneBuild, pos mgl64.Vec3) {
	lift := math.Max(0, pos.Y()-b.HalfExtent)
	fade := vmath.Clamp(lift/parameter.ShadowFadeHeight, 0, 1)
	r := b.HalfExtent * vmath.Lerp(parameter.ShadowNearScale, parameter.ShadowFarScale, fade)
	col := b.Palette.Shadow.BlendRgb(b.Palette.Table, fade*parameter.ShadowMaxFade)
	const y = 0.005
	pts := make([]mgl64.Vec3, parameter.ShadowSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / parameter.ShadowSegments
		pts[i] = mgl64.Vec3{pos.X() + math.Cos(a)*r, y, pos.Z() + math.Sin(a)*r}
	}
	sb.add(pts, col, LayerDecal)
}

// pipLayouts places pips on a face spanning [-1, 1] in both tangent axes
var pipLayouts = map[int][][2]float64{
	1: {{0, 0}},
	2: {{-1, -1}, {1, 1}},
	3: {{-1, -1}, {0, 0}, {1, 1}},
	4: {{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
	5: {{-1, -1}, {1, -1}, {0, 0}, {-1, 1}, {1, 1}},
	6: {{-1, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1}},
}

const pipSides = 10

// addDie emits the visible faces of the die and the pips on each
func (b *SceneBuilder) addDie(sb *sceneBuild, pos mgl64.Vec3, q mgl64.Quat) {
	h := b.HalfExtent
	for _, face := range physics.FaceMapping {
		n := q.Rotate(face.Normal)
		faceCenter := pos.Add(n.Mul(h))
		if !sb.proj.Facing(faceCenter, n) {
			continue
		}
		u, v := tangents(face.Normal)
		u, v = q.Rotate(u).Mul(h), q.Rotate(v).Mul(h)

		quad := []mgl64.Vec3{
			faceCenter.Sub(u).Sub(v),
			faceCenter.Add(u).Sub(v),
			faceCenter.Add(u).Add(v),
			faceCenter.Sub(u).Add(v),
		}
		before := len(sb.polys)
		sb.add(quad, b.Lights.Shade(b.Palette.DieFace, faceCenter, n, sb.t), LayerSolid)
		if len(sb.polys) == before {
			continue
		}

		// Pips share the face depth; stable sort keeps them after their face
		depth := sb.polys[before].Depth
		pipColor := b.Lights.Shade(b.Palette.DiePip, faceCenter, n, sb.t)
		for _, p := range pipLayouts[face.Value] {
			c := faceCenter.Add(u.Mul(p[0] * parameter.PipOffset)).Add(v.Mul(p[1] * parameter.PipOffset))
			ring := make([]mgl64.Vec3, pipSides)
			for k := range ring {
				a := 2 * math.Pi * float64(k) / pipSides
				ring[k] = c.Add(u.Mul(math.Cos(a) * parameter.PipRadius)).Add(v.Mul(math.Sin(a) * parameter.PipRadius))
			}
			mark := len(sb.polys)
			sb.add(ring, pipColor, LayerSolid)
			if len(sb.polys) > mark {
				sb.polys[len(sb.polys)-1].Depth = depth
			}
		}
	}
}

// tangents returns two unit axes spanning the plane perpendicular to n
func tangents(n mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	ref := vmath.Up
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = vmath.AxisX
	}
	u := ref.Cross(n).Normalize()
	return u, n.Cross(u)
}

func mul3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
