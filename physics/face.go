package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/dice-roller/vmath"
)

// Face binds an outward local normal to the pip value printed on it
type Face struct {
	Normal mgl64.Vec3
	Value  int
}

// FaceMapping is the fixed face table in ascending value order
// Opposite faces sum to 7; order doubles as the tie-break (lowest value wins)
var FaceMapping = [6]Face{
	{Normal: mgl64.Vec3{1, 0, 0}, Value: 1},
	{Normal: mgl64.Vec3{0, 1, 0}, Value: 2},
	{Normal: mgl64.Vec3{0, 0, 1}, Value: 3},
	{Normal: mgl64.Vec3{0, 0, -1}, Value: 4},
	{Normal: mgl64.Vec3{0, -1, 0}, Value: 5},
	{Normal: mgl64.Vec3{-1, 0, 0}, Value: 6},
}

// TopFace returns the value of the face whose world normal is most aligned with up
func TopFace(orientation mgl64.Quat) int {
	return TopFaceWith(FaceMapping[:], orientation)
}

// TopFaceWith resolves the up face against an arbitrary table
// The first entry with the strictly greatest up-alignment wins, so equal maxima
// resolve to table order. NaN orientations resolve to the first entry.
// Returns 0 only for an empty table
func TopFaceWith(faces []Face, orientation mgl64.Quat) int {
	if len(faces) == 0 {
		return 0
	}

	top := faces[0].Value
	best := math.Inf(-1)
	for _, f := range faces {
		dot := orientation.Rotate(f.Normal).Dot(vmath.Up)
		if dot > best {
			best = dot
			top = f.Value
		}
	}
	return top
}
