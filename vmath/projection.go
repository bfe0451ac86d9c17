package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera describes a perspective viewpoint
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // Vertical field of view in degrees
	Near   float64
	Far    float64
}

// Projector maps world points onto a pixel viewport
// PixelAspect is pixel width over pixel height (1 for square pixels)
type Projector struct {
	camera        Camera
	width, height float64
	viewProj      mgl64.Mat4
}

// NewProjector builds the view-projection for a width x height viewport
func NewProjector(cam Camera, width, height int, pixelAspect float64) *Projector {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	aspect := float64(width) * pixelAspect / float64(height)
	up := cam.Up
	if up.Len() < Epsilon {
		up = Up
	}
	// A look-at with no direction is undefined; face -Z instead
	if Vec3ApproxEqual(cam.Eye, cam.Target, Epsilon) {
		cam.Target = cam.Eye.Sub(AxisZ)
	}
	view := mgl64.LookAtV(cam.Eye, cam.Target, up)
	proj := mgl64.Perspective(mgl64.DegToRad(cam.FovY), aspect, cam.Near, cam.Far)

	return &Projector{
		camera:   cam,
		width:    float64(width),
		height:   float64(height),
		viewProj: proj.Mul4(view),
	}
}

// Project returns viewport coordinates and view depth of p
// ok is false when p lies behind the near plane
func (p *Projector) Project(point mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(point.Vec4(1))
	w := clip.W()
	if w <= p.camera.Near {
		return 0, 0, w, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	x = (ndcX + 1) * 0.5 * p.width
	y = (1 - ndcY) * 0.5 * p.height
	return x, y, w, true
}

// Eye returns the camera position
func (p *Projector) Eye() mgl64.Vec3 {
	return p.camera.Eye
}

// Facing reports whether a surface at point with outward normal n faces the camera
func (p *Projector) Facing(point, normal mgl64.Vec3) bool {
	return normal.Dot(p.camera.Eye.Sub(point)) > 0
}

// Size returns viewport dimensions in pixels
func (p *Projector) Size() (float64, float64) {
	return p.width, p.height
}
