package colorcube

import "github.com/go-gl/mathgl/mgl32"

// ProjectionMode selects how the camera projects the scene.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// String returns the name used in configuration files.
func (p ProjectionMode) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Camera describes a fixed viewpoint.
type Camera struct {
	Mode ProjectionMode

	FOV    float32 // Vertical field of view in degrees (perspective only)
	Aspect float32 // Width / height (perspective only)

	// OrthoExtent is the half width and half height of the view volume
	// in world units (orthographic only).
	OrthoExtent float32

	Near, Far float32

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// DefaultCamera looks at the origin from (4, 3, -3) with a 45 degree, 4:3
// perspective.
func DefaultCamera() Camera {
	return Camera{
		Mode:        Perspective,
		FOV:         45,
		Aspect:      4.0 / 3.0,
		OrthoExtent: 10,
		Near:        0.1,
		Far:         100,
		Eye:         mgl32.Vec3{4, 3, -3},
		Target:      mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
	}
}

// Projection returns the camera's projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	if c.Mode == Orthographic {
		e := c.OrthoExtent
		return mgl32.Ortho(-e, e, -e, e, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Transform holds the three matrices combined into the MVP.
type Transform struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
}

// NewTransform builds a transform for camera with the model placed by model.
func NewTransform(camera Camera, model mgl32.Mat4) Transform {
	return Transform{
		Projection: camera.Projection(),
		View:       camera.View(),
		Model:      model,
	}
}

// MVP returns Projection * View * Model. The model matrix is applied to a
// vertex first.
func (t Transform) MVP() mgl32.Mat4 {
	return t.Projection.Mul4(t.View).Mul4(t.Model)
}
