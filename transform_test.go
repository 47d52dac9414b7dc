package colorcube_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/colorcube"
)

const tol = 1e-5

func assertVec4(t *testing.T, want, got mgl32.Vec4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func TestDefaultCamera(t *testing.T) {
	cam := colorcube.DefaultCamera()

	assert.Equal(t, colorcube.Perspective, cam.Mode)
	assert.Equal(t, float32(45), cam.FOV)
	assert.Equal(t, float32(4.0/3.0), cam.Aspect)
	assert.Equal(t, float32(0.1), cam.Near)
	assert.Equal(t, float32(100), cam.Far)
	assert.Equal(t, mgl32.Vec3{4, 3, -3}, cam.Eye)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.Target)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up)
}

func TestPerspectiveProjection(t *testing.T) {
	proj := colorcube.DefaultCamera().Projection()

	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100), proj)

	f := 1 / math.Tan(math.Pi/8)
	assert.InDelta(t, f, proj[5], tol)
	assert.InDelta(t, f*3/4, proj[0], tol)
	assert.Equal(t, float32(-1), proj[11])
	assert.Equal(t, float32(0), proj[15])
}

func TestOrthographicProjection(t *testing.T) {
	cam := colorcube.DefaultCamera()
	cam.Mode = colorcube.Orthographic
	cam.Near = 0

	proj := cam.Projection()
	assert.Equal(t, mgl32.Ortho(-10, 10, -10, 10, 0, 100), proj)
	assert.InDelta(t, 0.1, proj[0], tol)
	assert.InDelta(t, 0.1, proj[5], tol)
	assert.Equal(t, float32(1), proj[15])
}

func TestViewMovesEyeToOrigin(t *testing.T) {
	cam := colorcube.DefaultCamera()
	view := cam.View()

	assertVec4(t, mgl32.Vec4{0, 0, 0, 1}, view.Mul4x1(cam.Eye.Vec4(1)))

	// The target sits straight ahead, down -Z.
	dist := float32(math.Sqrt(34))
	assertVec4(t, mgl32.Vec4{0, 0, -dist, 1}, view.Mul4x1(cam.Target.Vec4(1)))
}

func TestMVPIsProjectionViewModel(t *testing.T) {
	model := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.HomogRotate3DY(0.5))
	tr := colorcube.NewTransform(colorcube.DefaultCamera(), model)

	want := tr.Projection.Mul4(tr.View).Mul4(tr.Model)
	assert.Equal(t, want, tr.MVP())

	// Order matters.
	assert.NotEqual(t, tr.Model.Mul4(tr.View).Mul4(tr.Projection), tr.MVP())
	assert.NotEqual(t, tr.Projection.Mul4(tr.Model).Mul4(tr.View), tr.MVP())
}

func TestMVPOrigin(t *testing.T) {
	mvp := colorcube.NewTransform(colorcube.DefaultCamera(), mgl32.Ident4()).MVP()

	// The origin projects to the center of the screen at the eye distance.
	clip := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, clip.X(), tol)
	assert.InDelta(t, 0, clip.Y(), tol)
	assert.InDelta(t, math.Sqrt(34), clip.W(), tol)

	// Every cube vertex lands inside the view volume.
	m := colorcube.CubeMesh()
	for i := 0; i < len(m.Positions); i += 3 {
		p := mvp.Mul4x1(mgl32.Vec4{m.Positions[i], m.Positions[i+1], m.Positions[i+2], 1})
		ndc := p.Vec3().Mul(1 / p.W())
		for axis, v := range ndc {
			assert.True(t, v > -1 && v < 1, "vertex %d axis %d: %v", i/3, axis, v)
		}
	}
}

func TestMVPDeterministic(t *testing.T) {
	a := colorcube.NewTransform(colorcube.DefaultCamera(), mgl32.Ident4()).MVP()
	b := colorcube.NewTransform(colorcube.DefaultCamera(), mgl32.Ident4()).MVP()

	// Bit-for-bit, not approximately.
	for i := range a {
		assert.Equal(t, math.Float32bits(a[i]), math.Float32bits(b[i]), "element %d", i)
	}
}

func TestProjectionModeString(t *testing.T) {
	assert.Equal(t, "perspective", colorcube.Perspective.String())
	assert.Equal(t, "orthographic", colorcube.Orthographic.String())
	assert.Equal(t, "unknown", colorcube.ProjectionMode(7).String())
}
