package colorcube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is the interface a graphics backend implements to display a scene.
type Renderer interface {
	// Upload copies the mesh into GPU buffers. It is called once.
	Upload(mesh Mesh) error
	// Render draws one frame of the uploaded mesh.
	Render(frame Frame) error
}

// Frame is everything a Renderer needs for one draw.
type Frame struct {
	ClearColor  [4]float32
	MVP         mgl32.Mat4
	VertexCount int32
}

// Scene is the startup state of the program: fixed after New returns.
type Scene struct {
	Mesh       Mesh
	Camera     Camera
	Model      mgl32.Mat4
	ClearColor [4]float32
}

// DefaultClearColor is a dark blue background.
var DefaultClearColor = [4]float32{0.0, 0.0, 0.4, 1.0}

// Option configures a Viewer.
type Option func(*Scene)

// WithCamera sets the camera.
func WithCamera(camera Camera) Option {
	return func(s *Scene) { s.Camera = camera }
}

// WithModel sets the model matrix. The default is identity.
func WithModel(model mgl32.Mat4) Option {
	return func(s *Scene) { s.Model = model }
}

// WithClearColor sets the background color.
func WithClearColor(rgba [4]float32) Option {
	return func(s *Scene) { s.ClearColor = rgba }
}

// WithMesh replaces the cube with another mesh.
func WithMesh(mesh Mesh) Option {
	return func(s *Scene) { s.Mesh = mesh }
}

// Viewer owns the scene and drives a Renderer.
type Viewer struct {
	renderer  Renderer
	scene     Scene
	mvp       mgl32.Mat4
	uploaded  bool
	drawCount uint64
}

// New creates a viewer for the colored cube. The MVP matrix is computed here,
// once.
func New(renderer Renderer, opts ...Option) (*Viewer, error) {
	s := Scene{
		Mesh:       CubeMesh(),
		Camera:     DefaultCamera(),
		Model:      mgl32.Ident4(),
		ClearColor: DefaultClearColor,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Mesh.Validate(); err != nil {
		return nil, err
	}

	return &Viewer{
		renderer: renderer,
		scene:    s,
		mvp:      NewTransform(s.Camera, s.Model).MVP(),
	}, nil
}

// Scene returns the viewer's scene.
func (v *Viewer) Scene() Scene {
	return v.scene
}

// MVP returns the combined model-view-projection matrix.
func (v *Viewer) MVP() mgl32.Mat4 {
	return v.mvp
}

// Init uploads the mesh to the renderer.
func (v *Viewer) Init() error {
	if v.uploaded {
		return ErrAlreadyUploaded
	}
	if err := v.renderer.Upload(v.scene.Mesh); err != nil {
		return fmt.Errorf("upload mesh: %w", err)
	}
	v.uploaded = true
	return nil
}

// Draw renders one frame. Call it from the display callback.
func (v *Viewer) Draw() error {
	if !v.uploaded {
		return ErrNotUploaded
	}
	err := v.renderer.Render(Frame{
		ClearColor:  v.scene.ClearColor,
		MVP:         v.mvp,
		VertexCount: int32(v.scene.Mesh.VertexCount()),
	})
	if err != nil {
		return fmt.Errorf("render frame %d: %w", v.drawCount, err)
	}
	v.drawCount++
	return nil
}

// DrawCount returns the number of frames rendered successfully.
func (v *Viewer) DrawCount() uint64 {
	return v.drawCount
}
