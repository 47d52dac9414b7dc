package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window to open.
type WindowConfig struct {
	Title         string
	Width, Height int
	X, Y          int
	Hidden        bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	window *glfw.Window
}

// Init initializes GLFW. Call it from the main goroutine with the OS thread
// locked, and call glfw.Terminate when done.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// Terminate releases GLFW.
func Terminate() {
	glfw.Terminate()
}

// NewWindow opens a double-buffered RGBA window with a depth buffer, makes
// its context current and loads the GL function pointers.
func NewWindow(cfg WindowConfig) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	// Shown after positioning, so the window does not jump.
	glfw.WindowHint(glfw.Visible, glfw.False)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.SetPos(cfg.X, cfg.Y)
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if !cfg.Hidden {
		w.Show()
	}
	return &Window{window: w}, nil
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// OnResize registers fn to be called with the new framebuffer size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Run draws once and then again every time the window needs repainting,
// until the window is closed. The first draw error stops the loop and is
// returned.
func (w *Window) Run(draw func() error) error {
	var drawErr error
	redraw := func() {
		if drawErr != nil {
			return
		}
		if err := draw(); err != nil {
			drawErr = err
			w.window.SetShouldClose(true)
			return
		}
		w.window.SwapBuffers()
	}

	w.window.SetRefreshCallback(func(*glfw.Window) { redraw() })
	redraw()

	for !w.window.ShouldClose() {
		glfw.WaitEvents()
	}
	return drawErr
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.window.Destroy()
}
