// Command gen renders the cube in a hidden window, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/colorcube"
	"github.com/go-theft-auto/colorcube/backend/opengl"
	"github.com/go-theft-auto/colorcube/config"
	"github.com/go-theft-auto/colorcube/shaders"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	camera colorcube.Camera
}

func run() error {
	cfg := config.Default()

	if err := opengl.Init(); err != nil {
		return err
	}
	defer opengl.Terminate()

	window, err := opengl.NewWindow(opengl.WindowConfig{
		Title:  "screenshot-gen",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Hidden: true,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	src, err := shaders.Load(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	// The hidden window keeps its framebuffer; no resize is needed between shots.
	width, height := window.FramebufferSize()

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(src, s, width, height, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, width, height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(src shaders.Sources, s screenshot, width, height int, outDir string) error {
	// Fresh renderer per screenshot so buffers and state do not leak between captures.
	renderer, err := opengl.NewRenderer(src, slog.Default())
	if err != nil {
		return err
	}
	defer renderer.Delete()
	renderer.Resize(width, height)

	viewer, err := colorcube.New(renderer, colorcube.WithCamera(s.camera))
	if err != nil {
		return err
	}
	if err := viewer.Init(); err != nil {
		return err
	}
	if err := viewer.Draw(); err != nil {
		return err
	}

	img, err := opengl.ReadFramebuffer(width, height)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of captures to generate.
func buildScreenshots() []screenshot {
	ortho := colorcube.DefaultCamera()
	ortho.Mode = colorcube.Orthographic
	ortho.Near = 0

	return []screenshot{
		{name: "cube", camera: colorcube.DefaultCamera()},
		{name: "cube_orthographic", camera: ortho},
	}
}
