// Command colorcube opens a window and draws a cube with one color per vertex.
//
// Usage:
//
//	devbox shell
//	go run ./cmd/colorcube/
//
// Settings can be overridden with a TOML file:
//
//	COLORCUBE_CONFIG=cube.toml go run ./cmd/colorcube/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/colorcube"
	"github.com/go-theft-auto/colorcube/backend/opengl"
	"github.com/go-theft-auto/colorcube/config"
	"github.com/go-theft-auto/colorcube/shaders"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := opengl.Init(); err != nil {
		return err
	}
	defer opengl.Terminate()

	window, err := opengl.NewWindow(opengl.WindowConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		X:      cfg.Window.X,
		Y:      cfg.Window.Y,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	// Shaders can only be compiled once a context is current.
	src, err := shaders.Load(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}
	renderer, err := opengl.NewRenderer(src, logger)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	renderer.Resize(window.FramebufferSize())
	window.OnResize(renderer.Resize)

	camera, err := cfg.Camera.ColorCube()
	if err != nil {
		return err
	}
	background, err := cfg.ClearRGBA()
	if err != nil {
		return err
	}
	viewer, err := colorcube.New(renderer,
		colorcube.WithCamera(camera),
		colorcube.WithClearColor(background),
	)
	if err != nil {
		return err
	}
	if err := viewer.Init(); err != nil {
		return err
	}
	logger.Info("rendering", "title", cfg.Window.Title, "projection", cfg.Camera.Projection)

	if err := window.Run(viewer.Draw); err != nil {
		return err
	}
	logger.Debug("window closed", "frames", viewer.DrawCount())
	return nil
}
