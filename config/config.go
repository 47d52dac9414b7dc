// Package config holds the startup settings of the cube viewer.
//
// Every value has a built-in default; a TOML file can override any subset:
//
//	log_level = "debug"
//	clear_color = [0.0, 0.0, 0.4, 1.0]
//
//	[window]
//	title = "cube"
//	width = 800
//	height = 600
//
//	[camera]
//	projection = "orthographic"
//	eye = [4.0, 3.0, -3.0]
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/colorcube"
	"github.com/go-theft-auto/colorcube/shaders"
)

// EnvVar names the environment variable holding an optional config path.
const EnvVar = "COLORCUBE_CONFIG"

// Config is the full set of startup settings.
type Config struct {
	LogLevel   string    `toml:"log_level"`
	ClearColor []float32 `toml:"clear_color"`
	Window     Window    `toml:"window"`
	Shaders    Shaders   `toml:"shaders"`
	Camera     Camera    `toml:"camera"`
}

// Window configures the OS window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
}

// Shaders locates the shader source files.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// Camera configures the fixed viewpoint.
type Camera struct {
	Projection  string    `toml:"projection"`
	FOV         float32   `toml:"fov"`
	Aspect      float32   `toml:"aspect"`
	OrthoExtent float32   `toml:"ortho_extent"`
	Near        float32   `toml:"near"`
	Far         float32   `toml:"far"`
	Eye         []float32 `toml:"eye"`
	Target      []float32 `toml:"target"`
	Up          []float32 `toml:"up"`
}

// Default returns the built-in configuration.
func Default() Config {
	cam := colorcube.DefaultCamera()
	return Config{
		LogLevel:   "info",
		ClearColor: floats(colorcube.DefaultClearColor[:]),
		Window: Window{
			Title:  "Tutorial 05 - Adding Transformation to Triangle",
			Width:  400,
			Height: 300,
			X:      300,
			Y:      300,
		},
		Shaders: Shaders{
			Vertex:   shaders.DefaultVertexPath,
			Fragment: shaders.DefaultFragmentPath,
		},
		Camera: Camera{
			Projection:  cam.Mode.String(),
			FOV:         cam.FOV,
			Aspect:      cam.Aspect,
			OrthoExtent: cam.OrthoExtent,
			Near:        cam.Near,
			Far:         cam.Far,
			Eye:         floats(cam.Eye[:]),
			Target:      floats(cam.Target[:]),
			Up:          floats(cam.Up[:]),
		},
	}
}

func floats(v []float32) []float32 {
	return append([]float32(nil), v...)
}

// Load reads path over the defaults and validates the result.
// Keys missing from the file keep their default value; unknown keys fail.
func Load(path string) (Config, error) {
	cfg := Default()
	def := cfg
	// Arrays are decoded into empty slices so a short array in the file
	// cannot be topped up with default elements.
	cfg.ClearColor, cfg.Camera.Eye, cfg.Camera.Target, cfg.Camera.Up = nil, nil, nil, nil

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.fillUnset(def)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// fillUnset copies array settings the file did not mention from def.
func (c *Config) fillUnset(def Config) {
	if c.ClearColor == nil {
		c.ClearColor = def.ClearColor
	}
	if c.Camera.Eye == nil {
		c.Camera.Eye = def.Camera.Eye
	}
	if c.Camera.Target == nil {
		c.Camera.Target = def.Camera.Target
	}
	if c.Camera.Up == nil {
		c.Camera.Up = def.Camera.Up
	}
}

// FromEnv loads the file named by EnvVar, or returns Default when it is unset.
func FromEnv() (Config, error) {
	path := strings.TrimSpace(os.Getenv(EnvVar))
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("both shader paths are required"))
	}
	if len(c.ClearColor) != 4 {
		errs = append(errs, fmt.Errorf("clear_color has %d elements, want 4 (r, g, b, a)", len(c.ClearColor)))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %g is outside 0..1", i, v))
		}
	}
	if err := c.Camera.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

func (c Camera) validate() error {
	mode, err := c.mode()
	if err != nil {
		return err
	}
	if c.Far <= c.Near {
		return fmt.Errorf("camera far %g must exceed near %g", c.Far, c.Near)
	}
	switch mode {
	case colorcube.Perspective:
		if c.Near <= 0 {
			return fmt.Errorf("camera near %g must be positive", c.Near)
		}
		if c.FOV <= 0 || c.FOV >= 180 {
			return fmt.Errorf("camera fov %g must be between 0 and 180 degrees", c.FOV)
		}
		if c.Aspect <= 0 {
			return fmt.Errorf("camera aspect %g must be positive", c.Aspect)
		}
	case colorcube.Orthographic:
		if c.OrthoExtent <= 0 {
			return fmt.Errorf("camera ortho_extent %g must be positive", c.OrthoExtent)
		}
	}
	eye, target, up, err := c.vectors()
	if err != nil {
		return err
	}
	if eye.ApproxEqual(target) {
		return errors.New("camera eye and target must differ")
	}
	if up.Len() == 0 {
		return errors.New("camera up must be non-zero")
	}
	// LookAt degenerates when up is parallel to the view direction.
	if up.Normalize().Cross(target.Sub(eye).Normalize()).Len() < 1e-6 {
		return fmt.Errorf("camera up %v is parallel to the view direction", c.Up)
	}
	return nil
}

func (c Camera) vectors() (eye, target, up mgl32.Vec3, err error) {
	if eye, err = vec3("eye", c.Eye); err != nil {
		return
	}
	if target, err = vec3("target", c.Target); err != nil {
		return
	}
	up, err = vec3("up", c.Up)
	return
}

func vec3(name string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("camera %s has %d elements, want 3 (x, y, z)", name, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

func (c Camera) mode() (colorcube.ProjectionMode, error) {
	switch strings.ToLower(c.Projection) {
	case "", "perspective":
		return colorcube.Perspective, nil
	case "orthographic", "ortho":
		return colorcube.Orthographic, nil
	default:
		return 0, fmt.Errorf("unknown camera projection %q", c.Projection)
	}
}

// ColorCube converts the settings into a colorcube.Camera.
func (c Camera) ColorCube() (colorcube.Camera, error) {
	if err := c.validate(); err != nil {
		return colorcube.Camera{}, err
	}
	mode, err := c.mode()
	if err != nil {
		return colorcube.Camera{}, err
	}
	eye, target, up, err := c.vectors()
	if err != nil {
		return colorcube.Camera{}, err
	}
	return colorcube.Camera{
		Mode:        mode,
		FOV:         c.FOV,
		Aspect:      c.Aspect,
		OrthoExtent: c.OrthoExtent,
		Near:        c.Near,
		Far:         c.Far,
		Eye:         eye,
		Target:      target,
		Up:          up,
	}, nil
}

// ClearRGBA returns the clear color as an RGBA array.
func (c Config) ClearRGBA() ([4]float32, error) {
	var rgba [4]float32
	if len(c.ClearColor) != len(rgba) {
		return rgba, fmt.Errorf("clear_color has %d elements, want 4 (r, g, b, a)", len(c.ClearColor))
	}
	copy(rgba[:], c.ClearColor)
	return rgba, nil
}
