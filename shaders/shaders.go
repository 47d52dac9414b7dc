// Package shaders loads GLSL source files for the cube program.
package shaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default file locations, relative to the working directory.
var (
	DefaultVertexPath   = filepath.Join("shaders", "SimpleVertexShader.vertexshader")
	DefaultFragmentPath = filepath.Join("shaders", "SimpleFragmentShader.fragmentshader")
)

// MVPUniform is the name of the matrix uniform the vertex shader declares.
const MVPUniform = "MVP"

// Sources is a vertex and fragment shader pair.
// Both strings are NUL-terminated, as the GL binding expects.
type Sources struct {
	Vertex   string
	Fragment string
}

// Load reads both shader files.
func Load(vertexPath, fragmentPath string) (Sources, error) {
	vs, err := readSource(vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := readSource(fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("fragment shader: %w", err)
	}
	return Sources{Vertex: vs, Fragment: fs}, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src := string(data)
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%s: empty shader source", path)
	}
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	return src, nil
}
