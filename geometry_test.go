package colorcube_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/colorcube"
)

func TestCubeMeshCounts(t *testing.T) {
	m := colorcube.CubeMesh()

	assert.Len(t, m.Positions, 108)
	assert.Len(t, m.Colors, 144)
	assert.Equal(t, 36, m.VertexCount())
	assert.Equal(t, colorcube.CubeVertexCount, m.VertexCount())
	require.NoError(t, m.Validate())
}

func TestCubeMeshValues(t *testing.T) {
	m := colorcube.CubeMesh()

	for i, v := range m.Positions {
		if v != 1 && v != -1 {
			t.Fatalf("position %d = %v, want ±1", i, v)
		}
	}
	for i := 0; i < len(m.Colors); i += colorcube.ColorComponents {
		for c := 0; c < 3; c++ {
			v := m.Colors[i+c]
			assert.True(t, v >= 0 && v <= 1, "color %d channel %d = %v", i/4, c, v)
		}
		assert.Equal(t, float32(1), m.Colors[i+3], "vertex %d must be opaque", i/4)
	}

	// First and last entries of the hard-coded tables.
	assert.Equal(t, []float32{-1, -1, -1}, m.Positions[:3])
	assert.Equal(t, []float32{1, -1, 1}, m.Positions[105:])
	assert.Equal(t, []float32{0.583, 0.771, 0.014, 1}, m.Colors[:4])
	assert.Equal(t, []float32{0.982, 0.099, 0.879, 1}, m.Colors[140:])
}

func TestCubeMeshCoversAllCorners(t *testing.T) {
	m := colorcube.CubeMesh()

	corners := make(map[[3]float32]int)
	for i := 0; i < len(m.Positions); i += 3 {
		corners[[3]float32{m.Positions[i], m.Positions[i+1], m.Positions[i+2]}]++
	}
	assert.Len(t, corners, 8)
}

func TestCubeMeshTrianglesNotDegenerate(t *testing.T) {
	m := colorcube.CubeMesh()

	vertex := func(i int) [3]float32 {
		return [3]float32{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
	}
	for tri := 0; tri < m.VertexCount()/3; tri++ {
		a, b, c := vertex(3*tri), vertex(3*tri+1), vertex(3*tri+2)
		if a == b || b == c || a == c {
			t.Errorf("triangle %d repeats a vertex: %v %v %v", tri, a, b, c)
		}
	}
}

func TestCubeMeshIsACopy(t *testing.T) {
	first := colorcube.CubeMesh()
	first.Positions[0] = 42
	first.Colors[0] = 42

	second := colorcube.CubeMesh()
	assert.Equal(t, float32(-1), second.Positions[0])
	assert.Equal(t, float32(0.583), second.Colors[0])
}

func TestCubeMeshDeterministic(t *testing.T) {
	assert.Equal(t, colorcube.CubeMesh(), colorcube.CubeMesh())
}

func TestMeshValidate(t *testing.T) {
	cube := colorcube.CubeMesh()

	tests := []struct {
		name string
		mesh colorcube.Mesh
	}{
		{"empty", colorcube.Mesh{}},
		{"partial position", colorcube.Mesh{Positions: cube.Positions[:107], Colors: cube.Colors}},
		{"partial color", colorcube.Mesh{Positions: cube.Positions, Colors: cube.Colors[:143]}},
		{"missing colors", colorcube.Mesh{Positions: cube.Positions, Colors: cube.Colors[:140]}},
		{"missing positions", colorcube.Mesh{Positions: cube.Positions[:105], Colors: cube.Colors}},
		{"not whole triangles", colorcube.Mesh{Positions: cube.Positions[:6], Colors: cube.Colors[:8]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, colorcube.ErrMisalignedMesh), "got %v", err)
		})
	}
}
