package colorcube

import "fmt"

// Vertex layout of the cube mesh.
const (
	// PositionComponents is the number of floats per vertex position (x, y, z).
	PositionComponents = 3
	// ColorComponents is the number of floats per vertex color (r, g, b, a).
	ColorComponents = 4
	// CubeVertexCount is 6 faces * 2 triangles * 3 vertices.
	CubeVertexCount = 6 * 2 * 3
)

// Attribute slots the shader program binds the mesh buffers to.
const (
	PositionAttrib uint32 = 0
	ColorAttrib    uint32 = 1
)

// cubePositions holds 3 consecutive vertices per triangle, 12 triangles.
var cubePositions = [CubeVertexCount * PositionComponents]float32{
	-1.0, -1.0, -1.0, // triangle 1 : begin
	-1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0, // triangle 1 : end
	1.0, 1.0, -1.0, // triangle 2 : begin
	-1.0, -1.0, -1.0,
	-1.0, 1.0, -1.0, // triangle 2 : end
	1.0, -1.0, 1.0,
	-1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,
	-1.0, -1.0, -1.0,
	-1.0, -1.0, -1.0,
	-1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
	1.0, -1.0, 1.0,
	-1.0, -1.0, 1.0,
	-1.0, -1.0, -1.0,
	-1.0, 1.0, 1.0,
	-1.0, -1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, -1.0,
	-1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,
}

// cubeColors holds one RGBA color per entry of cubePositions, same order.
var cubeColors = [CubeVertexCount * ColorComponents]float32{
	0.583, 0.771, 0.014, 1.0,
	0.609, 0.115, 0.436, 1.0,
	0.327, 0.483, 0.844, 1.0,
	0.822, 0.569, 0.201, 1.0,
	0.435, 0.602, 0.223, 1.0,
	0.310, 0.747, 0.185, 1.0,
	0.597, 0.770, 0.761, 1.0,
	0.559, 0.436, 0.730, 1.0,
	0.359, 0.583, 0.152, 1.0,
	0.483, 0.596, 0.789, 1.0,
	0.559, 0.861, 0.639, 1.0,
	0.195, 0.548, 0.859, 1.0,
	0.014, 0.184, 0.576, 1.0,
	0.771, 0.328, 0.970, 1.0,
	0.406, 0.615, 0.116, 1.0,
	0.676, 0.977, 0.133, 1.0,
	0.971, 0.572, 0.833, 1.0,
	0.140, 0.616, 0.489, 1.0,
	0.997, 0.513, 0.064, 1.0,
	0.945, 0.719, 0.592, 1.0,
	0.543, 0.021, 0.978, 1.0,
	0.279, 0.317, 0.505, 1.0,
	0.167, 0.620, 0.077, 1.0,
	0.347, 0.857, 0.137, 1.0,
	0.055, 0.953, 0.042, 1.0,
	0.714, 0.505, 0.345, 1.0,
	0.783, 0.290, 0.734, 1.0,
	0.722, 0.645, 0.174, 1.0,
	0.302, 0.455, 0.848, 1.0,
	0.225, 0.587, 0.040, 1.0,
	0.517, 0.713, 0.338, 1.0,
	0.053, 0.959, 0.120, 1.0,
	0.393, 0.621, 0.362, 1.0,
	0.673, 0.211, 0.457, 1.0,
	0.820, 0.883, 0.371, 1.0,
	0.982, 0.099, 0.879, 1.0,
}

// Mesh is non-indexed triangle data split into two parallel arrays.
// Vertex i is Positions[3i:3i+3] colored by Colors[4i:4i+4].
type Mesh struct {
	Positions []float32
	Colors    []float32
}

// CubeMesh returns a fresh copy of the colored cube.
// Callers may modify the result without affecting later calls.
func CubeMesh() Mesh {
	m := Mesh{
		Positions: make([]float32, len(cubePositions)),
		Colors:    make([]float32, len(cubeColors)),
	}
	copy(m.Positions, cubePositions[:])
	copy(m.Colors, cubeColors[:])
	return m
}

// VertexCount returns the number of vertices described by the position array.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / PositionComponents
}

// Validate reports whether positions and colors describe the same vertices
// and form whole triangles.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("%w: no positions", ErrMisalignedMesh)
	}
	if len(m.Positions)%PositionComponents != 0 {
		return fmt.Errorf("%w: %d position floats is not a multiple of %d",
			ErrMisalignedMesh, len(m.Positions), PositionComponents)
	}
	if len(m.Colors)%ColorComponents != 0 {
		return fmt.Errorf("%w: %d color floats is not a multiple of %d",
			ErrMisalignedMesh, len(m.Colors), ColorComponents)
	}
	nPos := len(m.Positions) / PositionComponents
	nCol := len(m.Colors) / ColorComponents
	if nPos != nCol {
		return fmt.Errorf("%w: %d positions, %d colors", ErrMisalignedMesh, nPos, nCol)
	}
	if nPos%3 != 0 {
		return fmt.Errorf("%w: %d vertices is not a whole number of triangles", ErrMisalignedMesh, nPos)
	}
	return nil
}
