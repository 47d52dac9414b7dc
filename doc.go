/*
Package colorcube renders a single colored cube with a fixed camera.

# Overview

The package holds the scene: a hard-coded cube of 12 triangles, one RGBA color
per vertex, and a model-view-projection matrix computed once at startup. It
does not talk to OpenGL directly. A Renderer (see backend/opengl) receives the
mesh once through Upload and then one Frame per display callback.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(sources, logger)
	viewer, _ := colorcube.New(renderer)
	if err := viewer.Init(); err != nil {
	    return err
	}

	// Display callback
	window.Run(viewer.Draw)

# Geometry

The cube spans -1..1 on every axis. Positions and colors are separate arrays
joined by index: vertex i is Positions[3i:3i+3] with color Colors[4i:4i+4].

	PositionAttrib   slot 0, 3 floats per vertex
	ColorAttrib      slot 1, 4 floats per vertex
	CubeVertexCount  36

# Camera

DefaultCamera sits at (4, 3, -3), looks at the origin with +Y up, and uses a
45 degree vertical field of view at 4:3 with clip planes 0.1 and 100.
Orthographic mode maps a 20x20 unit box instead.

The combined matrix is Projection * View * Model. Matrices are mgl32.Mat4
values in column-major order, ready for glUniformMatrix4fv without transposing.
*/
package colorcube
