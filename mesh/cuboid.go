package mesh

import (
	"fmt"
	"math"

	"github.com/richinsley/gocuboid/matrix"
)

// CuboidMesh holds the 8 corners of a box and a triangle strip over them.
type CuboidMesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// cuboidStrip walks all six faces with one strip:
//
//	0 1 2 3  front
//	7        right, lower front half
//	1 5      bottom
//	0 4      left
//	2 6      top
//	7        right, upper back half
//	4 5      back
var cuboidStrip = [...]uint32{0, 1, 2, 3, 7, 1, 5, 0, 4, 2, 6, 7, 4, 5}

// CuboidVertices returns the corners of a width×height×depth box centered on
// the origin, all with the same color.
//
// Front face (z = +depth/2) is 0 top-left, 1 bottom-left, 2 top-right,
// 3 bottom-right; the back face repeats that order as 4..7.
func CuboidVertices(width, height, depth float64, color matrix.Vec3) ([]Vertex, error) {
	for _, d := range []struct {
		name  string
		value float64
	}{{"width", width}, {"height", height}, {"depth", depth}} {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			return nil, fmt.Errorf("cuboid: %s %v must be positive and finite: %w", d.name, d.value, ErrInvalidArgument)
		}
	}

	w, h, d := width/2, height/2, depth/2
	corners := [8]matrix.Vec3{
		{-w, +h, +d},
		{-w, -h, +d},
		{+w, +h, +d},
		{+w, -h, +d},
		{-w, +h, -d},
		{-w, -h, -d},
		{+w, +h, -d},
		{+w, -h, -d},
	}

	vertices := make([]Vertex, len(corners))
	for i, p := range corners {
		vertices[i] = Vertex{Position: p, Color: color}
	}
	return vertices, nil
}

// CuboidStripIndices returns a fresh copy of the strip over CuboidVertices.
// It never contains RestartIndex.
func CuboidStripIndices() []uint32 {
	indices := make([]uint32, len(cuboidStrip))
	copy(indices, cuboidStrip[:])
	return indices
}

func Cuboid(width, height, depth float64, color matrix.Vec3) (CuboidMesh, error) {
	vertices, err := CuboidVertices(width, height, depth, color)
	if err != nil {
		return CuboidMesh{}, err
	}
	return CuboidMesh{
		Vertices: vertices,
		Indices:  CuboidStripIndices(),
	}, nil
}

// VertexData returns the interleaved vertex buffer, 48 floats for one cuboid.
func (m CuboidMesh) VertexData() []float32 {
	return Flatten(m.Vertices)
}

// IndexData returns a copy of the index buffer.
func (m CuboidMesh) IndexData() []uint32 {
	indices := make([]uint32, len(m.Indices))
	copy(indices, m.Indices)
	return indices
}
