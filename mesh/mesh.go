package mesh

import (
	"github.com/richinsley/gocuboid/matrix"
)

// ErrInvalidArgument is matrix.ErrInvalidArgument so errors.Is works across
// both packages.
var ErrInvalidArgument = matrix.ErrInvalidArgument

// Vertex matches the shader input layout:
//
//	location 0 vPosition: vec3
//	location 1 vColor:    vec3
//
// Flattened as float32, position first, tightly packed.
type Vertex struct {
	Position matrix.Vec3
	Color    matrix.Vec3
}

const (
	FloatsPerVertex = 6
	PositionOffset  = 0
	ColorOffset     = 3

	// Byte sizes for glVertexAttribPointer.
	Stride             = FloatsPerVertex * 4
	PositionByteOffset = PositionOffset * 4
	ColorByteOffset    = ColorOffset * 4

	PositionLocation = 0
	ColorLocation    = 1
)

// RestartIndex terminates one strip and starts the next inside a single index
// buffer. It is GL's fixed primitive restart index for 32-bit indices.
const RestartIndex uint32 = 0xFFFFFFFF

// Flatten interleaves position and color per vertex.
func Flatten(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		data = append(data,
			float32(v.Position[0]), float32(v.Position[1]), float32(v.Position[2]),
			float32(v.Color[0]), float32(v.Color[1]), float32(v.Color[2]),
		)
	}
	return data
}
