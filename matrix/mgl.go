package matrix

import "github.com/go-gl/mathgl/mgl32"

// MGL converts m to mathgl's column-major layout.
func (m Mat4) MGL() mgl32.Mat4 {
	return mgl32.Mat4(m.ColumnMajor())
}

func FromMGL(m mgl32.Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = float64(m.At(row, col))
		}
	}
	return r
}

func (v Vec3) MGL() mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func FromMGLVec3(v mgl32.Vec3) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
