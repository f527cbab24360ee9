package matrix

import (
	"fmt"
	"math"
)

/*
Mat4 stores its entries in row-major logical order and multiplies column
vectors on the right (M·v). Translation lives in the last column.

	+-          -+   +-          -+
	|  0  1  2  3|   | 1  0  0  x |
	|  4  5  6  7|   | 0  1  0  y |
	|  8  9 10 11|   | 0  0  1  z |
	| 12 13 14 15|   | 0  0  0  1 |
	+-          -+   +-          -+

GL expects column-major storage: upload RowMajor() with transpose set, or
ColumnMajor() without it.
*/
type Mat4 [16]float64

func (m Mat4) String() string {
	r := ""
	for i, n := range m {
		if i > 0 && i%4 == 0 {
			r += "\n"
		}
		r += fmt.Sprintf("%8.3f ", n)
	}
	return r
}

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation maps (x, y, z, 1) to (x+dx, y+dy, z+dz, 1).
func Translation(dx, dy, dz float64) Mat4 {
	m := Identity()
	m[3] = dx
	m[7] = dy
	m[11] = dz
	return m
}

func (m Mat4) At(row, col int) float64 {
	return m[row*4+col]
}

func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

func (m Mat4) Col(i int) Vec4 {
	return Vec4{m[i], m[4+i], m[8+i], m[12+i]}
}

// Mul returns m·o, so o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = m[row*4+0]*o[0*4+col] +
				m[row*4+1]*o[1*4+col] +
				m[row*4+2]*o[2*4+col] +
				m[row*4+3]*o[3*4+col]
		}
	}
	return r
}

func (m Mat4) Transform(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Inverse uses Gauss-Jordan elimination with partial pivoting.
func (m Mat4) Inverse() (Mat4, error) {
	a := m
	inv := Identity()

	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row*4+col]) > math.Abs(a[pivot*4+col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot*4+col]) < 1e-12 {
			return Mat4{}, fmt.Errorf("inverse: singular matrix: %w", ErrInvalidArgument)
		}
		if pivot != col {
			for k := 0; k < 4; k++ {
				a[col*4+k], a[pivot*4+k] = a[pivot*4+k], a[col*4+k]
				inv[col*4+k], inv[pivot*4+k] = inv[pivot*4+k], inv[col*4+k]
			}
		}

		p := a[col*4+col]
		for k := 0; k < 4; k++ {
			a[col*4+k] /= p
			inv[col*4+k] /= p
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			f := a[row*4+col]
			if f == 0 {
				continue
			}
			for k := 0; k < 4; k++ {
				a[row*4+k] -= f * a[col*4+k]
				inv[row*4+k] -= f * inv[col*4+k]
			}
		}
	}

	return inv, nil
}

func (m Mat4) Equals(o Mat4, tolerance float64) bool {
	for i := range m {
		if !NearlyEqual(m[i], o[i], tolerance) {
			return false
		}
	}
	return true
}

// RowMajor returns the entries as float32 in storage order. Upload with the
// transpose flag set.
func (m Mat4) RowMajor() [16]float32 {
	r := [16]float32{}
	for i := range r {
		r[i] = float32(m[i])
	}
	return r
}

// ColumnMajor returns the entries as float32 in GL's native order.
func (m Mat4) ColumnMajor() [16]float32 {
	return m.Transpose().RowMajor()
}
