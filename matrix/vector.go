package matrix

import (
	"fmt"
	"math"
)

// Vec3 is a point, direction or RGB color.
type Vec3 [3]float64

// Vec4 is a homogeneous point (x, y, z, w).
type Vec4 [4]float64

func (v Vec3) String() string {
	return fmt.Sprintf("%5.2f %5.2f %5.2f", v[0], v[1], v[2])
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// http://en.wikipedia.org/wiki/Cross_product
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	return Normalize(v)
}

func (v Vec3) Equals(o Vec3, tolerance float64) bool {
	return NearlyEqual(v[0], o[0], tolerance) &&
		NearlyEqual(v[1], o[1], tolerance) &&
		NearlyEqual(v[2], o[2], tolerance)
}

// Homogeneous returns (x, y, z, 1).
func (v Vec3) Homogeneous() Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// Normalize returns v scaled to unit length. A zero-length vector is returned
// unchanged; callers that cannot tolerate that must check the length themselves.
func Normalize(v Vec3) Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func (v Vec4) String() string {
	return fmt.Sprintf("%5.2f %5.2f %5.2f %5.2f", v[0], v[1], v[2], v[3])
}

// Perspective divides x, y and z by w.
func (v Vec4) Perspective() Vec3 {
	return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}

func (v Vec4) Equals(o Vec4, tolerance float64) bool {
	for i := range v {
		if !NearlyEqual(v[i], o[i], tolerance) {
			return false
		}
	}
	return true
}

// NearlyEqual compares a and b with an absolute tolerance near zero and a
// relative one for large magnitudes.
func NearlyEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tolerance*scale
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
