package matrix

import (
	"fmt"
	"math"
)

// Perspective builds a symmetric projection that maps eye-space depth -near to
// -1 and -far to +1 after the perspective divide.
func Perspective(fovDegrees, aspect, near, far float64) (Mat4, error) {
	if err := checkProjection(fovDegrees, aspect, near, far); err != nil {
		return Mat4{}, fmt.Errorf("perspective: %w", err)
	}

	d := 1 / math.Tan(DegToRad(fovDegrees)/2)
	b := (far + near) / (near - far)
	c := 2 * far * near / (near - far)

	return Mat4{
		d / aspect, 0, 0, 0,
		0, d, 0, 0,
		0, 0, b, c,
		0, 0, -1, 0,
	}, nil
}

// PerspectiveFrustum derives the near-plane rectangle from the field of view
// and builds it with Frustum. It matches Perspective for the same inputs.
func PerspectiveFrustum(fovDegrees, aspect, near, far float64) (Mat4, error) {
	if err := checkProjection(fovDegrees, aspect, near, far); err != nil {
		return Mat4{}, fmt.Errorf("perspective frustum: %w", err)
	}

	top := math.Tan(DegToRad(fovDegrees)/2) * near
	right := top * aspect
	return Frustum(-right, right, -top, top, near, far)
}

// Frustum builds an off-axis projection from the near-plane rectangle.
func Frustum(left, right, bottom, top, near, far float64) (Mat4, error) {
	switch {
	case !finite(left, right, bottom, top, near, far):
		return Mat4{}, fmt.Errorf("frustum: non-finite extent: %w", ErrInvalidArgument)
	case near <= 0 || far <= 0:
		return Mat4{}, fmt.Errorf("frustum: near %v, far %v must be positive: %w", near, far, ErrInvalidArgument)
	case near == far:
		return Mat4{}, fmt.Errorf("frustum: near equals far (%v): %w", near, ErrInvalidArgument)
	case left == right:
		return Mat4{}, fmt.Errorf("frustum: left equals right (%v): %w", left, ErrInvalidArgument)
	case bottom == top:
		return Mat4{}, fmt.Errorf("frustum: bottom equals top (%v): %w", bottom, ErrInvalidArgument)
	}

	return Mat4{
		2 * near / (right - left), 0, (right + left) / (right - left), 0,
		0, 2 * near / (top - bottom), (top + bottom) / (top - bottom), 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}, nil
}

func checkProjection(fovDegrees, aspect, near, far float64) error {
	switch {
	case !finite(fovDegrees, aspect, near, far):
		return fmt.Errorf("non-finite argument: %w", ErrInvalidArgument)
	case fovDegrees <= 0 || fovDegrees >= 180:
		return fmt.Errorf("field of view %v outside (0, 180): %w", fovDegrees, ErrInvalidArgument)
	case aspect <= 0:
		return fmt.Errorf("aspect ratio %v must be positive: %w", aspect, ErrInvalidArgument)
	case near <= 0 || far <= 0:
		return fmt.Errorf("near %v, far %v must be positive: %w", near, far, ErrInvalidArgument)
	case near == far:
		return fmt.Errorf("near equals far (%v): %w", near, ErrInvalidArgument)
	}
	return nil
}

// axisEpsilon is the length below which a derived camera axis counts as zero.
const axisEpsilon = 1e-12

// LookAt builds a view matrix that moves eye to the origin and looks down -z
// towards target.
func LookAt(eye, target, worldUp Vec3) (Mat4, error) {
	if !finite(eye[0], eye[1], eye[2], target[0], target[1], target[2], worldUp[0], worldUp[1], worldUp[2]) {
		return Mat4{}, fmt.Errorf("look at: non-finite argument: %w", ErrInvalidArgument)
	}

	forward := eye.Sub(target)
	if forward.Length() < axisEpsilon {
		return Mat4{}, fmt.Errorf("look at: eye %v coincides with target: %w", eye, ErrDegenerateConfiguration)
	}
	zAxis := Normalize(forward)

	right := worldUp.Cross(zAxis)
	if right.Length() < axisEpsilon {
		return Mat4{}, fmt.Errorf("look at: up %v is parallel to the view direction: %w", worldUp, ErrDegenerateConfiguration)
	}
	xAxis := Normalize(right)
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		xAxis[0], xAxis[1], xAxis[2], -xAxis.Dot(eye),
		yAxis[0], yAxis[1], yAxis[2], -yAxis.Dot(eye),
		zAxis[0], zAxis[1], zAxis[2], -zAxis.Dot(eye),
		0, 0, 0, 1,
	}, nil
}

// LookAtDefault is LookAt with +y as world up.
func LookAtDefault(eye, target Vec3) (Mat4, error) {
	return LookAt(eye, target, Vec3{0, 1, 0})
}
