package matrix

import (
	"errors"
	"math"
	"testing"
)

func TestPerspective(t *testing.T) {
	near, far := 0.1, 1000.0
	d := 1 / math.Tan(math.Pi/6)
	b := (far + near) / (near - far)
	c := 2 * far * near / (near - far)

	expected := Mat4{
		d, 0, 0, 0,
		0, d, 0, 0,
		0, 0, b, c,
		0, 0, -1, 0,
	}

	m, err := Perspective(60, 1, near, far)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}
	if !m.Equals(expected, 1e-12) {
		t.Errorf("Perspective(60, 1, 0.1, 1000) != \n%v (got \n%v)", expected, m)
	}
}

func TestPerspective_Aspect(t *testing.T) {
	m, err := Perspective(90, 2, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !NearlyEqual(m.At(0, 0), 0.5, 1e-12) || !NearlyEqual(m.At(1, 1), 1, 1e-12) {
		t.Errorf("aspect not applied to x scale:\n%v", m)
	}
}

func TestPerspective_DepthBoundary(t *testing.T) {
	tests := []struct {
		Fov, Aspect, Near, Far float64
	}{
		{60, 1, 0.1, 1000},
		{45, 16.0 / 9, 0.5, 50},
		{90, 0.75, 2, 3},
	}

	for _, c := range tests {
		m, err := Perspective(c.Fov, c.Aspect, c.Near, c.Far)
		if err != nil {
			t.Errorf("Perspective(%v): %v", c, err)
			continue
		}

		if z := m.Transform(Vec4{0, 0, -c.Near, 1}).Perspective()[2]; !NearlyEqual(z, -1, 1e-9) {
			t.Errorf("Perspective(%v): near plane depth = %v, want -1", c, z)
		}
		if z := m.Transform(Vec4{0, 0, -c.Far, 1}).Perspective()[2]; !NearlyEqual(z, 1, 1e-9) {
			t.Errorf("Perspective(%v): far plane depth = %v, want 1", c, z)
		}

		// the top edge of the near plane lands on y = 1
		top := math.Tan(DegToRad(c.Fov)/2) * c.Near
		if y := m.Transform(Vec4{0, top, -c.Near, 1}).Perspective()[1]; !NearlyEqual(y, 1, 1e-9) {
			t.Errorf("Perspective(%v): top edge y = %v, want 1", c, y)
		}
	}
}

func TestPerspective_InvalidArgument(t *testing.T) {
	tests := []struct {
		Fov, Aspect, Near, Far float64
	}{
		{60, 1, 0, 1000},
		{60, 1, -0.1, 1000},
		{60, 1, 0.1, 0},
		{60, 1, 0.1, -5},
		{60, 1, 5, 5},
		{60, 0, 0.1, 1000},
		{60, -1, 0.1, 1000},
		{0, 1, 0.1, 1000},
		{180, 1, 0.1, 1000},
		{math.NaN(), 1, 0.1, 1000},
		{60, 1, 0.1, math.Inf(1)},
	}

	for _, c := range tests {
		m, err := Perspective(c.Fov, c.Aspect, c.Near, c.Far)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Perspective(%v) error = %v, want ErrInvalidArgument", c, err)
		}
		if m != (Mat4{}) {
			t.Errorf("Perspective(%v) returned a partial matrix:\n%v", c, m)
		}
	}
}

func TestFrustum_MatchesPerspective(t *testing.T) {
	tests := []struct {
		Fov, Aspect, Near, Far float64
	}{
		{60, 1, 0.1, 1000},
		{45, 4.0 / 3, 1, 100},
		{100, 0.5, 0.01, 10},
	}

	for _, c := range tests {
		p, err := Perspective(c.Fov, c.Aspect, c.Near, c.Far)
		if err != nil {
			t.Fatal(err)
		}
		f, err := PerspectiveFrustum(c.Fov, c.Aspect, c.Near, c.Far)
		if err != nil {
			t.Fatal(err)
		}
		if !f.Equals(p, 1e-9) {
			t.Errorf("PerspectiveFrustum(%v) != Perspective:\n%v\nvs\n%v", c, f, p)
		}
	}
}

func TestFrustum_OffAxis(t *testing.T) {
	m, err := Frustum(0, 2, 0, 1, 1, 10)
	if err != nil {
		t.Fatal(err)
	}

	corners := []struct {
		P        Vec4
		Expected Vec3
	}{
		{Vec4{0, 0, -1, 1}, Vec3{-1, -1, -1}},
		{Vec4{2, 1, -1, 1}, Vec3{1, 1, -1}},
		{Vec4{20, 10, -10, 1}, Vec3{1, 1, 1}},
	}
	for _, c := range corners {
		if r := m.Transform(c.P).Perspective(); !r.Equals(c.Expected, 1e-9) {
			t.Errorf("Frustum corner %v -> %v, want %v", c.P, r, c.Expected)
		}
	}
}

func TestFrustum_InvalidArgument(t *testing.T) {
	tests := [][6]float64{
		{-1, -1, -1, 1, 1, 10},
		{-1, 1, 1, 1, 1, 10},
		{-1, 1, -1, 1, 0, 10},
		{-1, 1, -1, 1, 1, 1},
		{-1, 1, -1, 1, 1, math.NaN()},
	}

	for _, c := range tests {
		if _, err := Frustum(c[0], c[1], c[2], c[3], c[4], c[5]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Frustum(%v) error = %v, want ErrInvalidArgument", c, err)
		}
	}
}

func TestLookAt_Orthonormal(t *testing.T) {
	tests := []struct {
		Eye, Target, Up Vec3
	}{
		{Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{3, 4, 5}, Vec3{0, 1, 0}, Vec3{0, 1, 0}},
		{Vec3{-2, 7, 1}, Vec3{4, -3, 2}, Vec3{0, 1, 0}},
		{Vec3{1, 1, 1}, Vec3{0, 0, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 0, 0}, Vec3{0, 0, -1}, Vec3{1, 1, 0}},
	}

	for _, c := range tests {
		m, err := LookAt(c.Eye, c.Target, c.Up)
		if err != nil {
			t.Errorf("LookAt(%v, %v, %v): %v", c.Eye, c.Target, c.Up, err)
			continue
		}

		axes := [3]Vec3{}
		for i := range axes {
			r := m.Row(i)
			axes[i] = Vec3{r[0], r[1], r[2]}
		}
		for i := range axes {
			if l := axes[i].Length(); !NearlyEqual(l, 1, 1e-12) {
				t.Errorf("LookAt(%v, %v): axis %d length %v", c.Eye, c.Target, i, l)
			}
			for j := i + 1; j < 3; j++ {
				if d := axes[i].Dot(axes[j]); !NearlyEqual(d, 0, 1e-12) {
					t.Errorf("LookAt(%v, %v): axes %d·%d = %v", c.Eye, c.Target, i, j, d)
				}
			}
		}
		if m.Row(3) != (Vec4{0, 0, 0, 1}) {
			t.Errorf("LookAt(%v, %v): bottom row %v", c.Eye, c.Target, m.Row(3))
		}
	}
}

func TestLookAt_MapsEyeAndTarget(t *testing.T) {
	eye, target := Vec3{3, 4, 5}, Vec3{1, 1, 1}
	m, err := LookAtDefault(eye, target)
	if err != nil {
		t.Fatal(err)
	}

	if r := m.Transform(eye.Homogeneous()); !r.Equals(Vec4{0, 0, 0, 1}, 1e-12) {
		t.Errorf("eye maps to %v, want origin", r)
	}

	dist := eye.Sub(target).Length()
	if r := m.Transform(target.Homogeneous()); !r.Equals(Vec4{0, 0, -dist, 1}, 1e-12) {
		t.Errorf("target maps to %v, want (0, 0, %v)", r, -dist)
	}
}

func TestLookAt_Identity(t *testing.T) {
	m, err := LookAtDefault(Vec3{0, 0, 0}, Vec3{0, 0, -1})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equals(Identity(), 1e-12) {
		t.Errorf("looking down -z from the origin != Identity (got \n%v)", m)
	}
}

func TestLookAt_Degenerate(t *testing.T) {
	tests := []struct {
		Eye, Target, Up Vec3
	}{
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{1, 2, 3}, Vec3{1, 2, 3}, Vec3{0, 1, 0}},
		{Vec3{0, 5, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{0, 0, 0}, Vec3{0, -3, 0}, Vec3{0, 1, 0}},
		{Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, c := range tests {
		m, err := LookAt(c.Eye, c.Target, c.Up)
		if !errors.Is(err, ErrDegenerateConfiguration) {
			t.Errorf("LookAt(%v, %v, %v) error = %v, want ErrDegenerateConfiguration", c.Eye, c.Target, c.Up, err)
		}
		for _, v := range m {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("LookAt(%v, %v, %v) leaked non-finite entries:\n%v", c.Eye, c.Target, c.Up, m)
				break
			}
		}
	}
}

func TestLookAt_InvalidArgument(t *testing.T) {
	if _, err := LookAtDefault(Vec3{math.NaN(), 0, 0}, Vec3{0, 0, 0}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LookAt with NaN eye error = %v, want ErrInvalidArgument", err)
	}
}

func BenchmarkPerspective(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Perspective(60, 1, 0.1, 1000)
	}
}

func BenchmarkLookAt(b *testing.B) {
	eye, target := Vec3{3, 4, 5}, Vec3{0, 0, 0}
	for i := 0; i < b.N; i++ {
		LookAtDefault(eye, target)
	}
}
