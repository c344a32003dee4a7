package math

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("Vec3.Cross() = %v, want (0, 0, 1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if !near(n.Length(), 1) || !near(n.X, 0.6) || !near(n.Z, 0.8) {
		t.Errorf("Normalize() = %v", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should stay zero, got %v", z)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate after scale: scale applies to the point first.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.MulVec4(Vec4{1, 1, 1, 1})
	want := Vec4{12, 2, 2, 1}
	if got != want {
		t.Errorf("T*S*p = %v, want %v", got, want)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(float32(math.Pi/4), 16.0/9.0, 0.1, 500)

	for _, tc := range []struct {
		z    float32
		want float32
	}{
		{-0.1, -1},
		{-500, 1},
	} {
		c := p.MulVec4(Vec4{0, 0, tc.z, 1})
		if !near(c[2]/c[3], tc.want) {
			t.Errorf("z=%v: ndc depth %v, want %v", tc.z, c[2]/c[3], tc.want)
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 50, 75}
	v := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	e := v.MulVec4(Vec4{eye.X, eye.Y, eye.Z, 1})
	if !near(e[0], 0) || !near(e[1], 0) || !near(e[2], 0) {
		t.Errorf("eye in view space = %v, want origin", e)
	}

	// The target sits straight ahead on -Z.
	c := v.MulVec4(Vec4{0, 0, 0, 1})
	if !near(c[0], 0) || !near(c[1], 0) || !near(c[2], -eye.Length()) {
		t.Errorf("center in view space = %v", c)
	}
}

func TestPtr(t *testing.T) {
	m := Translate(4, 5, 6)
	if p := m.Ptr(); *p != 1 {
		t.Errorf("Ptr()[0] = %v, want 1", *p)
	}
}
