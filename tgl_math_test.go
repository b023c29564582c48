package tgl

import "testing"

func TestInvertMat3x3fRoundTrip(t *testing.T) {
	m := Mat3x3f{
		M00: 2, M01: 0, M02: 1,
		M10: 1, M11: 3, M12: 0,
		M20: 0, M21: 1, M22: 1,
	}

	inv, ok := InvertMat3x3f(m)
	if !ok {
		t.Fatalf("expected non-singular matrix to invert")
	}

	got := m.MulMat3x3f(inv)
	want := Mat3x3f{M00: 1, M11: 1, M22: 1}

	const eps = 1e-4
	fields := []struct {
		name       string
		got, want  float32
	}{
		{"m00", got.M00, want.M00}, {"m01", got.M01, want.M01}, {"m02", got.M02, want.M02},
		{"m10", got.M10, want.M10}, {"m11", got.M11, want.M11}, {"m12", got.M12, want.M12},
		{"m20", got.M20, want.M20}, {"m21", got.M21, want.M21}, {"m22", got.M22, want.M22},
	}

	for _, f := range fields {
		if diff := f.got - f.want; diff > eps || diff < -eps {
			t.Errorf("%s = %v, want %v (within %v)", f.name, f.got, f.want, eps)
		}
	}
}

func TestInvertMat3x3fSingular(t *testing.T) {
	m := Mat3x3f{} // zero determinant

	_, ok := InvertMat3x3f(m)
	if ok {
		t.Fatalf("expected singular matrix to fail to invert")
	}
}

func TestSignum(t *testing.T) {
	cases := map[int]int{-5: -1, -1: -1, 0: 0, 1: 1, 5: 1}
	for in, want := range cases {
		if got := signum(in); got != want {
			t.Errorf("signum(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestCrossHalfPlane(t *testing.T) {
	// A point strictly inside the triangle (0,0) (10,0) (0,10) should
	// have a consistent sign across all three edges.
	px, py := float32(2), float32(2)
	b1 := cross(px, py, 0, 0, 10, 0) < 0
	b2 := cross(px, py, 10, 0, 0, 10) < 0
	b3 := cross(px, py, 0, 10, 0, 0) < 0

	if !(b1 == b2 && b2 == b3) {
		t.Errorf("expected point inside triangle to agree on all three half-planes, got %v %v %v", b1, b2, b3)
	}
}

func TestMaxClamp(t *testing.T) {
	cases := []struct{ value, max, want int }{
		{-5, 10, 0},
		{0, 10, 0},
		{5, 10, 5},
		{15, 10, 10},
	}
	for _, c := range cases {
		if got := maxClamp(c.value, c.max); got != c.want {
			t.Errorf("maxClamp(%d, %d) = %d, want %d", c.value, c.max, got, c.want)
		}
	}
}
