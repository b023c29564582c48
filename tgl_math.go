// tgl_math.go - Small math kernel for the mintgl software rasterizer
//
// License: GPLv3 or later

/*
tgl_math.go implements the vector/matrix kernel the rasterizer is built
on: 2D/3D vectors, a row-major 3x3 matrix with multiply/invert, and the
handful of scalar helpers (signum, cross, clamp) the scan-conversion code
needs. Nothing here touches the sink, the depth buffer, or any renderer
state - it is pure arithmetic so it can be tested in isolation.

Sources:
  - en.wikipedia.org/wiki/3D_projection
  - github.com/willnode/N-Matrix-Programmer (3x3 cofactor inverse)
*/

package tgl

// Vec2i is an integer screen-space point.
type Vec2i struct {
	X, Y int
}

// Vec2f is a floating-point 2D point, used for UV coordinates and
// intermediate triangle math.
type Vec2f struct {
	X, Y float32
}

// Vec3f is a floating-point 3D point or vector, used by the projection
// pipeline.
type Vec3f struct {
	X, Y, Z float32
}

// Triangle2f is three 2D points, used both for screen-space triangles and
// for UV triangles during texture mapping.
type Triangle2f struct {
	V1, V2, V3 Vec2f
}

// Mat3x3f is a row-major 3x3 matrix.
type Mat3x3f struct {
	M00, M01, M02 float32
	M10, M11, M12 float32
	M20, M21, M22 float32
}

// F converts an integer point to a floating-point one.
func (v Vec2i) F() Vec2f {
	return Vec2f{X: float32(v.X), Y: float32(v.Y)}
}

// MulVec3f applies the matrix to a column vector: m * v.
func (m Mat3x3f) MulVec3f(v Vec3f) Vec3f {
	return Vec3f{
		X: v.X*m.M00 + v.Y*m.M01 + v.Z*m.M02,
		Y: v.X*m.M10 + v.Y*m.M11 + v.Z*m.M12,
		Z: v.X*m.M20 + v.Y*m.M21 + v.Z*m.M22,
	}
}

// MulMat3x3f computes m * b.
func (m Mat3x3f) MulMat3x3f(b Mat3x3f) Mat3x3f {
	return Mat3x3f{
		M00: m.M00*b.M00 + m.M01*b.M10 + m.M02*b.M20,
		M01: m.M00*b.M01 + m.M01*b.M11 + m.M02*b.M21,
		M02: m.M00*b.M02 + m.M01*b.M12 + m.M02*b.M22,

		M10: m.M10*b.M00 + m.M11*b.M10 + m.M12*b.M20,
		M11: m.M10*b.M01 + m.M11*b.M11 + m.M12*b.M21,
		M12: m.M10*b.M02 + m.M11*b.M12 + m.M12*b.M22,

		M20: m.M20*b.M00 + m.M21*b.M10 + m.M22*b.M20,
		M21: m.M20*b.M01 + m.M21*b.M11 + m.M22*b.M21,
		M22: m.M20*b.M02 + m.M21*b.M12 + m.M22*b.M22,
	}
}

// InvertMat3x3f returns the inverse of m and true, or a zero matrix and
// false if m is singular (determinant exactly zero). Uses direct cofactor
// expansion, no iterative refinement.
func InvertMat3x3f(m Mat3x3f) (Mat3x3f, bool) {
	det := m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)

	if det == 0 {
		return Mat3x3f{}, false
	}

	invDet := 1 / det

	return Mat3x3f{
		M00: invDet * (m.M11*m.M22 - m.M12*m.M21),
		M01: invDet * -(m.M01*m.M22 - m.M02*m.M21),
		M02: invDet * (m.M01*m.M12 - m.M02*m.M11),
		M10: invDet * -(m.M10*m.M22 - m.M12*m.M20),
		M11: invDet * (m.M00*m.M22 - m.M02*m.M20),
		M12: invDet * -(m.M00*m.M12 - m.M02*m.M10),
		M20: invDet * (m.M10*m.M21 - m.M11*m.M20),
		M21: invDet * -(m.M00*m.M21 - m.M01*m.M20),
		M22: invDet * (m.M00*m.M11 - m.M01*m.M10),
	}, true
}

// signum returns -1, 0 or +1 depending on the sign of value.
func signum(value int) int {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}

// cross computes the signed twice-area of the triangle (x1,y1) (x2,y2)
// (x3,y3): the half-plane test the triangle scan relies on.
func cross(x1, y1, x2, y2, x3, y3 float32) float32 {
	return (x1-x3)*(y2-y3) - (x2-x3)*(y1-y3)
}

// maxClamp clamps value into [0, max].
func maxClamp(value, max int) int {
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3Int(a, b, c int) int {
	return minInt(minInt(a, b), c)
}

func max3Int(a, b, c int) int {
	return maxInt(maxInt(a, b), c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
