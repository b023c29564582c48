// tgl_triangle.go - Triangle rasterizer with optional affine texture mapping
//
// License: GPLv3 or later

/*
DrawTriangle is the hardest piece of the rasterizer: it walks a clamped
bounding box, classifies each pixel with three signed half-plane tests
(cross products), and - when texture sampling is active - maps the pixel
back into UV space through a 3x3 matrix built from the inverse of the
screen-space triangle.

The scan order is columns right-to-left, rows bottom-to-top within each
column, with an early-out that assumes the inside-set along any given
vertical line is a single interval. That assumption holds for a (convex)
triangle; it would need revisiting for non-convex polygons.
*/

package tgl

import "math"

// DrawTriangle rasterizes the triangle v1-v2-v3. If texture sampling is
// enabled, the current UV triangle is mapped onto v1-v2-v3 via an
// inverted affine matrix and each inside pixel's color is replaced by the
// sampled texel before it reaches DrawPixel.
func (r *Renderer) DrawTriangle(v1, v2, v3 Vec2i) {
	xmax := maxClamp(max3Int(v1.X, v2.X, v3.X), r.wen)
	xmin := maxClamp(min3Int(v1.X, v2.X, v3.X), r.wen)
	ymax := maxClamp(max3Int(v1.Y, v2.Y, v3.Y), r.hen)
	ymin := maxClamp(min3Int(v1.Y, v2.Y, v3.Y), r.hen)

	if r.textureEnable {
		r.textureMatrix = triangleMappingMatrix(Triangle2f{V1: v1.F(), V2: v2.F(), V3: v3.F()}, r.uvTriangle)
	}

	for x := xmax; x >= xmin; x-- {
		painted := false

		for y := ymax; y >= ymin; y-- {
			fx, fy := float32(x), float32(y)

			b1 := cross(fx, fy, float32(v1.X), float32(v1.Y), float32(v2.X), float32(v2.Y)) < 0
			b2 := cross(fx, fy, float32(v2.X), float32(v2.Y), float32(v3.X), float32(v3.Y)) < 0
			b3 := cross(fx, fy, float32(v3.X), float32(v3.Y), float32(v1.X), float32(v1.Y)) < 0

			if b1 == b2 && b2 == b3 {
				if r.textureEnable {
					r.sampleTexture(x, y)
				}

				r.DrawPixel(x, y)
				painted = true
			} else if painted {
				break
			}
		}
	}
}

// sampleTexture maps (x,y) through the current texture matrix into UV
// space, samples the texel, and stashes it as the current color. This is
// the mutation spec.md §9 calls out explicitly: texturing overwrites
// currentColor as a side effect of the scan.
func (r *Renderer) sampleTexture(x, y int) {
	uv := r.textureMatrix.MulVec3f(Vec3f{X: float32(x), Y: float32(y), Z: 1})

	uvx := maxClamp(int(math.Floor(float64(uv.X))), r.tw)
	uvy := maxClamp(int(math.Floor(float64(uv.Y))), r.th)

	offset := (uvy*(r.tw+1) + uvx) * r.channels
	r.currentColor = r.textureBytes[offset : offset+r.channels]
}

// triangleMappingMatrix builds the affine matrix that maps a point on
// screenTri onto the corresponding point of uvTri. If screenTri's matrix
// is singular, the zero matrix is returned and every pixel will sample
// UV (0,0) - an accepted degenerate case, not an error.
func triangleMappingMatrix(screenTri, uvTri Triangle2f) Mat3x3f {
	screenMat := Mat3x3f{
		M00: screenTri.V1.X, M01: screenTri.V2.X, M02: screenTri.V3.X,
		M10: screenTri.V1.Y, M11: screenTri.V2.Y, M12: screenTri.V3.Y,
		M20: 1, M21: 1, M22: 1,
	}

	invScreen, ok := InvertMat3x3f(screenMat)
	if !ok {
		return Mat3x3f{}
	}

	uvMat := Mat3x3f{
		M00: uvTri.V1.X, M01: uvTri.V2.X, M02: uvTri.V3.X,
		M10: uvTri.V1.Y, M11: uvTri.V2.Y, M12: uvTri.V3.Y,
		M20: 1, M21: 1, M22: 1,
	}

	return uvMat.MulMat3x3f(invScreen)
}
