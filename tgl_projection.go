// tgl_projection.go - 3D vertex projection and the 3D draw entry points
//
// License: GPLv3 or later

/*
tgl_projection.go implements the only place this package touches 3D: a
single vertex projection (translate, scale, rotate Z-Y-X, perspective
divide, pseudo-depth recode, center) and the two 3D draw entry points
that project their vertices and delegate to the 2D rasterizer. Depth
testing is active only for the duration of these calls, and only when the
renderer has depth enabled - everything else in the package is pure 2D.
*/

package tgl

import "math"

// ProjectVector transforms a world-space vertex into screen space plus
// pseudo-depth, per spec §4.6. Division by zero when z+dist == 0 is a
// precondition violation the caller avoids by keeping near > 0.
func (r *Renderer) ProjectVector(v Vec3f) Vec3f {
	v.X -= r.cam.X
	v.Y -= r.cam.Y
	v.Z -= r.cam.Z

	v.X *= r.scl
	v.Y *= r.scl
	v.Z *= r.scl

	a := r.rzs*v.Y + r.rzc*v.X
	b := r.rzc*v.Y - r.rzs*v.X
	c := r.ryc*v.Z + r.rys*a

	v.X = r.ryc*a - r.rys*v.Z
	v.Y = r.rxs*c + r.rxc*b
	v.Z = r.rxc*c - r.rxs*b

	d := v.Z + r.dist
	m := float32(r.width) / (d * r.fov)
	v.X *= m
	v.Y *= m

	v.Z = d * (255 / r.far)

	v.X += float32(r.xo)
	v.Y += float32(r.yo)

	return v
}

// Draw3DLine projects both endpoints, sets the pseudo-depth to their
// average, and delegates to DrawLine.
func (r *Renderer) Draw3DLine(v1, v2 Vec3f) {
	p1 := r.ProjectVector(v1)
	p2 := r.ProjectVector(v2)

	r.beginDepth((p1.Z + p2.Z) * 0.5)
	defer r.endDepth()

	r.DrawLine(roundVec2i(p1), roundVec2i(p2))
}

// Draw3DTriangle projects all three vertices, computes the pseudo-depth
// as 0.33 (not 1/3 - deliberate, matches the source's visual bias) of
// their sum, discards the triangle if any projected pseudo-depth falls
// outside (near, far], culls it if back-facing in screen space, and
// otherwise delegates to DrawTriangle.
func (r *Renderer) Draw3DTriangle(v1, v2, v3 Vec3f) {
	p1 := r.ProjectVector(v1)
	p2 := r.ProjectVector(v2)
	p3 := r.ProjectVector(v3)

	r.beginDepth((p1.Z + p2.Z + p3.Z) * 0.33)
	defer r.endDepth()

	if p1.Z <= r.near || p2.Z <= r.near || p3.Z <= r.near ||
		p1.Z > r.far || p2.Z > r.far || p3.Z > r.far {
		return
	}

	a := Vec2f{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	b := Vec2f{X: p3.X - p1.X, Y: p3.Y - p1.Y}

	if a.X*b.Y-a.Y*b.X < 0 {
		return
	}

	r.DrawTriangle(roundVec2i(p1), roundVec2i(p2), roundVec2i(p3))
}

// beginDepth activates depth testing for the duration of a 3D draw, if
// the renderer has depth enabled.
func (r *Renderer) beginDepth(depth float32) {
	r.depthActive = r.depthEnable
	r.currentDepth = depth
}

func (r *Renderer) endDepth() {
	r.depthActive = false
}

func roundVec2i(v Vec3f) Vec2i {
	return Vec2i{X: int(math.Round(float64(v.X))), Y: int(math.Round(float64(v.Y)))}
}
