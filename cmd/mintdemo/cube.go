// cube.go - a textured, colored cube built from twelve 3D triangles
//
// License: GPLv3 or later

package main

import "github.com/intuitionamiga/mintgl"

// drawCube reconstructs the original cube example's draw_3d_cube: a unit
// cube centered on v, one pair of triangles per face, five faces flat
// colored and the top face textured. red/blue/green are caller-owned so
// SetColor's no-copy contract holds across the whole call.
func drawCube(r *tgl.Renderer, v tgl.Vec3f, red, blue, green tgl.Color) {
	x, y, z := v.X, v.Y, v.Z

	r.SetColor(red)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z + 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z + 1},
	)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z + 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z + 1},
	)

	r.Draw3DTriangle(
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z - 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z - 1},
	)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z - 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z - 1},
	)

	r.SetColor(blue)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z - 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z - 1},
	)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z - 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z + 1},
	)

	r.Draw3DTriangle(
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z + 1},
	)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z + 1},
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z + 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z - 1},
	)

	r.SetTexture(true)
	r.SetTextureUV(tgl.Triangle2f{
		V1: tgl.Vec2f{X: 0, Y: 0}, V2: tgl.Vec2f{X: 0, Y: 8}, V3: tgl.Vec2f{X: 8, Y: 0},
	})
	r.Draw3DTriangle(
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z - 1},
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z + 1},
	)
	r.SetTextureUV(tgl.Triangle2f{
		V1: tgl.Vec2f{X: 8, Y: 8}, V2: tgl.Vec2f{X: 8, Y: 0}, V3: tgl.Vec2f{X: 0, Y: 8},
	})
	r.Draw3DTriangle(
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z + 1},
		tgl.Vec3f{X: x - 1, Y: y + 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y + 1, Z: z - 1},
	)
	r.SetTexture(false)

	r.SetColor(green)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z - 1},
	)
	r.Draw3DTriangle(
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z + 1},
		tgl.Vec3f{X: x + 1, Y: y - 1, Z: z - 1},
		tgl.Vec3f{X: x - 1, Y: y - 1, Z: z + 1},
	)
}
