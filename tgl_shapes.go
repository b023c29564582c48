// tgl_shapes.go - Axis-aligned rectangle and circle primitives
//
// License: GPLv3 or later

package tgl

// DrawSquare clamps both corners and fills every pixel in the resulting
// axis-aligned rectangle.
func (r *Renderer) DrawSquare(v1, v2 Vec2i) {
	v1.X = maxClamp(v1.X, r.wen)
	v1.Y = maxClamp(v1.Y, r.hen)
	v2.X = maxClamp(v2.X, r.wen)
	v2.Y = maxClamp(v2.Y, r.hen)

	xmax := maxInt(v1.X, v2.X)
	xmin := minInt(v1.X, v2.X)
	ymax := maxInt(v1.Y, v2.Y)
	ymin := minInt(v1.Y, v2.Y)

	for x := xmax; x >= xmin; x-- {
		for y := ymax; y >= ymin; y-- {
			r.DrawPixel(x, y)
		}
	}
}

// DrawCircle fills a disc of radius r centered at pos. Each column is
// scanned bottom-to-top; once a row fails the distance test after the
// column has started painting, the scan breaks to the next column. This
// relies on a vertical slice of a circle being a single contiguous
// interval - true for a convex shape like a disc.
func (r *Renderer) DrawCircle(pos Vec2i, radius int) {
	xmax := maxClamp(pos.X+radius, r.wen)
	xmin := maxClamp(pos.X-radius, r.wen)
	ymax := maxClamp(pos.Y+radius, r.hen)
	ymin := maxClamp(pos.Y-radius, r.hen)

	powR := radius * radius

	for x := xmax; x >= xmin; x-- {
		painted := false
		dx := x - pos.X

		for y := ymax; y >= ymin; y-- {
			dy := y - pos.Y

			if dx*dx+dy*dy <= powR {
				r.DrawPixel(x, y)
				painted = true
			} else if painted {
				break
			}
		}
	}
}
