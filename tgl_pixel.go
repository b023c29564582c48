// tgl_pixel.go - The single pixel emission path and line drawing
//
// License: GPLv3 or later

package tgl

// DrawPixel is the only path to the sink. Inputs are not bounds-checked
// here; every caller upstream (lines, shapes, the triangle scan) is
// responsible for keeping x < width and y < height before reaching this
// point. When a 3D draw has activated depth testing, the pixel is only
// emitted if it is nearer than what's already in the depth buffer at
// (x, y), and the buffer is updated to match; otherwise DrawPixel returns
// without calling the sink.
func (r *Renderer) DrawPixel(x, y int) {
	if r.depthActive {
		index := y*r.width + x
		if r.depthBuffer[index] > r.currentDepth {
			r.depthBuffer[index] = r.currentDepth
		} else {
			return
		}
	}

	r.sink(x, y, r.currentColor)
}

// DrawLine draws a clamped, Bresenham-like incremental line between two
// integer points. A zero-length line draws nothing.
func (r *Renderer) DrawLine(v1, v2 Vec2i) {
	v1.X = maxClamp(v1.X, r.wen)
	v1.Y = maxClamp(v1.Y, r.hen)
	v2.X = maxClamp(v2.X, r.wen)
	v2.Y = maxClamp(v2.Y, r.hen)

	lx := v2.X - v1.X
	ly := v2.Y - v1.Y

	xf := signum(lx)
	yf := signum(ly)

	lx *= xf
	ly *= yf

	if lx > ly {
		step := float32(ly) / float32(lx)
		for inter := 0; inter < lx; inter++ {
			r.DrawPixel(inter*xf+v1.X, int(float32(inter)*step)*yf+v1.Y)
		}
	} else {
		step := float32(lx) / float32(ly)
		for inter := 0; inter < ly; inter++ {
			r.DrawPixel(int(float32(inter)*step)*xf+v1.X, inter*yf+v1.Y)
		}
	}
}
