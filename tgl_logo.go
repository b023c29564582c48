// tgl_logo.go - Stylized "TGL" badge composition
//
// License: GPLv3 or later

package tgl

// LogoHeight returns the pixel height DrawLogo occupies at the given
// size, for callers that need to center or clear a region around it.
func LogoHeight(size int) int {
	return size * 24
}

// LogoWidth returns the pixel width DrawLogo occupies at the given size.
func LogoWidth(size int) int {
	return int(float32(size) * 41.333)
}

// DrawLogo composes a solid triangle (color a), a filled square (color
// b), a filled circle (color c), and the three bitmap characters "TGL"
// (color fg) into a badge anchored at pos and scaled by size. It is
// purely a convenience composition over the 2D primitives; it leaves the
// renderer's color set to fg afterwards.
func (r *Renderer) DrawLogo(pos Vec2i, size int, fg, a, b, c Color, font *Font) {
	x, y := pos.X, pos.Y
	s := size * 8
	h := size * 4

	r.SetColor(a)
	r.DrawTriangle(Vec2i{X: x + h, Y: y + s}, Vec2i{X: x + s + h, Y: y + s}, Vec2i{X: x + s, Y: y})

	r.SetColor(b)
	r.DrawSquare(Vec2i{X: x + s*2, Y: y}, Vec2i{X: x + s*3, Y: y + s})

	r.SetColor(c)
	r.DrawCircle(Vec2i{X: x + s*4, Y: y + h}, h)

	r.SetColor(fg)
	r.DrawString(x+h+h/3, y+s+h, "TGL", font, size, 0, h, 255, false)
}
