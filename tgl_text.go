// tgl_text.go - Bitmap glyph and string drawing
//
// License: GPLv3 or later

package tgl

// Font is a 256-entry bitmap font table, one entry per byte value. Each
// entry is 8 bytes, one byte per row; within a byte, bit i (LSB is the
// leftmost column) selects column i. The font table is an external
// collaborator - this package never constructs one, only consumes it.
type Font [256][8]byte

// DrawGlyph draws one 8x8 bitmap glyph at (x, y). Each set bit becomes
// either a single pixel (scale == 1) or a scale x scale filled square.
func (r *Renderer) DrawGlyph(x, y int, glyph [8]byte, scale int) {
	x = maxClamp(x, r.wen)
	y = maxClamp(y, r.hen)

	for gx := 0; gx < 8; gx++ {
		bit := byte(1 << uint(gx))

		for gy := 0; gy < 8; gy++ {
			if glyph[gy]&bit == 0 {
				continue
			}

			if scale == 1 {
				if x+gx <= r.wen && y+gy <= r.hen {
					r.DrawPixel(x+gx, y+gy)
				}
				continue
			}

			sx := x + gx*scale
			sy := y + gy*scale
			r.DrawSquare(Vec2i{X: sx, Y: sy}, Vec2i{X: sx + scale - 1, Y: sy + scale - 1})
		}
	}
}

// DrawString draws text, one glyph per accepted byte, until a NUL byte.
// Bytes whose ordinal exceeds fmax are skipped. When special is true,
// '\n' advances y by 8+vspace and '\r' resets x to the position
// DrawString started at; both still draw their own glyph first, and
// neither advances x. There is no wrapping.
func (r *Renderer) DrawString(x, y int, text string, font *Font, scale, vspace, hspace, fmax int, special bool) {
	x = maxClamp(x, r.wen)
	y = maxClamp(y, r.hen)

	x0 := x

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == 0 {
			break
		}
		if int(c) > fmax {
			continue
		}

		r.DrawGlyph(x, y, font[c], scale)

		if special {
			switch c {
			case '\n':
				y += 8 + vspace
				continue
			case '\r':
				x = x0
				continue
			}
		}

		x += 8*scale + hspace
	}
}

// DrawStringDefault draws text with the default layout: scale 1, one
// pixel of vertical spacing, no horizontal spacing, ASCII-range glyphs
// only, '\n'/'\r' handling enabled.
func (r *Renderer) DrawStringDefault(x, y int, text string, font *Font) {
	r.DrawString(x, y, text, font, 1, 1, 0, 127, true)
}
