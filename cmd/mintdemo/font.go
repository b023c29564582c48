// font.go - synthesizes the renderer's 8x8 bitmap font table from an
// x/image bitmap face
//
// License: GPLv3 or later

package main

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/intuitionamiga/mintgl"
)

// buildFont rasterizes every printable ASCII rune through basicfont's
// 7x13 face and resamples each glyph down into the 8-row, 1-bit-per-pixel
// cell tgl.Font expects (LSB is the leftmost column, per glyph row).
func buildFont() *tgl.Font {
	var f tgl.Font
	face := basicfont.Face7x13

	for r := rune(0x20); r < 0x7f; r++ {
		glyph, ok := rasterizeGlyph(face, r)
		if !ok {
			continue
		}
		f[byte(r)] = glyph
	}

	return &f
}

func rasterizeGlyph(face font.Face, r rune) ([8]byte, bool) {
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, 13), r)
	if !ok {
		return [8]byte{}, false
	}

	srcW := dr.Dx()
	srcH := dr.Dy()
	if srcW == 0 || srcH == 0 {
		return [8]byte{}, true
	}

	var out [8]byte
	for row := 0; row < 8; row++ {
		srcY := row * srcH / 8
		if srcY >= srcH {
			srcY = srcH - 1
		}
		var line byte
		for col := 0; col < 8; col++ {
			srcX := col * srcW / 8
			if srcX >= srcW {
				srcX = srcW - 1
			}
			_, _, _, a := mask.At(maskp.X+srcX, maskp.Y+srcY).RGBA()
			if a != 0 {
				line |= 1 << uint(col)
			}
		}
		out[row] = line
	}

	return out, true
}
