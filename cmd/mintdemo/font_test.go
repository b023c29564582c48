package main

import "testing"

func TestBuildFontProducesPrintableGlyphs(t *testing.T) {
	f := buildFont()

	// 'A' should rasterize to something other than an all-zero cell.
	glyph := f['A']
	blank := true
	for _, row := range glyph {
		if row != 0 {
			blank = false
			break
		}
	}
	if blank {
		t.Errorf("expected 'A' to rasterize to a non-blank glyph")
	}

	// A control character below the printable range was never touched.
	if f[0x01] != [8]byte{} {
		t.Errorf("expected control byte 0x01 to remain the zero glyph")
	}
}
