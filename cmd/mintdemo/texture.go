// texture.go - PNG texture loading for the mintdemo cube faces
//
// License: GPLv3 or later

package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	ximage "golang.org/x/image/draw"
)

// loadTexture decodes a PNG file and flattens it into the row-major RGB
// buffer SetTextureSrc expects: width*height*3 bytes, three channels per
// texel, no alpha. Arbitrary source formats and sizes are accepted; the
// image is resampled to targetSize x targetSize along the way since the
// original's texture examples are small square swatches (8x8).
func loadTexture(path string, targetSize int) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode texture %q: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	ximage.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), ximage.Over, nil)

	buf := make([]byte, targetSize*targetSize*3)
	i := 0
	for y := 0; y < targetSize; y++ {
		for x := 0; x < targetSize; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			buf[i] = byte(r >> 8)
			buf[i+1] = byte(g >> 8)
			buf[i+2] = byte(b >> 8)
			i += 3
		}
	}

	return buf, targetSize, targetSize, nil
}

// builtinTexture reconstructs the 8x8 swatch inlined in the original
// cube example (toygl's cubes.cpp) for when no -texture flag is given.
func builtinTexture() ([]byte, int, int) {
	const R = "\xff\x00\x00"
	const G = "\x00\xff\x00"
	const B = "\x00\x00\xff"
	const F = "\x64\xe6\x8f"

	rows := []string{
		F + F + F + F + F + F + F + F,
		F + B + B + R + R + B + B + F,
		F + B + G + R + R + G + B + F,
		F + R + R + R + R + R + R + F,
		F + G + G + R + R + G + G + F,
		F + B + G + G + G + G + B + F,
		F + B + B + B + B + B + B + F,
		F + F + F + F + F + F + F + F,
	}

	buf := make([]byte, 0, 8*8*3)
	for _, row := range rows {
		buf = append(buf, []byte(row)...)
	}
	return buf, 8, 8
}
