// game.go - the ebiten game loop driving the renderer
//
// License: GPLv3 or later

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/intuitionamiga/mintgl"
)

const canvasSize = 400

// game implements ebiten.Game. It owns the one Renderer for the session
// and the RGBA buffer its PixelSink writes into; every Draw call clears
// the depth buffer and the RGBA backing array, replays one frame of the
// scene, then blits the buffer to the screen.
type game struct {
	renderer *tgl.Renderer
	canvas   *image.RGBA
	screen   *ebiten.Image

	font    *tgl.Font
	texture []byte
	tw, th  int

	cfg sceneConfig

	radX, radY, radC, scale float32
	frameCount               int
}

func newGame(cfg sceneConfig, font *tgl.Font, texture []byte, tw, th int) *game {
	g := &game{
		canvas:  image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize)),
		font:    font,
		texture: texture,
		tw:      tw,
		th:      th,
		cfg:     cfg,
	}

	g.renderer = tgl.NewRenderer(canvasSize, canvasSize, g.plot, 3)
	g.renderer.SetDistance(float32(cfg.distance))
	g.renderer.SetFOV(degToRad(float32(cfg.fovDegrees)))
	g.renderer.SetTextureSrc(texture, tw, th)

	g.screen = ebiten.NewImageFromImage(g.canvas)

	return g
}

func degToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}

// plot is the renderer's PixelSink: it writes straight into the RGBA
// backing buffer. color carries three bytes per the renderer's channel
// count (see newGame's NewRenderer call).
func (g *game) plot(x, y int, color tgl.Color) {
	i := g.canvas.PixOffset(x, y)
	pix := g.canvas.Pix
	pix[i] = color[0]
	pix[i+1] = color[1]
	pix[i+2] = color[2]
	pix[i+3] = 0xff
}

func (g *game) Update() error {
	g.frameCount++

	if g.frameCount > 120 {
		g.radX += float32(g.cfg.rotationSpeedX) * 0.01
		g.radY += float32(g.cfg.rotationSpeedY) * 0.01
		g.radC += float32(g.cfg.orbitSpeed) * 0.01

		target := float32(2.0)
		g.scale += minFloat32(0.01*(target-g.scale), 0.1)
	}

	return nil
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func (g *game) Draw(screen *ebiten.Image) {
	clearCanvas(g.canvas)
	g.renderer.ClearDepth()

	if g.frameCount <= 120 {
		w := (canvasSize - tgl.LogoWidth(5)) / 2
		h := (canvasSize - tgl.LogoHeight(5)) / 2
		g.renderer.SetColor(tgl.Black)
		g.renderer.DrawLogo(tgl.Vec2i{X: w, Y: h}, 5, tgl.Black, tgl.Red, tgl.Green, tgl.Blue, g.font)
	} else {
		px := float32(g.cfg.orbitRadius) * float32(math.Cos(float64(g.radC)))
		pz := float32(g.cfg.orbitRadius) * float32(math.Sin(float64(g.radC)))

		g.renderer.SetScale(g.scale / 2)
		g.renderer.SetRotation(tgl.Vec3f{X: g.radX, Y: g.radY, Z: 0})

		offsets := []tgl.Vec3f{
			{X: 0, Y: 0, Z: 0},
			{X: 3, Y: 0, Z: 0}, {X: -3, Y: 0, Z: 0},
			{X: 0, Y: 3, Z: 0}, {X: 0, Y: -3, Z: 0},
			{X: 0, Y: 0, Z: 3}, {X: 0, Y: 0, Z: -3},
			{X: px, Y: 0, Z: pz},
		}
		for _, off := range offsets {
			drawCube(g.renderer, off, tgl.Red, tgl.Blue, tgl.Green)
		}

		g.renderer.SetColor(tgl.Black)
		g.renderer.DrawStringDefault(4, 4, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), g.font)
	}

	g.screen.WritePixels(g.canvas.Pix)
	screen.DrawImage(g.screen, nil)
}

func clearCanvas(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasSize, canvasSize
}
