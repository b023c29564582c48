// main.go - entry point for the mintdemo renderer showcase
//
// License: GPLv3 or later

package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/intuitionamiga/mintgl"
)

var logger = log.New(os.Stderr, "mintdemo: ", log.LstdFlags)

func main() {
	texturePath := flag.String("texture", "", "PNG texture to map onto the cube's top face (default: built-in swatch)")
	scenePath := flag.String("scene", "", "Lua scene script overriding rotation speed, orbit radius, distance and FOV")
	windowScale := flag.Int("window-scale", 2, "integer scale factor applied to the canvas for the display window")
	flag.Parse()

	cfg, err := loadSceneConfig(*scenePath)
	if err != nil {
		logger.Fatalf("loading scene config: %v", err)
	}

	var texture []byte
	var tw, th int
	if *texturePath != "" {
		texture, tw, th, err = loadTexture(*texturePath, 8)
		if err != nil {
			logger.Fatalf("loading texture: %v", err)
		}
	} else {
		texture, tw, th = builtinTexture()
	}

	font := buildFont()

	logger.Printf("mintgl version %s, canvas %dx%d", tgl.Version, canvasSize, canvasSize)

	g := newGame(cfg, font, texture, tw, th)

	ebiten.SetWindowSize(canvasSize*(*windowScale), canvasSize*(*windowScale))
	ebiten.SetWindowTitle("mintgl demo")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatalf("run: %v", err)
	}
}
