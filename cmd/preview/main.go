package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	specPath := flag.String("spec", "", "random tile spec (.yaml); defaults to the embedded prefabs/random_tile.yaml")
	sheetPath := flag.String("sheet", "", "sprite sheet png; overrides the spec's sheet, placeholder art when both are empty")
	zoom := flag.Float64("zoom", 2, "initial zoom")
	watch := flag.Bool("watch", false, "reload the spec when it changes on disk")
	smooth := flag.Float64("smooth", 0.15, "camera follow factor in [0, 1]; 0 snaps")
	startX := flag.Int("x", 0, "cell to center on at start (x)")
	startY := flag.Int("y", 0, "cell to center on at start (y)")
	flag.Parse()

	game, err := NewGame(Options{
		SpecPath:  *specPath,
		SheetPath: *sheetPath,
		Zoom:      *zoom,
		Watch:     *watch,
		Smooth:    *smooth,
		StartX:    *startX,
		StartY:    *startY,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("random tile preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
