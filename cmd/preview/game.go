package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/randomtile/assets"
	"github.com/milk9111/randomtile/common"
	"github.com/milk9111/randomtile/obj"
	"github.com/milk9111/randomtile/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	panSpeed = 6.0
	minZoom  = 0.25
	maxZoom  = 8.0
)

type Options struct {
	SpecPath  string
	SheetPath string
	Zoom      float64
	Watch     bool
	Smooth    float64
	StartX    int
	StartY    int
}

type Game struct {
	opts Options

	camera  *obj.Camera
	input   *obj.Input
	layer   *obj.RandomLayer
	spec    *prefabs.RandomTileSpec
	watcher *prefabs.Watcher

	targetX float64
	targetY float64
	status  string
}

func NewGame(opts Options) (*Game, error) {
	if !common.InCellRange(opts.StartX) || !common.InCellRange(opts.StartY) {
		return nil, fmt.Errorf("start cell (%d,%d) leaves the int32 cell range", opts.StartX, opts.StartY)
	}
	if opts.Smooth < 0 || opts.Smooth > 1 {
		return nil, fmt.Errorf("smooth %v must be within 0..1", opts.Smooth)
	}

	spec, err := loadSpec(opts.SpecPath)
	if err != nil {
		return nil, err
	}
	rt, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", spec.Name, err)
	}

	camera := obj.NewCamera(baseWidth, baseHeight, opts.Zoom)
	camera.SetSmooth(opts.Smooth)
	g := &Game{
		opts:    opts,
		camera:  camera,
		input:   obj.NewInput(camera),
		layer:   obj.NewRandomLayer(rt, loadSheet(spec, opts.SheetPath), spec.TileW, spec.TileH),
		spec:    spec,
		targetX: float64(opts.StartX*common.TileSize) + common.TileSize/2,
		targetY: float64(opts.StartY*common.TileSize) + common.TileSize/2,
	}
	camera.SnapTo(g.targetX, g.targetY)

	if opts.Watch {
		dir := "prefabs"
		if opts.SpecPath != "" {
			dir = filepath.Dir(opts.SpecPath)
		}
		w, err := prefabs.NewWatcher(dir)
		if err != nil {
			log.Printf("spec watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	g.input.Update()
	if g.input.Recenter {
		g.targetX, g.targetY = common.TileSize/2, common.TileSize/2
	}
	zoom := g.camera.Zoom()
	if g.input.ZoomIn && zoom*2 <= maxZoom {
		g.camera.SetZoom(zoom * 2)
	}
	if g.input.ZoomOut && zoom/2 >= minZoom {
		g.camera.SetZoom(zoom / 2)
	}

	speed := panSpeed / g.camera.Zoom()
	if g.input.Fast {
		speed *= 4
	}
	g.targetX += g.input.MoveX * speed
	g.targetY += g.input.MoveY * speed
	g.camera.Update(g.targetX, g.targetY)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	viewW, viewH := g.camera.ViewSize()
	g.camera.Render(screen, func(world *ebiten.Image) {
		g.layer.Draw(world, camX, camY, viewW, viewH, g.camera.Zoom())
	})

	cell := common.CellAt(g.input.MouseWorldX, g.input.MouseWorldY, common.TileSize)
	sprite, _ := g.layer.SpriteAt(cell)
	msg := fmt.Sprintf("%s  cell %s  sprite %d  zoom %.2f  FPS %.1f", g.spec.Name, cell, sprite, g.camera.Zoom(), ebiten.ActualFPS())
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !g.isSpec(name) {
				continue
			}
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("spec watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) isSpec(name string) bool {
	want := filepath.Join("prefabs", prefabs.DefaultSpec)
	if g.opts.SpecPath != "" {
		want = g.opts.SpecPath
	}
	return filepath.Clean(name) == filepath.Clean(want)
}

// reload keeps the current tile when the new spec fails to load or build.
func (g *Game) reload() {
	spec, err := loadSpec(g.opts.SpecPath)
	if err != nil {
		log.Printf("spec reload failed: %v", err)
		g.status = "reload failed: " + err.Error()
		return
	}
	rt, err := spec.Build()
	if err != nil {
		log.Printf("spec reload failed: %v", err)
		g.status = "reload failed: " + err.Error()
		return
	}

	if spec.Sheet != g.spec.Sheet || spec.TileW != g.spec.TileW || spec.TileH != g.spec.TileH || spec.MaxIndex() != g.spec.MaxIndex() {
		g.layer.SetSheet(loadSheet(spec, g.opts.SheetPath), spec.TileW, spec.TileH)
	}
	g.layer.SetTile(rt)
	g.spec = spec
	g.status = fmt.Sprintf("reloaded %s (%d sprites, total weight %d)", spec.Name, rt.Len(), rt.TotalWeight())
	log.Print(g.status)
}

func loadSpec(path string) (*prefabs.RandomTileSpec, error) {
	if path == "" {
		return prefabs.LoadRandomTileSpec(prefabs.DefaultSpec)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("spec %s: %w", path, err)
	}
	return prefabs.LoadFile(path)
}

// loadSheet falls back to placeholder art so a spec can be previewed before
// its sheet exists. Sprites the sheet cannot hold draw as missing tiles.
func loadSheet(spec *prefabs.RandomTileSpec, override string) image.Image {
	path := spec.Sheet
	if override != "" {
		path = override
	}
	need := spec.MaxIndex() + 1
	if path != "" {
		img, err := assets.LoadImage(path)
		if err == nil {
			if have := assets.Count(img.Bounds(), spec.TileW, spec.TileH); have < need {
				log.Printf("sheet %s holds %d sprites of %dx%d, spec %s references index %d", path, have, spec.TileW, spec.TileH, spec.Name, need-1)
			}
			return img
		}
		log.Printf("sheet %s unavailable, using placeholder: %v", path, err)
	}

	cols, rows, capped := assets.PlaceholderLayout(need)
	if capped {
		log.Printf("placeholder for %s limited to %d sprites, index %d will draw as missing", spec.Name, assets.MaxPlaceholderSprites, need-1)
	}
	return assets.Placeholder(cols, rows, spec.TileW, spec.TileH)
}
