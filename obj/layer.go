package obj

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/randomtile/assets"
	"github.com/milk9111/randomtile/common"
	"github.com/milk9111/randomtile/tile"
)

// RandomLayer renders every visible cell with the sprite its RandomTile picks
// for that cell.
type RandomLayer struct {
	Tile  *tile.RandomTile[assets.SpriteRef]
	TileW int
	TileH int

	sheet      image.Image
	sheetImg   *ebiten.Image
	sprites    map[assets.SpriteRef]*ebiten.Image
	missingImg *ebiten.Image
	reported   map[assets.SpriteRef]bool
}

// NewRandomLayer builds a layer drawing sprites of tileW x tileH from sheet.
// GPU images are created on first Draw.
func NewRandomLayer(t *tile.RandomTile[assets.SpriteRef], sheet image.Image, tileW, tileH int) *RandomLayer {
	return &RandomLayer{
		Tile:     t,
		TileW:    tileW,
		TileH:    tileH,
		sheet:    sheet,
		sprites:  make(map[assets.SpriteRef]*ebiten.Image),
		reported: make(map[assets.SpriteRef]bool),
	}
}

// SetTile swaps the tile being rendered, e.g. after a spec reload.
func (ly *RandomLayer) SetTile(t *tile.RandomTile[assets.SpriteRef]) {
	ly.Tile = t
	ly.reported = make(map[assets.SpriteRef]bool)
}

// SetSheet swaps the sprite sheet and drops cached sprite images.
func (ly *RandomLayer) SetSheet(sheet image.Image, tileW, tileH int) {
	ly.sheet = sheet
	ly.TileW = tileW
	ly.TileH = tileH
	ly.sheetImg = nil
	ly.sprites = make(map[assets.SpriteRef]*ebiten.Image)
	ly.reported = make(map[assets.SpriteRef]bool)
}

// SpriteAt returns the sprite chosen for cell c.
func (ly *RandomLayer) SpriteAt(c tile.Coord) (assets.SpriteRef, bool) {
	if ly == nil {
		return 0, false
	}
	return ly.Tile.TileData(c)
}

// VisibleSprites calls fn with every cell covering the view and the sprite
// chosen for it, row by row. camX/camY are the view's top-left in world
// pixels, viewW/viewH its size in world pixels.
func (ly *RandomLayer) VisibleSprites(camX, camY, viewW, viewH float64, fn func(c tile.Coord, ref assets.SpriteRef)) {
	if ly == nil || ly.Tile == nil || ly.Tile.Len() == 0 {
		return
	}

	minX, minY, maxX, maxY := common.VisibleCells(camX, camY, viewW, viewH, common.TileSize)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := tile.C(int32(x), int32(y))
			if ref, ok := ly.Tile.TileData(c); ok {
				fn(c, ref)
			}
		}
	}
}

// Draw renders the cells covering the view.
func (ly *RandomLayer) Draw(screen *ebiten.Image, camX, camY, viewW, viewH, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}

	ly.VisibleSprites(camX, camY, viewW, viewH, func(c tile.Coord, ref assets.SpriteRef) {
		img, scaleX, scaleY := ly.spriteImage(ref)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scaleX*zoom, scaleY*zoom)
		wx := float64(c.X) * common.TileSize
		wy := float64(c.Y) * common.TileSize
		op.GeoM.Translate((wx-camX)*zoom, (wy-camY)*zoom)
		screen.DrawImage(img, op)
	})
}

// spriteImage returns the cached sub-image for ref, or the missing image,
// plus the scale that maps it onto one cell.
func (ly *RandomLayer) spriteImage(ref assets.SpriteRef) (*ebiten.Image, float64, float64) {
	if img, ok := ly.sprites[ref]; ok {
		return img, float64(common.TileSize) / float64(ly.TileW), float64(common.TileSize) / float64(ly.TileH)
	}

	if ly.sheet != nil && ly.sheetImg == nil {
		ly.sheetImg = ebiten.NewImageFromImage(ly.sheet)
	}
	if ly.sheetImg != nil {
		if r, ok := ref.Rect(ly.sheetImg.Bounds(), ly.TileW, ly.TileH); ok {
			if sub, ok := ly.sheetImg.SubImage(r).(*ebiten.Image); ok {
				ly.sprites[ref] = sub
				return sub, float64(common.TileSize) / float64(ly.TileW), float64(common.TileSize) / float64(ly.TileH)
			}
		}
	}

	if !ly.reported[ref] {
		ly.reported[ref] = true
		var bounds image.Rectangle
		if ly.sheetImg != nil {
			bounds = ly.sheetImg.Bounds()
		}
		log.Printf("random tile draw failed: sprite=%d tileW=%d tileH=%d sheetBounds=%v", ref, ly.TileW, ly.TileH, bounds)
	}
	if ly.missingImg == nil {
		ly.missingImg = ebiten.NewImage(common.TileSize, common.TileSize)
		ly.missingImg.Fill(assets.MissingColor)
	}
	return ly.missingImg, 1, 1
}
