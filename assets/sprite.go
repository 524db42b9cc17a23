package assets

import "image"

// SpriteRef addresses one tile of a sprite sheet, counted row-major from the
// top-left.
type SpriteRef int

// Rect returns the source rectangle of the sprite within sheet. It reports
// false when the sheet cannot hold a single tile or the index is past the
// last tile.
func (s SpriteRef) Rect(sheet image.Rectangle, tileW, tileH int) (image.Rectangle, bool) {
	if tileW <= 0 || tileH <= 0 || s < 0 {
		return image.Rectangle{}, false
	}
	cols := sheet.Dx() / tileW
	rows := sheet.Dy() / tileH
	if cols <= 0 || rows <= 0 || int(s) >= cols*rows {
		return image.Rectangle{}, false
	}

	col := int(s) % cols
	row := int(s) / cols
	x := sheet.Min.X + col*tileW
	y := sheet.Min.Y + row*tileH
	return image.Rect(x, y, x+tileW, y+tileH), true
}

// Count returns how many whole tiles a sheet of the given bounds holds.
func Count(sheet image.Rectangle, tileW, tileH int) int {
	if tileW <= 0 || tileH <= 0 {
		return 0
	}
	return (sheet.Dx() / tileW) * (sheet.Dy() / tileH)
}
