package common

import (
	"math"

	"github.com/milk9111/randomtile/tile"
)

// TileSize is the on-screen edge length of one cell in world pixels.
const TileSize = 32

// CellAt returns the cell containing the world-space point (wx, wy).
// Results are clamped to the int32 range of tile.Coord.
func CellAt(wx, wy float64, tileSize int) tile.Coord {
	if tileSize <= 0 {
		tileSize = TileSize
	}
	return tile.C(clampCell(math.Floor(wx/float64(tileSize))), clampCell(math.Floor(wy/float64(tileSize))))
}

// VisibleCells returns the inclusive cell range covering the world rectangle
// with top-left (left, top) and the given size. Like CellAt, the range is
// clamped to int32 so every returned cell converts to a tile.Coord unchanged.
func VisibleCells(left, top, width, height float64, tileSize int) (minX, minY, maxX, maxY int) {
	if tileSize <= 0 {
		tileSize = TileSize
	}
	ts := float64(tileSize)
	minX = int(clampCell(math.Floor(left / ts)))
	minY = int(clampCell(math.Floor(top / ts)))
	maxX = int(clampCell(math.Ceil((left+width)/ts) - 1))
	maxY = int(clampCell(math.Ceil((top+height)/ts) - 1))
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return minX, minY, maxX, maxY
}

// InCellRange reports whether v is a valid tile.Coord component.
func InCellRange(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func clampCell(v float64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
