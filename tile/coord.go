package tile

import "fmt"

// Coord identifies a grid cell. Cells are unbounded and may be negative.
type Coord struct {
	X int32
	Y int32
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
