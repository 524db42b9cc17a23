package common

import (
	"math"
	"testing"

	"github.com/milk9111/randomtile/tile"
)

func TestCellAt(t *testing.T) {
	cases := []struct {
		name   string
		wx, wy float64
		size   int
		want   tile.Coord
	}{
		{"origin", 0, 0, 32, tile.C(0, 0)},
		{"inside_first", 31.9, 0.5, 32, tile.C(0, 0)},
		{"negative", -0.1, -32, 32, tile.C(-1, -1)},
		{"default_size", 64, 96, 0, tile.C(2, 3)},
		{"clamped", math.MaxFloat64, -math.MaxFloat64, 32, tile.C(math.MaxInt32, math.MinInt32)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CellAt(c.wx, c.wy, c.size); got != c.want {
				t.Fatalf("CellAt(%v, %v) = %s, want %s", c.wx, c.wy, got, c.want)
			}
		})
	}
}

func TestVisibleCells(t *testing.T) {
	cases := []struct {
		name                   string
		left, top, w, h        float64
		minX, minY, maxX, maxY int
	}{
		{"aligned", 0, 0, 64, 32, 0, 0, 1, 0},
		{"offset", 16, 16, 64, 32, 0, 0, 2, 1},
		{"negative", -40, -10, 40, 10, -2, -1, -1, -1},
		{"empty", 5, 5, 0, 0, 0, 0, 0, 0},
		{"past_max", float64(math.MaxInt32-1) * 32, 0, 128, 32, math.MaxInt32 - 1, 0, math.MaxInt32, 0},
		{"past_min", float64(math.MinInt32)*32 - 64, -32, 128, 32, math.MinInt32, -1, math.MinInt32 + 1, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			minX, minY, maxX, maxY := VisibleCells(c.left, c.top, c.w, c.h, 32)
			if minX != c.minX || minY != c.minY || maxX != c.maxX || maxY != c.maxY {
				t.Fatalf("VisibleCells = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					minX, minY, maxX, maxY, c.minX, c.minY, c.maxX, c.maxY)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0.5, 5},
		{4, 8, 0, 4},
		{4, 8, 1, 8},
		{-10, 10, 0.25, -5},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestVisibleCellsMatchCellAt(t *testing.T) {
	// every cell in range must be the one CellAt names for that pixel
	cases := []struct {
		name      string
		left, top float64
	}{
		{"origin", 0, 0},
		{"high", float64(math.MaxInt32) * 32, float64(math.MaxInt32) * 32},
		{"low", float64(math.MinInt32)*32 - 1e6, float64(math.MinInt32)*32 - 1e6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			minX, minY, _, _ := VisibleCells(c.left, c.top, 64, 64, 32)
			got := CellAt(c.left, c.top, 32)
			if got != tile.C(int32(minX), int32(minY)) {
				t.Fatalf("CellAt = %s, VisibleCells min = (%d,%d)", got, minX, minY)
			}
		})
	}
}

func TestInCellRange(t *testing.T) {
	cases := map[int]bool{
		0:                 true,
		math.MaxInt32:     true,
		math.MinInt32:     true,
		math.MaxInt32 + 1: false,
		math.MinInt32 - 1: false,
	}
	for v, want := range cases {
		if got := InCellRange(v); got != want {
			t.Fatalf("InCellRange(%d) = %v, want %v", v, got, want)
		}
	}
}
