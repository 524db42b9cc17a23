package assets

import (
	"image"
	"math"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

var palette = []color.RGBA{
	colornames.Forestgreen,
	colornames.Olivedrab,
	colornames.Sienna,
	colornames.Steelblue,
	colornames.Goldenrod,
	colornames.Indianred,
	colornames.Mediumpurple,
	colornames.Teal,
	colornames.Darkkhaki,
	colornames.Slategray,
	colornames.Peru,
	colornames.Cadetblue,
}

// MissingColor fills cells whose sprite is absent from the sheet.
var MissingColor = colornames.Magenta

// Palette returns a stable colour for a sprite index.
func Palette(i int) color.RGBA {
	n := len(palette)
	return palette[((i%n)+n)%n]
}

// MaxPlaceholderSprites caps how many tiles PlaceholderLayout lays out.
const MaxPlaceholderSprites = 1024

// PlaceholderLayout returns a near-square grid holding n sprites, n clamped
// to [1, MaxPlaceholderSprites]. It reports whether n was cut down.
func PlaceholderLayout(n int) (cols, rows int, capped bool) {
	if n < 1 {
		n = 1
	}
	if n > MaxPlaceholderSprites {
		n = MaxPlaceholderSprites
		capped = true
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows, capped
}

// Placeholder builds a cols x rows sheet with one solid, outlined tile per
// index so a spec can be previewed before any art exists.
func Placeholder(cols, rows, tileW, tileH int) *image.RGBA {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))
	for i := 0; i < cols*rows; i++ {
		r, ok := SpriteRef(i).Rect(img.Bounds(), tileW, tileH)
		if !ok {
			continue
		}
		c := Palette(i)
		draw.Draw(img, r, &image.Uniform{C: darken(c)}, image.Point{}, draw.Src)
		if r.Dx() > 2 && r.Dy() > 2 {
			draw.Draw(img, r.Inset(1), &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
	return img
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
