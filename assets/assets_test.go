package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSpriteRefRect(t *testing.T) {
	sheet := image.Rect(0, 0, 64, 48)
	cases := []struct {
		name string
		ref  SpriteRef
		ok   bool
		want image.Rectangle
	}{
		{"first", 0, true, image.Rect(0, 0, 16, 16)},
		{"end_of_row", 3, true, image.Rect(48, 0, 64, 16)},
		{"second_row", 4, true, image.Rect(0, 16, 16, 32)},
		{"last", 11, true, image.Rect(48, 32, 64, 48)},
		{"past_end", 12, false, image.Rectangle{}},
		{"negative", -1, false, image.Rectangle{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.ref.Rect(sheet, 16, 16)
			if ok != c.ok || got != c.want {
				t.Fatalf("Rect(%d) = %v, %v; want %v, %v", c.ref, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestSpriteRefRectOffsetSheet(t *testing.T) {
	// sub-images keep their parent's coordinates
	sheet := image.Rect(32, 16, 64, 48)
	got, ok := SpriteRef(3).Rect(sheet, 16, 16)
	if !ok || got != image.Rect(48, 32, 64, 48) {
		t.Fatalf("Rect = %v, %v", got, ok)
	}
}

func TestSpriteRefRectTooSmall(t *testing.T) {
	if _, ok := SpriteRef(0).Rect(image.Rect(0, 0, 8, 8), 16, 16); ok {
		t.Fatalf("expected sheet smaller than one tile to fail")
	}
	if _, ok := SpriteRef(0).Rect(image.Rect(0, 0, 8, 8), 0, 16); ok {
		t.Fatalf("expected zero tile width to fail")
	}
}

func TestCount(t *testing.T) {
	if got := Count(image.Rect(0, 0, 70, 40), 16, 16); got != 8 {
		t.Fatalf("Count = %d, want 8", got)
	}
	if got := Count(image.Rect(0, 0, 70, 40), 0, 16); got != 0 {
		t.Fatalf("Count with zero width = %d, want 0", got)
	}
}

func TestPalette(t *testing.T) {
	if Palette(0) != Palette(len(palette)) {
		t.Fatalf("palette should wrap")
	}
	if Palette(-1) != Palette(len(palette)-1) {
		t.Fatalf("negative index should wrap to the end")
	}
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(4, 2, 8, 8)
	if img.Bounds() != image.Rect(0, 0, 32, 16) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for i := 0; i < 8; i++ {
		r, _ := SpriteRef(i).Rect(img.Bounds(), 8, 8)
		center := img.RGBAAt(r.Min.X+4, r.Min.Y+4)
		if center != Palette(i) {
			t.Fatalf("tile %d center = %v, want %v", i, center, Palette(i))
		}
		edge := img.RGBAAt(r.Min.X, r.Min.Y)
		if edge != darken(Palette(i)) {
			t.Fatalf("tile %d edge = %v, want outline", i, edge)
		}
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	path := filepath.Join(dir, "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	r, _, _, a := img.At(1, 1).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Fatalf("pixel (1,1) not red")
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadImage(bad); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCleanAssetPath(t *testing.T) {
	if got := cleanAssetPath("assets/tiles/grass.png"); got != "tiles/grass.png" {
		t.Fatalf("cleanAssetPath = %q", got)
	}
	if got := cleanAssetPath("grass.png"); got != "grass.png" {
		t.Fatalf("cleanAssetPath = %q", got)
	}
}

func TestPlaceholderLayout(t *testing.T) {
	cases := []struct {
		n          int
		cols, rows int
		capped     bool
	}{
		{0, 1, 1, false},
		{1, 1, 1, false},
		{4, 2, 2, false},
		{5, 3, 2, false},
		{10, 4, 3, false},
		{MaxPlaceholderSprites, 32, 32, false},
		{100001, 32, 32, true},
	}
	for _, c := range cases {
		cols, rows, capped := PlaceholderLayout(c.n)
		if cols != c.cols || rows != c.rows || capped != c.capped {
			t.Fatalf("PlaceholderLayout(%d) = %d, %d, %v; want %d, %d, %v",
				c.n, cols, rows, capped, c.cols, c.rows, c.capped)
		}
		want := c.n
		if want < 1 {
			want = 1
		}
		if want > MaxPlaceholderSprites {
			want = MaxPlaceholderSprites
		}
		if cols*rows < want {
			t.Fatalf("PlaceholderLayout(%d) holds %d sprites, need %d", c.n, cols*rows, want)
		}
	}
}
