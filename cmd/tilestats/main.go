package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/milk9111/randomtile/assets"
	"github.com/milk9111/randomtile/prefabs"
	"github.com/milk9111/randomtile/tile"
)

const maxSide = 4096

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

type region struct {
	x, y int
	w, h int
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tilestats", flag.ContinueOnError)
	fs.SetOutput(stdout)
	specPath := fs.String("spec", "", "random tile spec (.yaml); defaults to the embedded prefabs/random_tile.yaml")
	x := fs.Int("x", 0, "left cell of the sampled region")
	y := fs.Int("y", 0, "top cell of the sampled region")
	w := fs.Int("w", 100, "region width in cells")
	h := fs.Int("h", 100, "region height in cells")
	pngPath := fs.String("png", "", "write a one-pixel-per-cell selection map to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := region{x: *x, y: *y, w: *w, h: *h}
	if err := r.validate(); err != nil {
		return err
	}

	spec, err := loadSpec(*specPath)
	if err != nil {
		return err
	}
	rt, err := spec.Build()
	if err != nil {
		return fmt.Errorf("build %s: %w", spec.Name, err)
	}

	counts, picks := sample(rt, r)
	if err := report(stdout, spec, rt, r, counts); err != nil {
		return err
	}

	if *pngPath != "" {
		if err := writeMap(*pngPath, rt, r, picks); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", *pngPath)
	}
	return nil
}

func (r region) validate() error {
	if r.w <= 0 || r.h <= 0 || r.w > maxSide || r.h > maxSide {
		return fmt.Errorf("region size %dx%d must be within 1..%d", r.w, r.h, maxSide)
	}
	if r.x < math.MinInt32 || r.y < math.MinInt32 || r.x > math.MaxInt32-(r.w-1) || r.y > math.MaxInt32-(r.h-1) {
		return fmt.Errorf("region (%d,%d) %dx%d leaves the int32 cell range", r.x, r.y, r.w, r.h)
	}
	return nil
}

func loadSpec(path string) (*prefabs.RandomTileSpec, error) {
	if path == "" {
		return prefabs.LoadRandomTileSpec(prefabs.DefaultSpec)
	}
	return prefabs.LoadFile(path)
}

// sample returns per-option counts and the option index picked per cell,
// row-major.
func sample(rt *tile.RandomTile[assets.SpriteRef], r region) ([]int, []int) {
	counts := make([]int, rt.Len())
	picks := make([]int, 0, r.w*r.h)
	for cy := 0; cy < r.h; cy++ {
		for cx := 0; cx < r.w; cx++ {
			i := rt.Index(tile.C(int32(r.x+cx), int32(r.y+cy)))
			picks = append(picks, i)
			if i >= 0 {
				counts[i]++
			}
		}
	}
	return counts, picks
}

func report(out io.Writer, spec *prefabs.RandomTileSpec, rt *tile.RandomTile[assets.SpriteRef], r region, counts []int) error {
	cells := r.w * r.h
	fmt.Fprintf(out, "spec %s: %d cells from (%d,%d) size %dx%d, total weight %d\n",
		spec.Name, cells, r.x, r.y, r.w, r.h, rt.TotalWeight())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "option\tsprite\tweight\tcount\tobserved\texpected")
	worst := 0.0
	for i, o := range rt.Options() {
		observed := float64(counts[i]) / float64(cells)
		expected := rt.Probability(i)
		worst = math.Max(worst, math.Abs(observed-expected))
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.2f%%\t%.2f%%\n", i, o.Value, o.Weight, counts[i], observed*100, expected*100)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "max deviation %.2f%%\n", worst*100)
	return err
}

func writeMap(path string, rt *tile.RandomTile[assets.SpriteRef], r region, picks []int) error {
	opts := rt.Options()
	img := image.NewRGBA(image.Rect(0, 0, r.w, r.h))
	for i, pick := range picks {
		if pick < 0 {
			continue
		}
		img.SetRGBA(i%r.w, i/r.w, assets.Palette(int(opts[pick].Value)))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
