package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the directory sheet paths in a spec are resolved against.
const Dir = "assets"

// LoadImage decodes a sprite sheet. Relative paths are tried as given first,
// then under Dir.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty sheet path")
	}

	b, err := os.ReadFile(path)
	if err != nil && !filepath.IsAbs(path) {
		b, err = os.ReadFile(filepath.Join(Dir, filepath.FromSlash(cleanAssetPath(path))))
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
