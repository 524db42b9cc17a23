package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSpec is the random tile previewed when no spec is given.
const DefaultSpec = "random_tile.yaml"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns prefabs/<name> from disk when present, otherwise the embedded
// copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
