package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/randomtile/assets"
	"github.com/milk9111/randomtile/tile"
	"gopkg.in/yaml.v3"
)

// LoadSpec loads a named prefab and decodes it into T. Unknown keys are
// rejected.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := decodeSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func decodeSpec[T any](data []byte) (T, error) {
	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return spec, fmt.Errorf("%w: empty spec", tile.ErrInvalidConfig)
		}
		return spec, err
	}
	return spec, nil
}

// RandomTileSpec configures one random tile: the sheet its sprites come from
// and the weighted sprite list, in selection order.
type RandomTileSpec struct {
	Name    string       `yaml:"name"`
	Sheet   string       `yaml:"sheet,omitempty"`
	TileW   int          `yaml:"tile_w"`
	TileH   int          `yaml:"tile_h"`
	Sprites []SpriteSpec `yaml:"sprites"`
}

type SpriteSpec struct {
	Index  int `yaml:"index"`
	Weight int `yaml:"weight"`
}

// LoadRandomTileSpec loads a named prefab, disk first then embedded.
func LoadRandomTileSpec(name string) (*RandomTileSpec, error) {
	spec, err := LoadSpec[RandomTileSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// LoadFile loads a spec from an arbitrary path.
func LoadFile(path string) (*RandomTileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := ParseRandomTileSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}

// ParseRandomTileSpec decodes and validates a spec. Unknown keys are
// rejected so a misspelt "wieght" does not silently become zero.
func ParseRandomTileSpec(data []byte) (*RandomTileSpec, error) {
	spec, err := decodeSpec[RandomTileSpec](data)
	if err != nil {
		if errors.Is(err, tile.ErrInvalidConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s RandomTileSpec) Validate() error {
	if s.TileW <= 0 || s.TileH <= 0 {
		return fmt.Errorf("%w: tile size %dx%d", tile.ErrInvalidConfig, s.TileW, s.TileH)
	}
	if len(s.Sprites) == 0 {
		return fmt.Errorf("%w: no sprites", tile.ErrInvalidConfig)
	}
	for i, sp := range s.Sprites {
		if sp.Index < 0 {
			return fmt.Errorf("%w: sprite %d has negative index %d", tile.ErrInvalidConfig, i, sp.Index)
		}
		if sp.Weight < 0 {
			return fmt.Errorf("%w: sprite %d has negative weight %d", tile.ErrInvalidConfig, i, sp.Weight)
		}
	}
	return nil
}

// Build validates the spec and returns the tile the renderer selects from.
func (s RandomTileSpec) Build() (*tile.RandomTile[assets.SpriteRef], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts := make([]tile.WeightedOption[assets.SpriteRef], len(s.Sprites))
	for i, sp := range s.Sprites {
		opts[i] = tile.Option(assets.SpriteRef(sp.Index), sp.Weight)
	}
	return tile.NewRandomTile(opts...)
}

// MaxIndex returns the highest sprite index referenced, or -1.
func (s RandomTileSpec) MaxIndex() int {
	hi := -1
	for _, sp := range s.Sprites {
		if sp.Index > hi {
			hi = sp.Index
		}
	}
	return hi
}
