package tile

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every construction error in this module.
var ErrInvalidConfig = errors.New("invalid random tile configuration")

// RandomTile is a validated, immutable option list. It is what a host tile
// map holds per tile asset; TileData is called once per visible cell.
type RandomTile[T any] struct {
	options []WeightedOption[T]
	total   int
}

// NewRandomTile copies options and rejects negative weights or a total that
// overflows int.
func NewRandomTile[T any](options ...WeightedOption[T]) (*RandomTile[T], error) {
	total := 0
	for i, o := range options {
		if o.Weight < 0 {
			return nil, fmt.Errorf("%w: option %d has negative weight %d", ErrInvalidConfig, i, o.Weight)
		}
		if total > math.MaxInt-o.Weight {
			return nil, fmt.Errorf("%w: cumulative weight overflows at option %d", ErrInvalidConfig, i)
		}
		total += o.Weight
	}

	opts := make([]WeightedOption[T], len(options))
	copy(opts, options)
	return &RandomTile[T]{options: opts, total: total}, nil
}

// MustRandomTile is like NewRandomTile but panics on error.
func MustRandomTile[T any](options ...WeightedOption[T]) *RandomTile[T] {
	t, err := NewRandomTile(options...)
	if err != nil {
		panic(err)
	}
	return t
}

// TileData returns the sprite for cell c. A nil tile or an empty option list
// selects nothing.
func (t *RandomTile[T]) TileData(c Coord) (T, bool) {
	if t == nil {
		var zero T
		return zero, false
	}
	return Select(c, t.options)
}

// Index returns the position of the option chosen for c, or -1.
func (t *RandomTile[T]) Index(c Coord) int {
	if t == nil {
		return -1
	}
	return SelectIndex(c, t.options)
}

// Options returns a copy of the configured options in order.
func (t *RandomTile[T]) Options() []WeightedOption[T] {
	if t == nil {
		return nil
	}
	out := make([]WeightedOption[T], len(t.options))
	copy(out, t.options)
	return out
}

func (t *RandomTile[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.options)
}

func (t *RandomTile[T]) TotalWeight() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Probability returns the expected share of cells that render option i.
func (t *RandomTile[T]) Probability(i int) float64 {
	if t == nil || i < 0 || i >= len(t.options) {
		return 0
	}
	if t.total <= 0 {
		if i == 0 {
			return 1
		}
		return 0
	}
	return float64(t.options[i].Weight) / float64(t.total)
}
