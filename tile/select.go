package tile

// WeightedOption pairs a sprite identifier with its relative likelihood.
type WeightedOption[T any] struct {
	Value  T
	Weight int
}

// Option is shorthand for WeightedOption[T]{Value: v, Weight: w}.
func Option[T any](v T, w int) WeightedOption[T] {
	return WeightedOption[T]{Value: v, Weight: w}
}

// Select returns the option chosen for cell c, or false when options is
// empty.
//
// Weights are laid end to end over [0, total) and the option covering one
// seeded draw wins, so a zero-weight option is never chosen while any weight
// is positive. When every weight is zero the first option is returned.
//
// Weights must be non-negative and their sum must fit in an int; NewRandomTile
// checks both.
func Select[T any](c Coord, options []WeightedOption[T]) (T, bool) {
	i := SelectIndex(c, options)
	if i < 0 {
		var zero T
		return zero, false
	}
	return options[i].Value, true
}

// SelectIndex is Select returning the position of the chosen option, or -1
// when options is empty.
func SelectIndex[T any](c Coord, options []WeightedOption[T]) int {
	if len(options) == 0 {
		return -1
	}

	total := 0
	for _, o := range options {
		total += o.Weight
	}
	if total <= 0 {
		return 0
	}

	rng := newRand(Seed(c))
	r := rng.Intn(total)
	for i, o := range options {
		r -= o.Weight
		if r < 0 {
			return i
		}
	}

	// only reachable with negative weights
	return len(options) - 1
}
