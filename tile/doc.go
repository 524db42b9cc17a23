// Package tile picks a sprite for a grid cell from a weighted list of options.
//
// Selection is a pure function of the cell coordinate and the ordered option
// list: the coordinate is mixed into a seed, a local xorshift128 generator is
// seeded from it, and one draw over the cumulative weight picks the option.
// The same cell always renders the same sprite, across redraws and processes.
package tile
