package tile

// Seed mixes a coordinate into a generator seed.
//
// The mix runs on 64-bit signed integers with wrap-around and arithmetic
// right shifts, then truncates to 32 bits. Changing any step changes every
// previewed map, so the order of operations is fixed.
func Seed(c Coord) int32 {
	h := int64(c.X)
	h = h + 0xabcd1234 + (h << 15)
	h = (h + 0x0987efab) ^ (h >> 11)
	h ^= int64(c.Y)
	h = h + 0x46ac12fd + (h << 7)
	h = (h + 0xbe9730af) ^ (h << 11)
	return int32(h)
}
