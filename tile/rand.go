package tile

import "math"

// Rand is a xorshift128 generator. The zero value is not usable; build one
// with NewRand. A Rand is not safe for concurrent use, and Select never
// shares one between calls.
type Rand struct {
	s0, s1, s2, s3 uint32
}

// NewRand seeds a generator. The remaining state words are expanded from the
// seed with Knuth's multiplier so nearby seeds diverge quickly.
func NewRand(seed int32) *Rand {
	r := newRand(seed)
	return &r
}

func newRand(seed int32) Rand {
	var r Rand
	r.s0 = uint32(seed)
	r.s1 = r.s0*1812433253 + 1
	r.s2 = r.s1*1812433253 + 1
	r.s3 = r.s2*1812433253 + 1
	return r
}

// Uint32 returns the next 32 bits of the sequence.
func (r *Rand) Uint32() uint32 {
	t := r.s0 ^ (r.s0 << 11)
	r.s0, r.s1, r.s2 = r.s1, r.s2, r.s3
	r.s3 = r.s3 ^ (r.s3 >> 19) ^ t ^ (t >> 8)
	return r.s3
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if uint64(n) <= math.MaxUint32 {
		return int(uint64(r.Uint32()) % uint64(n))
	}
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	return int((hi<<32 | lo) % uint64(n))
}
