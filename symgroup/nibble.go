package symgroup

// Perm64 packs sixteen 4-bit fields into a uint64. Field k
// occupies bits [4k, 4k+4), so field 0 is the low nibble.

const nibbleCount = 16

// nibble returns field k of bits.
func nibble(bits uint64, k int) uint8 {
	if k < 0 || k >= nibbleCount {
		panic("nibble index out of range")
	}
	return uint8(bits>>(4*uint(k))) & 0xF
}

// setNibble returns bits with field k replaced by x.
func setNibble(bits uint64, k int, x uint8) uint64 {
	if k < 0 || k >= nibbleCount {
		panic("nibble index out of range")
	}
	shift := 4 * uint(k)
	return bits&^(0xF<<shift) | uint64(x&0xF)<<shift
}
