package symgroup

import "math/rand"

// RandomOneLine samples a uniformly random permutation of
// n points.
func RandomOneLine(rng *rand.Rand, n uint8) OneLine {
	res := make(OneLine, n)
	for i, x := range rng.Perm(int(n)) {
		res[i] = uint8(x + 1)
	}
	return res
}

// RandomSwap samples a transposition of two distinct
// points in [1, n].
//
// The value n must be at least 2.
func RandomSwap(rng *rand.Rand, n uint8) Swap {
	if n < 2 {
		domainPanic("RandomSwap", int(n))
	}
	i1 := rng.Intn(int(n))
	i2 := rng.Intn(int(n) - 1)
	if i2 >= i1 {
		i2++
	}
	return NewSwap(uint8(i1+1), uint8(i2+1))
}

// RandomSwapSeq samples a word of length random swaps of
// points in [1, n].
func RandomSwapSeq(rng *rand.Rand, n uint8, length int) *SwapSeq {
	res := NewSwapSeq()
	for i := 0; i < length; i++ {
		res.ComposeRight(RandomSwap(rng, n))
	}
	return res
}
