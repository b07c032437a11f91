package symgroup

import "github.com/unixpickle/essentials"

// A Mapping is a permutation of the points {1, 2, ...}.
//
// Points are 1-indexed. Apply(0) is undefined and may panic.
// Every point greater than Order() is a fixed point.
type Mapping interface {
	// Apply returns the image of v.
	Apply(v uint8) uint8

	// Order returns the n in S_n, i.e. the size of the
	// domain this mapping acts on.
	Order() uint8
}

// An Identity is a Mapping which can tell if it is the
// identity permutation.
type Identity interface {
	Mapping

	IsIdentity() bool
}

// A Composable can be composed on the left of a right-hand
// operand of type T, producing a (possibly different)
// representation R.
//
// The result must agree with Compose(left, right).
type Composable[T any, R Mapping] interface {
	Compose(right T) R
}

var (
	_ Identity                       = OneLine(nil)
	_ Identity                       = Swap{}
	_ Identity                       = (*SwapSeq)(nil)
	_ Identity                       = Perm64(0)
	_ Composable[Mapping, OneLine]   = OneLine(nil)
	_ Composable[*SwapSeq, *SwapSeq] = (*SwapSeq)(nil)
	_ Composable[Perm64, Perm64]     = Perm64(0)
)

// Compose computes left∘right as a OneLine, so that
// the result maps v to left.Apply(right.Apply(v)).
//
// This works for any pair of representations, and every
// specialized composition must produce the same mapping.
func Compose(left, right Mapping) OneLine {
	ord := maxOrder(left, right)
	res := make(OneLine, ord)
	for i := range res {
		res[i] = left.Apply(right.Apply(uint8(i + 1)))
	}
	return res
}

// Equal checks if two mappings agree on every point, even
// if they have different representations or orders.
func Equal(a, b Mapping) bool {
	ord := maxOrder(a, b)
	for v := 1; v <= ord; v++ {
		if a.Apply(uint8(v)) != b.Apply(uint8(v)) {
			return false
		}
	}
	return true
}

func maxOrder(a, b Mapping) int {
	return essentials.MaxInt(int(a.Order()), int(b.Order()))
}
