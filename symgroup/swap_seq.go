package symgroup

import (
	"encoding/json"
	"strings"

	"github.com/gammazero/deque"
)

// A SwapSeq is a word of transpositions s1 s2 ... sk which
// represents the product s1∘s2∘...∘sk.
//
// The last swap in the sequence is the first one to act on
// a point. Words are not simplified automatically; call
// Reduce() to cancel redundant swaps.
type SwapSeq struct {
	swaps deque.Deque[Swap]
}

// NewSwapSeq creates the word for the given swaps, in
// order.
func NewSwapSeq(swaps ...Swap) *SwapSeq {
	res := &SwapSeq{}
	for _, s := range swaps {
		res.swaps.PushBack(s)
	}
	return res
}

// IdentitySwapSeq creates an empty word.
//
// An empty word fixes every point, so ord is not needed.
func IdentitySwapSeq(ord uint8) *SwapSeq {
	return NewSwapSeq()
}

// SwapSeqFromInvolutions creates the two-element word
// left∘right.
func SwapSeqFromInvolutions(left, right Swap) *SwapSeq {
	return NewSwapSeq(left, right)
}

// Len returns the number of swaps in the word.
func (s *SwapSeq) Len() int {
	return s.swaps.Len()
}

// At returns the i-th swap, counting from the left.
func (s *SwapSeq) At(i int) Swap {
	return s.swaps.At(i)
}

// Swaps returns a copy of the word, from left to right.
func (s *SwapSeq) Swaps() []Swap {
	res := make([]Swap, s.swaps.Len())
	for i := range res {
		res[i] = s.swaps.At(i)
	}
	return res
}

// Clone creates an independent copy of the word.
func (s *SwapSeq) Clone() *SwapSeq {
	return NewSwapSeq(s.Swaps()...)
}

// Equal checks if two words contain exactly the same swaps
// in the same order.
//
// Use the package-level Equal() to compare the mappings
// represented by two words instead.
func (s *SwapSeq) Equal(other *SwapSeq) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// ComposeLeft replaces s with other∘s.
func (s *SwapSeq) ComposeLeft(other Swap) {
	s.swaps.PushFront(other)
}

// ComposeRight replaces s with s∘other.
func (s *SwapSeq) ComposeRight(other Swap) {
	s.swaps.PushBack(other)
}

// Compose concatenates two words into a new word for
// s∘right.
func (s *SwapSeq) Compose(right *SwapSeq) *SwapSeq {
	res := s.Clone()
	for i := 0; i < right.Len(); i++ {
		res.swaps.PushBack(right.At(i))
	}
	return res
}

func (s *SwapSeq) Apply(v uint8) uint8 {
	for i := s.swaps.Len() - 1; i >= 0; i-- {
		v = s.swaps.At(i).Apply(v)
	}
	return v
}

// Order returns the largest order of any swap in the word,
// or 1 for the empty word.
func (s *SwapSeq) Order() uint8 {
	ord := uint8(1)
	for i := 0; i < s.swaps.Len(); i++ {
		if o := s.swaps.At(i).Order(); o > ord {
			ord = o
		}
	}
	return ord
}

// IsIdentity checks if the word evaluates to the identity.
func (s *SwapSeq) IsIdentity() bool {
	if s.swaps.Len() == 0 {
		return true
	}
	return s.Evaluate().IsIdentity()
}

// Evaluate computes the dense form of the word.
func (s *SwapSeq) Evaluate() OneLine {
	switch s.swaps.Len() {
	case 0:
		return IdentityOneLine(1)
	case 1:
		swap := s.swaps.Front()
		res := IdentityOneLine(swap.Order())
		res.ComposeSwapRight(swap)
		return res
	case 2:
		return OneLineFromInvolutions(s.swaps.Front(), s.swaps.Back())
	default:
		res := IdentityOneLine(s.Order())
		for i := 0; i < s.swaps.Len(); i++ {
			res.ComposeSwapRight(s.swaps.At(i))
		}
		return res
	}
}

// Reduce simplifies the word without changing the mapping
// it represents.
//
// Swaps are scanned from right to left. Each swap commutes
// leftward past the disjoint swaps in front of it, and it
// cancels with the first equal swap it reaches. A swap
// which shares a point with another swap cannot move past
// it. Degenerate swaps are dropped.
//
// The result never contains a pair of equal swaps which
// could be made adjacent by commuting disjoint swaps, so
// reducing a reduced word leaves it unchanged.
func (s *SwapSeq) Reduce() {
	var out deque.Deque[Swap]
	for i := s.swaps.Len() - 1; i >= 0; i-- {
		curr := s.swaps.At(i)
		if curr.IsIdentity() {
			continue
		}
		if idx := cancellingIndex(&out, curr); idx >= 0 {
			out.Remove(idx)
		} else {
			out.PushFront(curr)
		}
	}
	s.swaps = out
}

// cancellingIndex finds the first swap in out equal to
// curr that curr can reach by commuting past disjoint
// swaps, or returns -1.
func cancellingIndex(out *deque.Deque[Swap], curr Swap) int {
	for i := 0; i < out.Len(); i++ {
		item := out.At(i)
		if item == curr {
			return i
		} else if item.Overlaps(curr) {
			return -1
		}
	}
	return -1
}

// String formats the word as a product of transpositions,
// such as "(1 2)(2 3)". The empty word is "()".
func (s *SwapSeq) String() string {
	if s.swaps.Len() == 0 {
		return "()"
	}
	var b strings.Builder
	for i := 0; i < s.swaps.Len(); i++ {
		b.WriteString(s.swaps.At(i).String())
	}
	return b.String()
}

func (s *SwapSeq) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Swaps())
}

func (s *SwapSeq) UnmarshalJSON(data []byte) error {
	var swaps []Swap
	if err := json.Unmarshal(data, &swaps); err != nil {
		return err
	}
	*s = *NewSwapSeq(swaps...)
	return nil
}
