package symgroup

import (
	"encoding/json"
	"fmt"
)

// A Swap is a transposition (a b), exchanging two points
// and fixing all others.
//
// The points are stored in sorted order.
type Swap struct {
	low  uint8
	high uint8
}

// Involution is another name for a transposition, which
// is its own inverse.
type Involution = Swap

// NewSwap creates the transposition of a and b.
//
// If a == b, the result is a degenerate swap which acts
// as the identity.
func NewSwap(a, b uint8) Swap {
	if a == 0 || b == 0 {
		domainPanic("NewSwap", 0)
	}
	if a > b {
		a, b = b, a
	}
	return Swap{low: a, high: b}
}

// Low returns the smaller of the two points.
func (s Swap) Low() uint8 {
	return s.low
}

// High returns the larger of the two points.
func (s Swap) High() uint8 {
	return s.high
}

// Tuple returns (low, high).
func (s Swap) Tuple() (uint8, uint8) {
	return s.low, s.high
}

// Contains checks if x is one of the swapped points.
func (s Swap) Contains(x uint8) bool {
	return s.low == x || s.high == x
}

// Overlaps checks if two swaps share a point.
//
// Swaps which do not overlap commute with each other.
func (s Swap) Overlaps(other Swap) bool {
	return other.Contains(s.low) || other.Contains(s.high)
}

func (s Swap) Apply(v uint8) uint8 {
	if v == s.low {
		return s.high
	} else if v == s.high {
		return s.low
	}
	return v
}

func (s Swap) Order() uint8 {
	return s.high
}

// IsIdentity is only true for degenerate swaps (a a).
func (s Swap) IsIdentity() bool {
	return s.low == s.high
}

func (s Swap) String() string {
	return fmt.Sprintf("(%d %d)", s.low, s.high)
}

func (s Swap) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{int(s.low), int(s.high)})
}

func (s *Swap) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	for _, x := range pair {
		if x < 1 || x > MaxOneLineOrder {
			return fmt.Errorf("%w: swap point %d", ErrInvalidPermutation, x)
		}
	}
	*s = NewSwap(uint8(pair[0]), uint8(pair[1]))
	return nil
}
