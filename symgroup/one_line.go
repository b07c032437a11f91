package symgroup

import (
	"encoding/json"
	"fmt"
)

// MaxOneLineOrder is the largest number of points a
// OneLine can hold, since each image is a single byte.
const MaxOneLineOrder = 255

// A OneLine is the dense representation of a permutation,
// where index i stores the image of point i+1.
//
// A OneLine is not checked when it is created. Use
// Validate() to verify that it is a bijection.
type OneLine []uint8

// NewOneLine creates a OneLine from a list of images.
func NewOneLine(values ...uint8) OneLine {
	res := make(OneLine, len(values))
	copy(res, values)
	return res
}

// IdentityOneLine creates the identity permutation over
// ord points.
func IdentityOneLine(ord uint8) OneLine {
	res := make(OneLine, ord)
	for i := range res {
		res[i] = uint8(i + 1)
	}
	return res
}

// OneLineFromInvolutions computes left∘right directly,
// without an intermediate identity permutation.
func OneLineFromInvolutions(left, right Swap) OneLine {
	ord := left.high
	if right.high > ord {
		ord = right.high
	}
	res := make(OneLine, ord)
	for i := range res {
		res[i] = left.Apply(right.Apply(uint8(i + 1)))
	}
	return res
}

// Validate checks that o is a bijection on [1, Order()].
func (o OneLine) Validate() error {
	if len(o) > MaxOneLineOrder {
		return fmt.Errorf("%w: %d points exceeds maximum of %d", ErrInvalidPermutation,
			len(o), MaxOneLineOrder)
	}
	seen := make([]bool, len(o))
	for i, x := range o {
		if x == 0 || int(x) > len(o) {
			return fmt.Errorf("%w: image of %d is %d, outside [1, %d]", ErrInvalidPermutation,
				i+1, x, len(o))
		}
		if seen[x-1] {
			return fmt.Errorf("%w: image %d appears more than once", ErrInvalidPermutation, x)
		}
		seen[x-1] = true
	}
	return nil
}

func (o OneLine) Apply(v uint8) uint8 {
	if int(v) > len(o) {
		return v
	}
	return o[int(v)-1]
}

func (o OneLine) Order() uint8 {
	if len(o) > MaxOneLineOrder {
		domainPanic("OneLine.Order", len(o))
	}
	return uint8(len(o))
}

func (o OneLine) IsIdentity() bool {
	for i, x := range o {
		if int(x) != i+1 {
			return false
		}
	}
	return true
}

// Compose computes o∘right.
//
// The result has the larger order of the two operands,
// and neither operand is modified.
func (o OneLine) Compose(right Mapping) OneLine {
	return Compose(o, right)
}

// ComposeSwapRight replaces o with o∘s.
//
// When both points of s are already in range, this is a
// constant-time exchange of two entries. Otherwise, the
// permutation is rebuilt with the larger order.
func (o *OneLine) ComposeSwapRight(s Swap) {
	if int(s.high) <= len(*o) {
		a, b := int(s.low)-1, int(s.high)-1
		(*o)[a], (*o)[b] = (*o)[b], (*o)[a]
		return
	}
	*o = Compose(*o, s)
}

// Inverse computes the inverse permutation.
//
// The result is only meaningful if o is valid.
func (o OneLine) Inverse() OneLine {
	reverse := make(OneLine, len(o))
	for i, x := range o {
		reverse[x-1] = uint8(i + 1)
	}
	return reverse
}

// Clone creates a copy of o which can be modified
// independently.
func (o OneLine) Clone() OneLine {
	return NewOneLine(o...)
}

// String formats o in cycle notation.
func (o OneLine) String() string {
	return CycleNotation(o)
}

// MarshalJSON encodes o as an array of numbers rather than
// the base64 string used for byte slices.
func (o OneLine) MarshalJSON() ([]byte, error) {
	images := make([]int, len(o))
	for i, x := range o {
		images[i] = int(x)
	}
	return json.Marshal(images)
}

// UnmarshalJSON decodes either an array of images or a
// string in cycle notation.
func (o *OneLine) UnmarshalJSON(data []byte) error {
	var images []int
	if json.Unmarshal(data, &images) == nil {
		res := make(OneLine, len(images))
		for i, x := range images {
			if x < 1 || x > MaxOneLineOrder {
				return fmt.Errorf("%w: image of %d is %d", ErrInvalidPermutation, i+1, x)
			}
			res[i] = uint8(x)
		}
		if err := res.Validate(); err != nil {
			return err
		}
		*o = res
		return nil
	}

	var notation string
	if err := json.Unmarshal(data, &notation); err != nil {
		return err
	}
	seq, err := ParseCycleNotation(notation)
	if err != nil {
		return err
	}
	*o = seq.Evaluate()
	return nil
}
