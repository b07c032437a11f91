package symgroup

import "fmt"

// MaxPerm64Order is the number of points a Perm64 holds.
const MaxPerm64Order = nibbleCount

const perm64Identity Perm64 = 0xfedcba9876543210

// A Perm64 is a packed permutation of at most 16 points.
//
// Nibble k (counting from the least significant) stores
// the image of point k+1, minus one. For example, the
// identity is 0xfedcba9876543210 and the swap (2 4) is
// 0xfedcba9876541230.
type Perm64 uint64

// IdentityPerm64 returns the identity permutation.
//
// Every Perm64 has room for 16 points, so ord only needs
// to be in range.
func IdentityPerm64(ord uint8) Perm64 {
	if ord > MaxPerm64Order {
		domainPanic("IdentityPerm64", int(ord))
	}
	return perm64Identity
}

// NewPerm64 packs any mapping of order at most 16.
func NewPerm64(m Mapping) Perm64 {
	ord := m.Order()
	if ord > MaxPerm64Order {
		domainPanic("NewPerm64", int(ord))
	}
	bits := uint64(perm64Identity)
	for k := 0; k < int(ord); k++ {
		bits = setNibble(bits, k, m.Apply(uint8(k+1))-1)
	}
	return Perm64(bits)
}

// Perm64FromInvolutions computes left∘right directly from
// the two swaps.
func Perm64FromInvolutions(left, right Swap) Perm64 {
	if left.high > MaxPerm64Order || right.high > MaxPerm64Order {
		domainPanic("Perm64FromInvolutions", int(max(left.high, right.high)))
	}
	var bits uint64
	for k := 0; k < nibbleCount; k++ {
		bits = setNibble(bits, k, left.Apply(right.Apply(uint8(k+1)))-1)
	}
	return Perm64(bits)
}

func (p Perm64) Apply(v uint8) uint8 {
	if v > MaxPerm64Order {
		return v
	}
	return nibble(uint64(p), int(v)-1) + 1
}

// Order returns the largest point which is not fixed, or
// 1 for the identity.
func (p Perm64) Order() uint8 {
	for k := nibbleCount - 1; k >= 0; k-- {
		if nibble(uint64(p), k) != uint8(k) {
			return uint8(k + 1)
		}
	}
	return 1
}

func (p Perm64) IsIdentity() bool {
	return p == perm64Identity
}

// Compose computes p∘right.
func (p Perm64) Compose(right Perm64) Perm64 {
	var bits uint64
	for k := 0; k < nibbleCount; k++ {
		bits = setNibble(bits, k, p.Apply(right.Apply(uint8(k+1)))-1)
	}
	return Perm64(bits)
}

// Inverse computes the inverse permutation.
func (p Perm64) Inverse() Perm64 {
	var bits uint64
	for k := 0; k < nibbleCount; k++ {
		bits = setNibble(bits, int(nibble(uint64(p), k)), uint8(k))
	}
	return Perm64(bits)
}

// OneLine unpacks p into a OneLine of order p.Order().
func (p Perm64) OneLine() OneLine {
	res := make(OneLine, p.Order())
	for i := range res {
		res[i] = p.Apply(uint8(i + 1))
	}
	return res
}

func (p Perm64) String() string {
	return fmt.Sprintf("%#016x", uint64(p))
}
