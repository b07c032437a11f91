package symgroup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"
)

// FromCycleNotation creates a word from a list of cycles.
//
// A cycle (c1 c2 ... cm) maps c1 to c2, c2 to c3, and so
// on, with cm mapping back to c1. It is lowered to the
// word (c1 c2)(c2 c3)...(cm-1 cm). Cycles are composed from
// left to right, and cycles with fewer than two points are
// skipped.
func FromCycleNotation(cycles [][]uint8) (*SwapSeq, error) {
	res := NewSwapSeq()
	for _, cyc := range cycles {
		if len(cyc) < 2 {
			continue
		}
		seen := map[uint8]bool{}
		for i, x := range cyc {
			if x == 0 {
				return nil, fmt.Errorf("%w: cycle contains point 0", ErrInvalidPermutation)
			}
			if seen[x] {
				return nil, fmt.Errorf("%w: point %d repeated in cycle", ErrInvalidPermutation, x)
			}
			seen[x] = true
			if i > 0 {
				res.ComposeRight(NewSwap(cyc[i-1], x))
			}
		}
	}
	return res, nil
}

// ParseCycleNotation parses a string like "(1 2 3)(4 5)"
// into a word. Points within a cycle may be separated by
// spaces or commas. The strings "" and "()" both denote
// the identity.
func ParseCycleNotation(s string) (*SwapSeq, error) {
	cycles, err := splitCycles(s)
	if err != nil {
		return nil, essentials.AddCtx("parse cycle notation", err)
	}
	return FromCycleNotation(cycles)
}

func splitCycles(s string) ([][]uint8, error) {
	var cycles [][]uint8
	rest := strings.TrimSpace(s)
	for rest != "" {
		if rest[0] != '(' {
			return nil, fmt.Errorf("expected '(' but got %q", rest[:1])
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, errors.New("unterminated cycle")
		}
		var cycle []uint8
		fields := strings.FieldsFunc(rest[1:end], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, field := range fields {
			x, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return nil, err
			}
			cycle = append(cycle, uint8(x))
		}
		cycles = append(cycles, cycle)
		rest = strings.TrimSpace(rest[end+1:])
	}
	return cycles, nil
}

// Cycles decomposes m into its non-trivial disjoint
// cycles.
//
// Each cycle starts at its smallest point, and cycles are
// sorted by their first point. Fixed points are omitted.
func Cycles(m Mapping) [][]uint8 {
	ord := int(m.Order())
	visited := make([]bool, ord+1)
	var res [][]uint8
	for v := 1; v <= ord; v++ {
		if visited[v] || m.Apply(uint8(v)) == uint8(v) {
			continue
		}
		var cycle []uint8
		for x := uint8(v); !visited[x]; x = m.Apply(x) {
			visited[x] = true
			cycle = append(cycle, x)
		}
		res = append(res, cycle)
	}
	return res
}

// CycleNotation formats m as a product of disjoint cycles,
// such as "(1 2 3)(4 5)". The identity is "()".
func CycleNotation(m Mapping) string {
	cycles := Cycles(m)
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, cycle := range cycles {
		b.WriteByte('(')
		for i, x := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(x)))
		}
		b.WriteByte(')')
	}
	return b.String()
}
