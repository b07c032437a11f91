package symgroup

// TranspositionCount returns the length of the shortest
// word of transpositions which represents m.
//
// This is a lower bound on the length of any word for m,
// reduced or otherwise.
func TranspositionCount(m Mapping) int {
	var count int
	for _, cycle := range Cycles(m) {
		count += len(cycle) - 1
	}
	return count
}

// Sign returns 1 for even permutations and -1 for odd
// ones.
func Sign(m Mapping) int {
	if TranspositionCount(m)%2 == 0 {
		return 1
	}
	return -1
}
