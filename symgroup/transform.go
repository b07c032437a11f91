package symgroup

// Permute moves each element of data according to m.
//
// The element at index i is moved to index m(i+1)-1.
// Elements past m.Order() stay where they are. The data
// must have at least m.Order() elements.
func Permute[T any](m Mapping, data []T) []T {
	if len(data) < int(m.Order()) {
		domainPanic("Permute", len(data))
	}
	res := make([]T, len(data))
	for i, x := range data {
		res[permuteIndex(m, i)] = x
	}
	return res
}

// Unpermute undoes Permute, so that the element at index
// m(i+1)-1 is moved back to index i.
func Unpermute[T any](m Mapping, data []T) []T {
	if len(data) < int(m.Order()) {
		domainPanic("Unpermute", len(data))
	}
	res := make([]T, len(data))
	for i := range res {
		res[i] = data[permuteIndex(m, i)]
	}
	return res
}

func permuteIndex(m Mapping, i int) int {
	if i >= MaxOneLineOrder {
		return i
	}
	return int(m.Apply(uint8(i+1))) - 1
}
