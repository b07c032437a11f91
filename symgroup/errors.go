package symgroup

import (
	"errors"
	"fmt"
)

// ErrInvalidPermutation is wrapped by every error reporting
// that some data does not describe a bijection.
var ErrInvalidPermutation = errors.New("invalid permutation")

// A DomainError is the panic value for violated
// preconditions, such as packing more than 16 points into
// a Perm64.
//
// These are programming errors, so they are raised with
// panic() rather than returned.
type DomainError struct {
	Op    string
	Value int
}

func (d *DomainError) Error() string {
	return fmt.Sprintf("symgroup: %s: value %d out of domain", d.Op, d.Value)
}

func domainPanic(op string, value int) {
	panic(&DomainError{Op: op, Value: value})
}
