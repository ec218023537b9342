// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

import "strconv"

// maxFiniteRank is the largest representable finite rank: 2^63 - 1. The
// upper bit of the uint64 magnitude is reserved so that checked addition
// has headroom before it can overflow the underlying type, not just the
// rank domain.
const maxFiniteRank uint64 = 1<<63 - 1

// Rank is the degree of surprise a ranking function assigns to a value: 0
// is the most normal outcome, larger finite values are increasingly
// exceptional, and Infinity marks an impossible outcome. Rank is a small
// value type, cheap to copy and compare.
type Rank struct {
	value   uint64
	infinte bool
}

// Zero returns the most normal rank.
func Zero() Rank { return Rank{} }

// Infinity returns the rank of an impossible outcome.
func Infinity() Rank { return Rank{infinte: true} }

// FromValue constructs a finite rank. It fails with an InvalidArgumentError
// if value would collide with the reserved half of the range — use
// Infinity for impossible outcomes instead.
func FromValue(value uint64) (Rank, error) {
	if value > maxFiniteRank {
		return Rank{}, invalidArgument("rank value must be <= " + strconv.FormatUint(maxFiniteRank, 10) + "; use Infinity() for impossible outcomes")
	}
	return Rank{value: value}, nil
}

// MustFromValue is FromValue for call sites that know the value is in
// range (e.g. small literal constants in tests and examples); it panics
// on an out-of-range value.
func MustFromValue(value uint64) Rank {
	r, err := FromValue(value)
	if err != nil {
		panic(err)
	}
	return r
}

// IsInfinity reports whether r represents an impossible outcome.
func (r Rank) IsInfinity() bool { return r.infinte }

// IsFinite reports whether r represents a possible, finite outcome.
func (r Rank) IsFinite() bool { return !r.infinte }

// Value returns the numeric magnitude of a finite rank. It fails with an
// ArithmeticError when called on Infinity.
func (r Rank) Value() (uint64, error) {
	if r.infinte {
		return 0, arithmeticError("cannot extract a finite value from an infinite rank")
	}
	return r.value, nil
}

// ValueOr returns the numeric magnitude of a finite rank, or def if r is
// infinite.
func (r Rank) ValueOr(def uint64) uint64 {
	if r.infinte {
		return def
	}
	return r.value
}

// Add computes r + other. Infinity absorbs: if either operand is
// infinite, the sum is infinite. Otherwise the sum is checked against
// maxFiniteRank and fails with an ArithmeticError on overflow.
func (r Rank) Add(other Rank) (Rank, error) {
	if r.infinte || other.infinte {
		return Infinity(), nil
	}
	if r.value > maxFiniteRank-other.value {
		return Rank{}, arithmeticError("rank addition would overflow the finite range")
	}
	return Rank{value: r.value + other.value}, nil
}

// Sub computes r - other. Subtraction is defined only between two finite
// ranks with r >= other; both a mismatched infinity and an underflowing
// difference fail with an ArithmeticError.
func (r Rank) Sub(other Rank) (Rank, error) {
	if r.infinte || other.infinte {
		return Rank{}, arithmeticError("cannot subtract an infinite rank")
	}
	if r.value < other.value {
		return Rank{}, arithmeticError("rank subtraction would underflow below zero")
	}
	return Rank{value: r.value - other.value}, nil
}

// Min returns the smaller of r and other, where Infinity is never smaller
// than any finite rank.
func (r Rank) Min(other Rank) Rank {
	if r.infinte {
		return other
	}
	if other.infinte {
		return r
	}
	if r.value <= other.value {
		return r
	}
	return other
}

// Max returns the larger of r and other, where Infinity is never smaller
// than any finite rank.
func (r Rank) Max(other Rank) Rank {
	if r.infinte || other.infinte {
		return Infinity()
	}
	if r.value >= other.value {
		return r
	}
	return other
}

// Compare orders ranks: 0 < 1 < ... < Infinity, with the two infinities
// equal to one another. It returns -1, 0, or 1 following the convention
// of cmp.Compare, since Go has no three-way comparison operator.
func (r Rank) Compare(other Rank) int {
	if r.infinte && other.infinte {
		return 0
	}
	if r.infinte {
		return 1
	}
	if other.infinte {
		return -1
	}
	switch {
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and other denote the same rank.
func (r Rank) Equal(other Rank) bool { return r.Compare(other) == 0 }

// Less reports whether r is strictly less surprising (strictly smaller)
// than other.
func (r Rank) Less(other Rank) bool { return r.Compare(other) < 0 }

// LessEqual reports whether r is no more surprising than other.
func (r Rank) LessEqual(other Rank) bool { return r.Compare(other) <= 0 }

// Increment returns r + 1. It fails with an ArithmeticError on an
// infinite rank or on overflow, mirroring the original library's prefix
// operator++ (Go has no increment operator on values, so this returns a
// new Rank rather than mutating in place).
func (r Rank) Increment() (Rank, error) {
	if r.infinte {
		return Rank{}, arithmeticError("cannot increment an infinite rank")
	}
	return r.Add(Rank{value: 1})
}

// Decrement returns r - 1. It fails with an ArithmeticError on an
// infinite rank or on underflow below zero.
func (r Rank) Decrement() (Rank, error) {
	return r.Sub(Rank{value: 1})
}

// String renders the rank as its numeric value, or "∞" for Infinity.
func (r Rank) String() string {
	if r.infinte {
		return "∞"
	}
	return strconv.FormatUint(r.value, 10)
}
