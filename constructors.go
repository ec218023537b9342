// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Constructors build Sequences from eager lists, uniform/sequential/
// custom rank assignments, and generator functions for infinite
// sequences (spec §4.5). None of them validate that the ranks they are
// handed are non-decreasing — that invariant belongs to the operation
// algebra in map.go/filter.go/merge.go/etc., never to raw construction.

// Empty returns the empty sequence.
func Empty[T comparable]() Sequence[T] {
	return Sequence[T]{}
}

// Singleton returns a one-element sequence. The dedup flag is irrelevant
// for a single element but is still recorded so later operations that
// preserve dedup behave consistently.
func Singleton[T comparable](value T, rank Rank, dedup bool) Sequence[T] {
	return NewSequence(NewEagerNode(value, rank, nil), dedup)
}

// FromList builds a sequence from explicit (value, rank) pairs, in the
// order given. Tails are realized eagerly since the whole sequence is
// already in hand.
func FromList[T comparable](pairs []Pair[T], dedup bool) Sequence[T] {
	var head *Node[T]
	for i := len(pairs) - 1; i >= 0; i-- {
		head = NewEagerNode(pairs[i].Value, pairs[i].Rank, head)
	}
	return NewSequence(head, dedup)
}

// FromValuesUniform assigns every value the same rank.
func FromValuesUniform[T comparable](values []T, rank Rank, dedup bool) Sequence[T] {
	var head *Node[T]
	for i := len(values) - 1; i >= 0; i-- {
		head = NewEagerNode(values[i], rank, head)
	}
	return NewSequence(head, dedup)
}

// FromValuesSequential assigns value i the rank r0+i. It fails with an
// ArithmeticError if r0+i would overflow the finite range for any i.
func FromValuesSequential[T comparable](values []T, r0 Rank, dedup bool) (Sequence[T], error) {
	ranks := make([]Rank, len(values))
	r := r0
	for i := range values {
		if i > 0 {
			var err error
			r, err = r.Add(MustFromValue(1))
			if err != nil {
				return Sequence[T]{}, err
			}
		}
		ranks[i] = r
	}
	var head *Node[T]
	for i := len(values) - 1; i >= 0; i-- {
		head = NewEagerNode(values[i], ranks[i], head)
	}
	return NewSequence(head, dedup), nil
}

// FromValuesWithRanker assigns value i the rank f(value_i, i). The
// resulting sequence is not automatically sorted by rank — callers that
// need rank order from an arbitrary ranker should sort pairs before
// calling FromList, or route the result through an operation from the
// algebra that establishes the invariant.
func FromValuesWithRanker[T comparable](values []T, f func(T, int) Rank, dedup bool) Sequence[T] {
	pairs := make([]Pair[T], len(values))
	for i, v := range values {
		pairs[i] = Pair[T]{Value: v, Rank: f(v, i)}
	}
	return FromList(pairs, dedup)
}

// FromGenerator builds a (possibly infinite) sequence where node i is
// g(i0+i). The tail of each node is a Suspension that, when forced, calls
// g for i+1 and wraps the result — so g runs at most once per index, and
// only for indices actually reached. g(i0) runs once when the sequence is
// built, because the head node's rank must be known up front.
func FromGenerator[T comparable](g func(int) (T, Rank, error), i0 int, dedup bool) Sequence[T] {
	head := generatorNode(g, i0)
	return NewSequence(head, dedup)
}

func generatorNode[T comparable](g func(int) (T, Rank, error), i int) *Node[T] {
	v, r, err := g(i)
	if err != nil {
		// Materialize the failure into a node whose value-suspension
		// carries the error, so it surfaces at the first Force rather
		// than panicking during construction.
		return NewNode(
			NewSuspension(func() (T, error) {
				var zero T
				return zero, closureError(err)
			}),
			Zero(),
			NewRealized[*Node[T]](nil),
		)
	}
	return NewNode(
		NewRealized(v),
		r,
		NewSuspension(func() (*Node[T], error) {
			return generatorNode(g, i+1), nil
		}),
	)
}

// FromRange materializes the integers in [lo, hi) at sequential ranks
// starting at r0.
func FromRange(lo, hi int, r0 Rank, dedup bool) (Sequence[int], error) {
	if hi < lo {
		return Sequence[int]{}, invalidArgument("FromRange: hi must be >= lo")
	}
	values := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		values = append(values, i)
	}
	return FromValuesSequential(values, r0, dedup)
}
