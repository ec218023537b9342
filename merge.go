// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Merge and MergeAll interleave sequences into a single rank-ordered
// sequence (spec §4.8). Grounded on operations/merge.hpp in
// _examples/original_source.

// Merge combines a and b into a single sequence enumerated in
// non-decreasing rank order. At equal ranks, elements of a precede
// elements of b; the tie-break is enforced by draining every run of a's
// elements at the rank last emitted before considering b again.
//
// If a and b share the same underlying Node graph (merging a sequence
// with itself), a naive recursion would walk both arguments down the
// same shared tail and silently consume elements meant for the other
// side. With dedup enabled the result would be identical to a anyway, so
// Merge short-circuits and returns a. With dedup disabled, b is given a
// lazy deep copy first so the two arguments walk distinct Node chains
// (spec §4.8 "Self-merge edge case").
func Merge[T comparable](a, b Sequence[T], dedup bool) Sequence[T] {
	if a.head == b.head {
		if dedup {
			return NewSequence(a.head, true)
		}
		return NewSequence(mergeStep(a.head, lazyDeepCopy(b.head), Zero()), false)
	}
	return NewSequence(mergeStep(a.head, b.head, Zero()), dedup)
}

// MergeAll folds Merge left-to-right over seqs. Folding order does not
// change the content of the result under associativity of the
// rank-ordered union, except for the documented equal-rank tie-break,
// which follows the vector order: earlier sequences in seqs win ties.
func MergeAll[T comparable](seqs []Sequence[T], dedup bool) Sequence[T] {
	if len(seqs) == 0 {
		return Empty[T]()
	}
	result := seqs[0]
	for _, s := range seqs[1:] {
		result = Merge(result, s, dedup)
	}
	return result
}

// mergeStep decides, from the already-resolved heads a and b plus the
// rank emitted immediately before (lastRank), which side to emit next.
// The decision itself is synchronous (ranks are always eager); only the
// continuation — walking to the next node on the emitting side — is
// deferred to the returned node's tail Suspension.
func mergeStep[T comparable](a, b *Node[T], lastRank Rank) *Node[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	ra, rb := a.Rank(), b.Rank()
	if ra.Equal(lastRank) || ra.Compare(rb) <= 0 {
		return mergeEmit(a, func() (*Node[T], error) {
			next, err := a.Tail()
			if err != nil {
				return nil, err
			}
			return mergeStep(next, b, ra), nil
		})
	}
	return mergeEmit(b, func() (*Node[T], error) {
		next, err := b.Tail()
		if err != nil {
			return nil, err
		}
		return mergeStep(a, next, rb), nil
	})
}

// mergeEmit builds a node that reproduces n's (value, rank) and defers
// to tailThunk for the rest of the merge.
func mergeEmit[T comparable](n *Node[T], tailThunk func() (*Node[T], error)) *Node[T] {
	cur := n
	return NewNode(
		NewSuspension(func() (T, error) { return cur.Value() }),
		cur.Rank(),
		NewSuspension(tailThunk),
	)
}

// lazyDeepCopy produces a Node graph with the same values and ranks as n
// but no pointer-identical node, so a caller can merge it against n
// without the self-merge hazard.
func lazyDeepCopy[T comparable](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	cur := n
	return NewNode(
		NewSuspension(func() (T, error) { return cur.Value() }),
		cur.Rank(),
		NewSuspension(func() (*Node[T], error) {
			next, err := cur.Tail()
			if err != nil {
				return nil, err
			}
			return lazyDeepCopy(next), nil
		}),
	)
}
