// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Observe conditions seq on evidence p: it filters by p, then
// renormalizes ranks so the best surviving element is rank 0 (spec
// §4.11). Grounded on operations/observe.hpp in
// _examples/original_source.
func Observe[T comparable](seq Sequence[T], p func(T) (bool, error), dedup bool) Sequence[T] {
	filtered := Filter(seq, p, dedup)
	head := filtered.head
	if head == nil {
		return filtered
	}
	shiftAmount := head.Rank()
	if shiftAmount.IsInfinity() {
		// No finite evidence survives; an infinite-ranked element is
		// never surfaced by Observe (spec §3's invariant).
		return NewSequence[T](nil, filtered.dedup)
	}
	return NewSequence(renormalizeNode(head, shiftAmount), filtered.dedup)
}

// renormalizeNode walks an already-filtered sequence subtracting
// shiftAmount from every rank, lazily, and ends the result at the first
// infinite rank it meets. Values are untouched; ranks are
// known eagerly and rewritten eagerly on each produced node, matching
// detail::normalize_with_shift in operations/observe.hpp.
func renormalizeNode[T comparable](n *Node[T], shiftAmount Rank) *Node[T] {
	if n == nil {
		return nil
	}
	if n.Rank().IsInfinity() {
		return nil
	}
	newRank, err := n.Rank().Sub(shiftAmount)
	if err != nil {
		return errorNode[T](err)
	}
	cur := n
	return NewNode(
		NewSuspension(func() (T, error) { return cur.Value() }),
		newRank,
		NewSuspension(func() (*Node[T], error) {
			next, err := cur.Tail()
			if err != nil {
				return nil, err
			}
			return renormalizeNode(next, shiftAmount), nil
		}),
	)
}

// ObserveValue conditions seq on equality with value.
func ObserveValue[T comparable](seq Sequence[T], value T, dedup bool) Sequence[T] {
	return Observe(seq, func(v T) (bool, error) { return v == value, nil }, dedup)
}
