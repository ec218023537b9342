// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// MergeApply is ranking-function bind: for every (v, r) in seq, f(v)
// produces a sequence g_v, and ShiftRanks(g_v, r) is interleaved with
// every other shifted result in non-decreasing rank order (spec §4.10).
// Grounded on operations/merge_apply.hpp in _examples/original_source.
//
// The hard part of this operation is not forcing later input elements
// (and so calling f again) before their rank could possibly matter. At
// each step the only thing forced ahead of time is the *next* input
// Node's rank (via a single Tail force), never its value or f applied to
// it — mergeWithRanks uses that lower bound to decide whether it can keep
// draining the already-computed shifted result or whether it must pull
// one more node from the rest of the merge first.
func MergeApply[T, U comparable](seq Sequence[T], f func(T) (Sequence[U], error), dedup bool) Sequence[U] {
	return NewSequence(mergeApplyNode(seq.head, f), dedup)
}

func mergeApplyNode[T, U comparable](n *Node[T], f func(T) (Sequence[U], error)) *Node[U] {
	if n == nil {
		return nil
	}
	v, err := n.Value()
	if err != nil {
		return errorNode[U](err)
	}
	r := n.Rank()
	gv, err := f(v)
	if err != nil {
		return errorNode[U](closureError(err))
	}
	shiftedHead := shiftNode(gv.head, r)
	firstRank := Infinity()
	if shiftedHead != nil {
		firstRank = shiftedHead.Rank()
	}

	next, err := n.Tail()
	if err != nil {
		return errorNode[U](err)
	}
	restMinRank := Infinity()
	var rest func() (*Node[U], error)
	if next != nil {
		restMinRank = next.Rank()
		rest = func() (*Node[U], error) { return mergeApplyNode(next, f), nil }
	}
	return mergeWithRanks(shiftedHead, firstRank, rest, restMinRank)
}

// mergeWithRanks merges an already-realized head ("first", at firstRank)
// against a not-yet-forced continuation ("rest") given only the lowest
// rank rest could possibly produce (restMinRank). While first's rank
// stays <= restMinRank it can be drained without ever forcing rest.
func mergeWithRanks[U comparable](first *Node[U], firstRank Rank, rest func() (*Node[U], error), restMinRank Rank) *Node[U] {
	if first == nil {
		if rest == nil {
			return nil
		}
		n, err := rest()
		if err != nil {
			return errorNode[U](err)
		}
		return n
	}
	if rest == nil {
		return first
	}
	if firstRank.Compare(restMinRank) <= 0 {
		cur := first
		return NewNode(
			NewSuspension(func() (U, error) { return cur.Value() }),
			firstRank,
			NewSuspension(func() (*Node[U], error) {
				next, err := cur.Tail()
				if err != nil {
					return nil, err
				}
				nextRank := Infinity()
				if next != nil {
					nextRank = next.Rank()
				}
				return mergeWithRanks(next, nextRank, rest, restMinRank), nil
			}),
		)
	}

	second, err := rest()
	if err != nil {
		return errorNode[U](err)
	}
	if second == nil {
		return first
	}
	if firstRank.Compare(second.Rank()) <= 0 {
		return mergeStep(first, second, Zero())
	}
	secondNext, err := second.Tail()
	if err != nil {
		return errorNode[U](err)
	}
	secondNextMinRank := Infinity()
	if secondNext != nil {
		secondNextMinRank = secondNext.Rank()
	}
	nextRest := func() (*Node[U], error) { return secondNext, nil }
	cur := second
	return NewNode(
		NewSuspension(func() (U, error) { return cur.Value() }),
		cur.Rank(),
		NewSuspension(func() (*Node[U], error) {
			return mergeWithRanks(first, firstRank, nextRest, secondNextMinRank), nil
		}),
	)
}
