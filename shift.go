// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// ShiftRanks adds delta to the rank of every element of seq, lazily,
// preserving seq's dedup flag (spec §4.9). Grounded on shift_ranks in
// _examples/original_source/include/ranked_belief/operations/merge_apply.hpp.
//
// Values are carried across unchanged; only ranks move, and they are
// recomputed eagerly on each produced node since a Node's rank is never
// itself lazy. An overflow in the addition surfaces as a ClosureError-free
// ArithmeticError, but only at the point a consumer forces that node's
// value — the node itself cannot carry an error in its Rank field, so the
// failure is routed through the value Suspension instead (the same
// discipline Filter and MergeApply use for errors discovered mid-build).
func ShiftRanks[T comparable](seq Sequence[T], delta Rank) Sequence[T] {
	return NewSequence(shiftNode(seq.head, delta), seq.dedup)
}

func shiftNode[T comparable](n *Node[T], delta Rank) *Node[T] {
	if n == nil {
		return nil
	}
	newRank, err := n.Rank().Add(delta)
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
			return shiftNode(next, delta), nil
		}),
	)
}
