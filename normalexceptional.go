// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// NormalExceptional composes a "normally X, but occasionally Y" ranking:
// the rank-sorted merge of normal with ShiftRanks(exceptionalThunk(),
// delta) (spec §4.12). Grounded on operations/nrm_exc.hpp in
// _examples/original_source, with one deliberate deviation: that file's
// normal_exceptional unconditionally treats normal's head as the overall
// head and only reconsiders the exceptional branch afterward, which is
// the historical bug spec §4.12 and §9 call out — it can violate rank
// monotonicity whenever delta is less than normal's head rank. This
// implementation always goes through the same Merge used everywhere
// else in this package, restoring correctness.
//
// exceptionalThunk is invoked at most once, and not necessarily at all:
// when delta is strictly greater than normal's head rank, the shifted
// exceptional branch cannot possibly outrank or tie normal's head (its
// best possible shifted rank is delta), so normal's head is emitted
// immediately and exceptionalThunk is deferred into the lazy tail — it
// only runs if that tail is actually forced. When delta <= normal's head
// rank, the exceptional branch might win or tie, so it must be realized
// before the head of the result can be decided at all.
func NormalExceptional[T comparable](normal Sequence[T], exceptionalThunk func() (Sequence[T], error), delta Rank, dedup bool) Sequence[T] {
	shiftedExceptional := NewSuspension(func() (Sequence[T], error) {
		exceptional, err := exceptionalThunk()
		if err != nil {
			return Sequence[T]{}, closureError(err)
		}
		return ShiftRanks(exceptional, delta), nil
	})

	if normal.head == nil {
		shifted, err := shiftedExceptional.Force()
		if err != nil {
			return NewSequence(errorNode[T](err), dedup)
		}
		return NewSequence(shifted.head, dedup)
	}

	normalRank := normal.head.Rank()
	if delta.Compare(normalRank) > 0 {
		cur := normal.head
		normalDedup := normal.dedup
		return NewSequence(NewNode(
			NewSuspension(func() (T, error) { return cur.Value() }),
			normalRank,
			NewSuspension(func() (*Node[T], error) {
				tail, err := cur.Tail()
				if err != nil {
					return nil, err
				}
				shifted, err := shiftedExceptional.Force()
				if err != nil {
					return nil, err
				}
				merged := Merge(NewSequence(tail, normalDedup), shifted, dedup)
				return merged.head, nil
			}),
		), dedup)
	}

	shifted, err := shiftedExceptional.Force()
	if err != nil {
		return NewSequence(errorNode[T](err), dedup)
	}
	return Merge(normal, shifted, dedup)
}
