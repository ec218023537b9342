// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Map, MapWithIndex, and MapWithRank transform values while preserving
// (or, for MapWithRank, explicitly adjusting) ranks, lazily (spec §4.6).
// Grounded on operations/map.hpp in _examples/original_source.
//
// The key design decision, shared by every operation below: ranks stay
// eager on the produced Node so downstream rank-ordering decisions (in
// merge, take_while_rank, observe's renormalization) never need to force
// a value; only the value itself is deferred to a Suspension.

// Map transforms every value of seq with f, keeping ranks unchanged.
// f is only invoked when a produced node's value is forced.
func Map[T, U comparable](seq Sequence[T], f func(T) (U, error), dedup bool) Sequence[U] {
	return NewSequence(mapNode(seq.head, f), dedup)
}

func mapNode[T, U comparable](n *Node[T], f func(T) (U, error)) *Node[U] {
	if n == nil {
		return nil
	}
	return NewNode(
		NewSuspension(func() (U, error) {
			v, err := n.Value()
			if err != nil {
				var zero U
				return zero, err
			}
			u, err := f(v)
			if err != nil {
				var zero U
				return zero, closureError(err)
			}
			return u, nil
		}),
		n.Rank(),
		NewSuspension(func() (*Node[U], error) {
			tail, err := n.Tail()
			if err != nil {
				return nil, err
			}
			return mapNode(tail, f), nil
		}),
	)
}

// MapWithIndex is Map, but f also receives the zero-based position of
// the element within seq.
func MapWithIndex[T, U comparable](seq Sequence[T], f func(T, int) (U, error), dedup bool) Sequence[U] {
	return NewSequence(mapWithIndexNode(seq.head, f, 0), dedup)
}

func mapWithIndexNode[T, U comparable](n *Node[T], f func(T, int) (U, error), index int) *Node[U] {
	if n == nil {
		return nil
	}
	return NewNode(
		NewSuspension(func() (U, error) {
			v, err := n.Value()
			if err != nil {
				var zero U
				return zero, err
			}
			u, err := f(v, index)
			if err != nil {
				var zero U
				return zero, closureError(err)
			}
			return u, nil
		}),
		n.Rank(),
		NewSuspension(func() (*Node[U], error) {
			tail, err := n.Tail()
			if err != nil {
				return nil, err
			}
			return mapWithIndexNode(tail, f, index+1), nil
		}),
	)
}

// MapWithRank transforms both the value and the rank of every element.
// Because the produced rank can change, f must be run once, eagerly, to
// build each new node — the merger downstream needs the rank before it
// can decide anything, so there is no value in deferring it here. The
// value component returned by f stays eagerly realized too, since f
// already had to run to produce the rank; only the *next* node's
// computation remains lazy.
func MapWithRank[T, U comparable](seq Sequence[T], f func(T, Rank) (U, Rank, error), dedup bool) Sequence[U] {
	head, err := mapWithRankNode(seq.head, f)
	if err != nil {
		return NewSequence(NewNode(NewSuspension(func() (U, error) {
			var zero U
			return zero, err
		}), Zero(), NewRealized[*Node[U]](nil)), dedup)
	}
	return NewSequence(head, dedup)
}

func mapWithRankNode[T, U comparable](n *Node[T], f func(T, Rank) (U, Rank, error)) (*Node[U], error) {
	if n == nil {
		return nil, nil
	}
	v, err := n.Value()
	if err != nil {
		return nil, err
	}
	u, r, err := f(v, n.Rank())
	if err != nil {
		return nil, closureError(err)
	}
	return NewNode(
		NewRealized(u),
		r,
		NewSuspension(func() (*Node[U], error) {
			tail, err := n.Tail()
			if err != nil {
				return nil, err
			}
			return mapWithRankNode(tail, f)
		}),
	), nil
}
