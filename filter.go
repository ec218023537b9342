// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Filter, Take, and TakeWhileRank narrow a Sequence while preserving the
// ranks of whatever survives (spec §4.7). Grounded on
// operations/filter.hpp in _examples/original_source.

// Filter keeps only the elements of seq that satisfy p, preserving their
// ranks. Building the head of the filtered sequence must force p on
// candidate nodes — forced in order, starting from seq's head — until one
// passes or the sequence ends: there is no way to delay finding the first
// surviving element. Once a node is found, everything downstream of it
// (the tail) stays lazy; p is forced again only when that tail is walked.
func Filter[T comparable](seq Sequence[T], p func(T) (bool, error), dedup bool) Sequence[T] {
	head, err := filterNode(seq.head, p)
	if err != nil {
		return NewSequence(errorNode[T](err), dedup)
	}
	return NewSequence(head, dedup)
}

func filterNode[T comparable](n *Node[T], p func(T) (bool, error)) (*Node[T], error) {
	for n != nil {
		v, err := n.Value()
		if err != nil {
			return nil, err
		}
		ok, err := p(v)
		if err != nil {
			return nil, closureError(err)
		}
		if ok {
			cur := n
			return NewNode(
				NewSuspension(func() (T, error) { return cur.Value() }),
				cur.Rank(),
				NewSuspension(func() (*Node[T], error) {
					tail, err := cur.Tail()
					if err != nil {
						return nil, err
					}
					return filterNode(tail, p)
				}),
			), nil
		}
		var terr error
		n, terr = n.Tail()
		if terr != nil {
			return nil, terr
		}
	}
	return nil, nil
}

// Take keeps at most the first n elements of seq.
func Take[T comparable](seq Sequence[T], n int, dedup bool) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return NewSequence(takeNode(seq.head, n), dedup)
}

func takeNode[T comparable](n *Node[T], remaining int) *Node[T] {
	if n == nil || remaining == 0 {
		return nil
	}
	cur := n
	return NewNode(
		NewSuspension(func() (T, error) { return cur.Value() }),
		cur.Rank(),
		NewSuspension(func() (*Node[T], error) {
			tail, err := cur.Tail()
			if err != nil {
				return nil, err
			}
			return takeNode(tail, remaining-1), nil
		}),
	)
}

// TakeWhileRank keeps every element whose rank is <= maxRank, stopping at
// the first greater rank or at the end of seq. Because ranks are always
// eager on a Node, this never forces a value.
func TakeWhileRank[T comparable](seq Sequence[T], maxRank Rank, dedup bool) Sequence[T] {
	return NewSequence(takeWhileRankNode(seq.head, maxRank), dedup)
}

func takeWhileRankNode[T comparable](n *Node[T], maxRank Rank) *Node[T] {
	if n == nil || n.Rank().Compare(maxRank) > 0 {
		return nil
	}
	cur := n
	return NewNode(
		NewSuspension(func() (T, error) { return cur.Value() }),
		cur.Rank(),
		NewSuspension(func() (*Node[T], error) {
			tail, err := cur.Tail()
			if err != nil {
				return nil, err
			}
			return takeWhileRankNode(tail, maxRank), nil
		}),
	)
}

// errorNode builds a single node whose value-suspension replays err on
// Force and whose tail is end-of-sequence. Used by operations that
// discover a closure failure while constructing the head of a result,
// where spec §7 requires the failure to surface at the next Suspension
// force rather than panic during construction.
func errorNode[T comparable](err error) *Node[T] {
	return NewNode(
		NewSuspension(func() (T, error) {
			var zero T
			return zero, err
		}),
		Zero(),
		NewRealized[*Node[T]](nil),
	)
}
