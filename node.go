// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Node is an immutable ranked cons cell, one element of a lazy ranking
// sequence. Grounded on RankingElement<T> in
// _examples/original_source/include/ranked_belief/ranking_element.hpp,
// with one deliberate departure: here the value is always lazy (a
// *Suspension[T]), not eagerly forced at construction, matching spec
// §4.6's "ranks are eager on nodes, values are lazy" design decision —
// the original keeps value_ as a plain T and leans on shift_ranks/map
// wrapping it in a promise per call site instead.
//
// A Node's rank is always already realized: operations need ranks to
// make ordering decisions before they have any reason to force a value.
// Forcing the tail yields the next Node, or (nil, nil) at the end of the
// sequence.
type Node[T any] struct {
	value *Suspension[T]
	rank  Rank
	tail  *Suspension[*Node[T]]
}

// NewNode builds a Node from a lazy value and a lazy tail.
func NewNode[T any](value *Suspension[T], rank Rank, tail *Suspension[*Node[T]]) *Node[T] {
	return &Node[T]{value: value, rank: rank, tail: tail}
}

// NewEagerNode builds a Node whose value and tail are already known.
func NewEagerNode[T any](value T, rank Rank, tail *Node[T]) *Node[T] {
	return &Node[T]{
		value: NewRealized(value),
		rank:  rank,
		tail:  NewRealized(tail),
	}
}

// Value forces and returns this node's payload.
func (n *Node[T]) Value() (T, error) { return n.value.Force() }

// Rank returns this node's rank. Ranks are never lazy, so this never
// fails and never blocks on anything but a plain field read.
func (n *Node[T]) Rank() Rank { return n.rank }

// Tail forces and returns the next Node, or nil at the end of the
// sequence.
func (n *Node[T]) Tail() (*Node[T], error) { return n.tail.Force() }

// IsLast forces the tail and reports whether this is the last node in
// the sequence.
func (n *Node[T]) IsLast() (bool, error) {
	next, err := n.Tail()
	if err != nil {
		return false, err
	}
	return next == nil, nil
}
