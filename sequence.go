// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// Pair is a (value, rank) pair, the unit the iterator and the
// materialization helpers traffic in.
type Pair[T any] struct {
	Value T
	Rank  Rank
}

// Sequence is a ranking function: a lazy, possibly-infinite multiset of
// (value, rank) pairs enumerated in non-decreasing rank order, plus a
// dedup flag that controls iteration only — it never rewrites the
// underlying Node graph (spec §3).
//
// T is constrained to comparable so that dedup and ObserveValue's
// equality check are compile-time guarantees rather than a runtime
// capability probe. The one place equality genuinely needs to be
// dynamic — arbitrary host values at the type-erased façade — lives in
// the sibling package rkbel/erased, which dispatches equality through a
// runtime registry instead.
type Sequence[T comparable] struct {
	head  *Node[T]
	dedup bool
}

// NewSequence wraps a head Node and a dedup flag into a Sequence. A nil
// head denotes the empty sequence.
func NewSequence[T comparable](head *Node[T], dedup bool) Sequence[T] {
	return Sequence[T]{head: head, dedup: dedup}
}

// Head returns the sequence's head Node, or nil if empty.
func (s Sequence[T]) Head() *Node[T] { return s.head }

// Dedup reports whether iteration over this sequence skips consecutive
// equal values.
func (s Sequence[T]) Dedup() bool { return s.dedup }

// WithDedup returns a copy of s with the dedup flag set as requested.
// The Node graph is shared, not copied — dedup only changes how an
// Iterator walks it.
func (s Sequence[T]) WithDedup(dedup bool) Sequence[T] {
	return Sequence[T]{head: s.head, dedup: dedup}
}

// Iterator walks a Sequence, pulling one Node at a time. It never
// backtracks; constructing a second Iterator over the same (head, dedup)
// pair gives independent, single-pass traversal that still shares
// memoization with the first through the common Node graph (spec §4.4).
type Iterator[T comparable] struct {
	current   *Node[T]
	dedup     bool
	exhausted bool
}

// NewIterator starts an Iterator over s. If s is empty, the iterator
// starts already exhausted.
func NewIterator[T comparable](s Sequence[T]) *Iterator[T] {
	return &Iterator[T]{current: s.head, dedup: s.dedup, exhausted: s.head == nil}
}

// Peek returns the current node's value and rank without advancing. The
// third return value is false once the iterator is exhausted, in which
// case the value and rank are zero values.
func (it *Iterator[T]) Peek() (T, Rank, bool, error) {
	if it.exhausted {
		var zero T
		return zero, Rank{}, false, nil
	}
	v, err := it.current.Value()
	if err != nil {
		var zero T
		return zero, Rank{}, false, err
	}
	return v, it.current.Rank(), true, nil
}

// Advance moves to the next distinct node. With dedup disabled this is a
// single tail-force; with dedup enabled it walks forward, forcing nodes
// and skipping any whose value equals the value just yielded, stopping
// at the first unequal value or at exhaustion — so a single Advance call
// can force many nodes (spec §4.4).
func (it *Iterator[T]) Advance() error {
	if it.exhausted {
		return nil
	}
	currentValue, err := it.current.Value()
	if err != nil {
		return err
	}
	next, err := it.current.Tail()
	if err != nil {
		return err
	}
	if !it.dedup {
		it.current = next
		it.exhausted = next == nil
		return nil
	}
	for next != nil {
		nextValue, err := next.Value()
		if err != nil {
			return err
		}
		if nextValue != currentValue {
			break
		}
		next, err = next.Tail()
		if err != nil {
			return err
		}
	}
	it.current = next
	it.exhausted = next == nil
	return nil
}

// Exhausted reports whether the iterator has no more elements.
func (it *Iterator[T]) Exhausted() bool { return it.exhausted }
