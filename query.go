// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

// First, IsEmpty, MaterializePrefix, Size, and MostNormal are the query
// helpers of spec §4.13, grounded on ranking_function.hpp's first()/
// is_empty() and nrm_exc.hpp's take_n()/most_normal() in
// _examples/original_source.

// First returns the head element of seq, or ok=false if seq is empty.
func First[T comparable](seq Sequence[T]) (pair Pair[T], ok bool, err error) {
	if seq.head == nil {
		return Pair[T]{}, false, nil
	}
	v, err := seq.head.Value()
	if err != nil {
		return Pair[T]{}, false, err
	}
	return Pair[T]{Value: v, Rank: seq.head.Rank()}, true, nil
}

// IsEmpty reports whether seq has no elements.
func IsEmpty[T comparable](seq Sequence[T]) bool {
	return seq.head == nil
}

// MaterializePrefix eagerly walks seq, forcing up to count nodes, and
// returns the (value, rank) pairs encountered. It mirrors take_n's
// short-circuit on count == 0 or an empty sequence exactly.
func MaterializePrefix[T comparable](seq Sequence[T], count int) ([]Pair[T], error) {
	if count <= 0 || seq.head == nil {
		return nil, nil
	}
	result := make([]Pair[T], 0, count)
	it := NewIterator(seq)
	for i := 0; i < count && !it.Exhausted(); i++ {
		v, r, ok, err := it.Peek()
		if err != nil {
			return result, err
		}
		if !ok {
			break
		}
		result = append(result, Pair[T]{Value: v, Rank: r})
		if err := it.Advance(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Size walks the entirety of seq and counts its elements. It terminates
// only on finite sequences — calling it on an infinite ranking (e.g. one
// built from FromGenerator) simply never returns.
func Size[T comparable](seq Sequence[T]) (int, error) {
	count := 0
	it := NewIterator(seq)
	for !it.Exhausted() {
		_, _, ok, err := it.Peek()
		if err != nil {
			return count, err
		}
		if !ok {
			break
		}
		count++
		if err := it.Advance(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// MostNormal returns the value of seq's most normal (lowest-rank)
// element, or ok=false if seq is empty.
func MostNormal[T comparable](seq Sequence[T]) (value T, ok bool, err error) {
	p, ok, err := First(seq)
	if err != nil || !ok {
		var zero T
		return zero, ok, err
	}
	return p.Value, true, nil
}
