// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package erased

import "code.hybscloud.com/rkbel"

// Sequence is a rkbel.Sequence[any]: values lose their static type at
// this boundary, so dedup is tracked here rather than delegated to the
// wrapped sequence's own dedup flag, which would otherwise lean on Go's
// built-in == across arbitrary dynamic types and risk a runtime panic on
// a value whose underlying type does not support it.
type Sequence struct {
	inner rkbel.Sequence[any]
	dedup bool
}

// Wrap adapts an already-built rkbel.Sequence[any] into the façade.
func Wrap(s rkbel.Sequence[any], dedup bool) Sequence {
	return Sequence{inner: s, dedup: dedup}
}

// FromTyped lifts a statically-typed Sequence into the façade by boxing
// every value in an any. This is the bridge a host binding (spec §6)
// uses to hand a generic-core sequence across an interface boundary that
// cannot itself be generic.
func FromTyped[T comparable](s rkbel.Sequence[T]) Sequence {
	lifted := rkbel.Map(s, func(v T) (any, error) { return any(v), nil }, false)
	return Sequence{inner: lifted, dedup: s.Dedup()}
}

// FromList builds a façade sequence directly from erased (value, rank)
// pairs.
func FromList(pairs []rkbel.Pair[any], dedup bool) Sequence {
	return Sequence{inner: rkbel.FromList(pairs, false), dedup: dedup}
}

// Inner returns the wrapped rkbel.Sequence[any], for callers that want to
// keep composing with the generic core directly (e.g. Filter, Take,
// ShiftRanks — every rkbel operation that never needs equality works
// unchanged on Sequence[any]).
func (s Sequence) Inner() rkbel.Sequence[any] { return s.inner }

// Dedup reports whether iteration over this façade sequence skips
// consecutive equal values, as determined by the equality registry.
func (s Sequence) Dedup() bool { return s.dedup }

// WithDedup returns a copy of s with the dedup flag set as requested.
func (s Sequence) WithDedup(dedup bool) Sequence {
	return Sequence{inner: s.inner, dedup: dedup}
}

// IsEmpty reports whether s has no elements.
func IsEmpty(s Sequence) bool { return rkbel.IsEmpty(s.inner) }

// First returns the head element of s, or ok=false if s is empty.
func First(s Sequence) (rkbel.Pair[any], bool, error) { return rkbel.First(s.inner) }

// MaterializePrefix walks s, forcing up to count nodes, honoring the
// façade's registry-backed dedup rather than the wrapped sequence's own.
func MaterializePrefix(s Sequence, count int) ([]rkbel.Pair[any], error) {
	if count <= 0 || IsEmpty(s) {
		return nil, nil
	}
	result := make([]rkbel.Pair[any], 0, count)
	it := NewIterator(s)
	for i := 0; i < count && !it.Exhausted(); i++ {
		v, r, ok, err := it.Peek()
		if err != nil {
			return result, err
		}
		if !ok {
			break
		}
		result = append(result, rkbel.Pair[any]{Value: v, Rank: r})
		if err := it.Advance(); err != nil {
			return result, err
		}
	}
	return result, nil
}
