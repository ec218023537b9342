// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

import (
	"sync"
	"sync/atomic"
)

// Suspension is a single-assignment memoized thunk: a deferred computation
// that runs at most once, no matter how many times or from how many
// goroutines Force is called.
//
// Suspension is the primitive that makes infinite ranking sequences
// representable (spec §4.2): a Node's tail is a *Suspension[*Node[T]], so
// the rest of a sequence is only ever computed when something actually
// walks that far. sync.Once gives exactly the contract spec §4.2 and §5
// ask for — the computation runs exactly once and concurrent callers
// block on the same run rather than racing it — so Suspension is a thin
// wrapper around it rather than a hand-rolled state machine.
//
// A Suspension must always be referenced through a pointer; copying the
// struct would duplicate its sync.Once and break the at-most-once
// guarantee, so every constructor below returns *Suspension[T].
type Suspension[T any] struct {
	once    sync.Once
	done    atomic.Bool
	compute func() (T, error)
	value   T
	err     error
}

// NewSuspension defers computation to the first Force call.
func NewSuspension[T any](compute func() (T, error)) *Suspension[T] {
	return &Suspension[T]{compute: compute}
}

// NewRealized wraps an already-known value in a Suspension whose first
// Force returns immediately without running any computation.
func NewRealized[T any](value T) *Suspension[T] {
	s := &Suspension[T]{value: value}
	s.done.Store(true)
	s.once.Do(func() {}) // mark the once as already fired too
	return s
}

// Force runs the held computation on the first call and caches the
// outcome — value or error — for every subsequent call. If the
// computation fails, the same error is returned on every later Force
// (spec §7's crash-stickiness); it is never retried and no default value
// is substituted.
func (s *Suspension[T]) Force() (T, error) {
	s.once.Do(func() {
		if s.compute != nil {
			s.value, s.err = s.compute()
			s.compute = nil // release captured state once it has run
		}
		s.done.Store(true)
	})
	return s.value, s.err
}

// IsForced reports whether Force has already run to completion
// (successfully or not). Useful for laziness tests that must not
// themselves trigger evaluation.
func (s *Suspension[T]) IsForced() bool { return s.done.Load() }
