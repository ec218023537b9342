// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package erased

import "code.hybscloud.com/rkbel"

// Iterator walks a façade Sequence, pulling one Node at a time and
// consulting the equality registry for dedup — unlike rkbel.Iterator,
// which compares T values with Go's native == and therefore cannot
// safely run over arbitrary dynamically-typed payloads.
type Iterator struct {
	current   *rkbel.Node[any]
	dedup     bool
	exhausted bool
}

// NewIterator starts an Iterator over s.
func NewIterator(s Sequence) *Iterator {
	head := s.inner.Head()
	return &Iterator{current: head, dedup: s.dedup, exhausted: head == nil}
}

// Peek returns the current node's value and rank without advancing.
func (it *Iterator) Peek() (any, rkbel.Rank, bool, error) {
	if it.exhausted {
		return nil, rkbel.Rank{}, false, nil
	}
	v, err := it.current.Value()
	if err != nil {
		return nil, rkbel.Rank{}, false, err
	}
	return v, it.current.Rank(), true, nil
}

// Advance moves to the next distinct node. With dedup disabled this is a
// single tail-force; with dedup enabled it walks forward through the
// registry's ValuesEqual until an unequal value or exhaustion, and a
// ContractViolationError from an unregistered type aborts the walk just
// like any other forced error would.
func (it *Iterator) Advance() error {
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
		eq, err := ValuesEqual(currentValue, nextValue)
		if err != nil {
			return err
		}
		if !eq {
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
func (it *Iterator) Exhausted() bool { return it.exhausted }
