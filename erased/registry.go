// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package erased

import (
	"reflect"
	"sync"

	"code.hybscloud.com/rkbel"
)

// EqualityFn compares two values already known to share a's concrete
// type. Registered functions may assume that cast.
type EqualityFn func(a, b any) bool

var (
	registryMu sync.Mutex
	registry   = map[reflect.Type]EqualityFn{}
)

// RegisterEquality installs == as the equality function for T's runtime
// type, keyed on reflect.TypeOf a zero T. T must be comparable so the
// generated function can never itself panic on a malformed cast.
func RegisterEquality[T comparable]() {
	var zero T
	fn := func(a, b any) bool {
		av, aok := a.(T)
		bv, bok := b.(T)
		return aok && bok && av == bv
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeOf(zero)] = fn
}

func init() {
	RegisterEquality[bool]()
	RegisterEquality[int]()
	RegisterEquality[int32]()
	RegisterEquality[int64]()
	RegisterEquality[uint]()
	RegisterEquality[uint64]()
	RegisterEquality[float32]()
	RegisterEquality[float64]()
	RegisterEquality[string]()
}

// ValuesEqual reports whether a and b are equal. nil compares equal only
// to nil. Two non-nil values of different concrete types are never equal.
// Two non-nil values of the same concrete type are compared through the
// registry entry for that type, failing with a ContractViolationError if
// none is registered — mirroring any_values_equal's "no entry means the
// comparison cannot be trusted" policy rather than risking a runtime
// panic from an unchecked type assertion or == on an incomparable type.
func ValuesEqual(a, b any) (bool, error) {
	if a == nil && b == nil {
		return true, nil
	}
	if a == nil || b == nil {
		return false, nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false, nil
	}
	registryMu.Lock()
	fn, ok := registry[ta]
	registryMu.Unlock()
	if !ok {
		return false, &rkbel.ContractViolationError{Msg: "no equality registered for type " + ta.String()}
	}
	return fn(a, b), nil
}
