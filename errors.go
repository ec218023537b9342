// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel

import "fmt"

// InvalidArgumentError reports a malformed argument: a rank out of range,
// a backwards range, or any other precondition violation detected before
// any lazy computation begins.
type InvalidArgumentError struct {
	Msg string
	Err error
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rkbel: invalid argument: %s: %v", e.Msg, e.Err)
	}
	return "rkbel: invalid argument: " + e.Msg
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

func invalidArgument(msg string) error {
	return &InvalidArgumentError{Msg: msg}
}

// ArithmeticError reports a failure in Rank arithmetic: addition overflowing
// the finite range, subtraction underflowing, or extracting a finite value
// from an infinite rank.
type ArithmeticError struct {
	Msg string
}

func (e *ArithmeticError) Error() string { return "rkbel: arithmetic: " + e.Msg }

func arithmeticError(msg string) error {
	return &ArithmeticError{Msg: msg}
}

// ContractViolationError reports an operation invoked against a value type
// that cannot support the capability the operation requires — most notably
// equality at the type-erased façade (rkbel/erased), where static
// `comparable` guarantees are unavailable and the check happens at runtime.
type ContractViolationError struct {
	Msg string
}

func (e *ContractViolationError) Error() string { return "rkbel: contract violation: " + e.Msg }

func contractViolation(msg string) error {
	return &ContractViolationError{Msg: msg}
}

// ClosureError wraps a failure raised by a user-supplied callback — a map
// function, filter predicate, generator, merge-apply function, or
// normal/exceptional thunk. The original error is preserved verbatim via
// Unwrap and is replayed identically on every subsequent Force of the
// Suspension that captured it (spec §7's crash-stickiness).
type ClosureError struct {
	Err error
}

func (e *ClosureError) Error() string { return "rkbel: closure failed: " + e.Err.Error() }

func (e *ClosureError) Unwrap() error { return e.Err }

func closureError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*ClosureError); ok {
		return err
	}
	return &ClosureError{Err: err}
}
