// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rkbel implements ranking functions, the data structure and
// algebra underlying Spohn's ranking theory: an alternative to
// probability distributions that grades alternatives by integer degrees
// of surprise rather than likelihood.
//
// A [Sequence] is, semantically, a finite-or-countably-infinite multiset
// of (value, rank) pairs enumerated in non-decreasing rank order. [Rank]
// 0 is the most normal outcome; larger finite ranks are increasingly
// exceptional; [Infinity] marks an impossible outcome.
//
// # Laziness
//
// Every operation in this package is lazy: a [Sequence]'s elements are
// only computed as something walks far enough to need them. The
// primitive that makes this possible is [Suspension], a single-assignment
// memoized thunk — a [Node]'s value and tail are each one, so an infinite
// sequence (built with [FromGenerator]) is representable and costs
// only its head element until observed.
//
// # Algebra
//
// Constructors ([Empty], [Singleton], [FromList], [FromValuesUniform],
// [FromValuesSequential], [FromValuesWithRanker], [FromGenerator],
// [FromRange]) build sequences. [Map], [MapWithIndex], [MapWithRank],
// [Filter], [Take], and [TakeWhileRank] transform them. [Merge] and
// [MergeAll] interleave sequences in rank order. [ShiftRanks] and
// [MergeApply] implement rank arithmetic and monadic bind. [Observe] and
// [ObserveValue] condition a sequence on evidence, renormalizing so the
// best survivor is rank 0. [NormalExceptional] composes a base ranking
// with a less-plausible fallback. [First], [IsEmpty],
// [MaterializePrefix], [Size], and [MostNormal] query a sequence without
// requiring the caller to walk it by hand.
//
// # Errors
//
// Operations never panic on a malformed argument or a failing
// user-supplied callback. Failures are one of [InvalidArgumentError],
// [ArithmeticError], [ContractViolationError], or [ClosureError], and
// once captured by a Suspension they are replayed identically on every
// subsequent Force.
package rkbel
