// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package erased

import (
	"reflect"

	"code.hybscloud.com/rkbel"
)

func mergeInner(a, b Sequence) rkbel.Sequence[any] {
	return rkbel.Merge(a.inner, b.inner, false)
}

// Merge combines a and b into a single rank-ordered façade sequence,
// demonstrating the fallback spec §6 describes for this façade:
// "operations like merging differently-typed sequences fall back to an
// erased-value sequence with dedup forced off." Dedup only survives the
// merge when the caller asked for it, both inputs already carry it, and
// both sequences' head elements share a concrete runtime type — past
// that point there is no static guarantee the rest of either sequence
// stays single-typed, so requesting dedup on a genuinely heterogeneous
// merge is refused rather than silently risking a wrong skip decision.
func Merge(a, b Sequence, dedup bool) Sequence {
	merged := mergeInner(a, b)
	effective := dedup && a.dedup && b.dedup && headTypesMatch(a, b)
	return Sequence{inner: merged, dedup: effective}
}

func headTypesMatch(a, b Sequence) bool {
	ah, bh := a.inner.Head(), b.inner.Head()
	if ah == nil || bh == nil {
		return true
	}
	av, aerr := ah.Value()
	bv, berr := bh.Value()
	if aerr != nil || berr != nil {
		return false
	}
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	return reflect.TypeOf(av) == reflect.TypeOf(bv)
}
