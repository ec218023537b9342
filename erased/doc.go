// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package erased is a thin type-erased façade over rkbel for host
// bindings that cannot express Go generics at their boundary: a
// rkbel.Sequence[any] plus a runtime equality registry keyed on the
// concrete stored type, standing in for the static `comparable`
// guarantee the generic core relies on.
package erased
