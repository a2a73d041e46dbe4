// SPDX-License-Identifier: MPL-2.0

// Package legacy converts the packed 32-bit flag word of the v2 API into a
// [mkdflag.Set].
//
// The bit layout returned by [Table] is a compatibility contract with existing
// callers: positions are never renumbered or reused. Bits that no longer carry
// meaning map to OpNone and are ignored, so masks built against any v2 release
// translate without error.
//
// Every v2 entry point of the compiler is a thin shim that calls [Translate]
// and hands the result to its current counterpart.
package legacy
