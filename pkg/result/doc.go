// Package result provides a two-variant Result algebra: an explicit,
// inspectable alternative to panicking for carrying a success or a failure
// through a call chain as a plain immutable value.
//
// Common usage:
// - Ok/OkEmpty/Fail: construct a variant
// - IsOk/IsFail: query the variant in O(1)
// - Value/Cause/Payload: read the active payload
// - ValueOr/Must: extract the success payload with or without a fallback
// - Equal/Hash: variant-aware comparison for comparable payload types
// - Equality: runtime-typed comparison of arbitrary values
// - Nothing/None/Option/Some/NoneOf: model "value or nothing"
//
// A failure is ordinary data, not an error in flight: the library transports
// the cause unchanged until a caller inspects the variant and decides what
// to do. For predicates over untyped input see package guard, for fail-fast
// aggregation see package combine, and for strictness-graded extraction see
// package extract.
package result
