// Package guard provides predicates that narrow a value's Result variant
// without touching it.
//
// Common usage:
// - Is: validate untrusted input before calling Result-specific operations
// - IsOk/IsFail: branch on the variant of a known Result
// - Oks/Fails: filter a slice of Results by variant
//
// Is tolerates any input. IsOk and IsFail require a Result handle at the
// call site; they exist as free functions so narrowing composes with
// higher-order code instead of forcing a method call.
package guard
