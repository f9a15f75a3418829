// Package extract unwraps payloads out of values that may or may not be
// Results, with two grades of strictness.
//
// ValueOr is for code that already trusts it is holding a Result and wants
// a variant-aware fallback; handing it anything else panics. UnwrapOr is
// for defensive code accepting unknown input: it returns whichever payload
// is present, success or failure alike, and degrades to the fallback for
// non-Result input instead of panicking.
package extract
