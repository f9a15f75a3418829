// Package combine aggregates many Results into one.
//
// The policy is fail-fast, first-error: traversal is in input order and
// stops at the first failure, which is returned unchanged. Failures are
// never accumulated. All works on slices, AllSeq on iterators.
package combine
