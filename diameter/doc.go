// Package diameter computes the diameter of a collection: the largest
// distance between any two of its items under a caller-supplied distance.
//
// Diameter reports an undefined result for collections with fewer than two
// items through its second return value, so callers can tell "no pairs" from
// a genuine zero diameter. OrZero folds that case into the zero value.
//
// The distance function is assumed, not verified, to be symmetric; only
// unordered pairs (i < j) are evaluated.
//
// Complexity: O(n²) distance calls, O(1) extra space.
package diameter
