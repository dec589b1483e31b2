// Package solo contains single-value helpers over maybe.Maybe that change the
// type parameter, which Go methods cannot do.
//
// Highlights:
// - Map: transform the value (T -> V)
// - Try: call a function (V, error) and convert the error to a failure
// - Validate/WhereHolds: conditional filtering
// - Flatten: collapse Maybe[Maybe[T]]
// - As: narrow the value to a more specific type
// - Match: reduce to a concrete value via value/error/nothing handlers
package solo
