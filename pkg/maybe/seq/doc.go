// Package seq builds maybe.Maybe values from Go maps and sequences.
//
// Lift turns many Maybe values into one; First and its variants search a
// sequence and stop at the first match, so they are safe on unbounded
// iterators; Lookup reads a map key without the comma-ok dance.
package seq
