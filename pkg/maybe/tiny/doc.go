// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of maybe.Maybe[T] values of one type.
//
// - Start/FromValue: create a Chain
// - Then/Map/Where: compose while the chain holds a value
// - Or/And: pick between alternative chains
// - RepeatUntil/While: loop a step while the chain holds a value
// - Ensure: trigger side effects per state
// - Finally: reduce to a concrete value via handlers
//
// For steps that change the value type use maybe.Then or package solo.
package tiny
