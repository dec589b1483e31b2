package maybe

import (
	"fmt"
)

// Kind reports which of the three states a Maybe holds.
type Kind uint8

const (
	kindUnset Kind = iota
	KindNothing
	KindValue
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindValue:
		return "value"
	case KindError:
		return "error"
	default:
		return "unset"
	}
}

// Maybe holds exactly one of: a value, an error, or nothing.
//
// The zero value is not a fourth state. It stands for a missing result and is
// observed as an Error carrying ErrProtocolViolation.
type Maybe[T any] struct {
	kind  Kind
	value T
	err   *Error
}

func From[T any](v T) Maybe[T] {
	return Maybe[T]{
		kind:  KindValue,
		value: v,
	}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{kind: KindNothing}
}

// FromError builds an Error state whose root cause is err.
func FromError[T any](err error) Maybe[T] {
	return FailWith[T](NewError(err))
}

// Throw is FromError under the name callers reach for when converting a failure.
func Throw[T any](err error) Maybe[T] {
	return FromError[T](err)
}

func FailWith[T any](err *Error) Maybe[T] {
	if err == nil {
		return Maybe[T]{kind: KindError, err: protocolViolation}
	}
	return Maybe[T]{
		kind: KindError,
		err:  err,
	}
}

func Fail[T any](messages ...string) Maybe[T] {
	return FailWith[T](NewErrorMessages(messages...))
}

func Failf[T any](format string, args ...any) Maybe[T] {
	return FailWith[T](Errorf(format, args...))
}

// Defined returns Nothing when v is nil (a nil pointer, map, slice, chan, func
// or interface) and a Value otherwise.
func Defined[T any](v T) Maybe[T] {
	if IsNil(v) {
		return Nothing[T]()
	}
	return From(v)
}

func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return From(*p)
}

// FromOk lifts the comma-ok idiom.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return From(v)
}

// FromResult lifts a (value, error) pair. A non-nil err wins over v.
func FromResult[T any](v T, err error) Maybe[T] {
	if !IsNil(err) {
		return FromError[T](err)
	}
	return From(v)
}

func (m Maybe[T]) Kind() Kind {
	if m.kind == kindUnset {
		return KindError
	}
	return m.kind
}

func (m Maybe[T]) HasValue() bool {
	return m.kind == KindValue
}

func (m Maybe[T]) IsNothing() bool {
	return m.kind == KindNothing
}

func (m Maybe[T]) IsError() bool {
	return m.Kind() == KindError
}

// Error returns the failure payload, or nil unless m is in the Error state.
func (m Maybe[T]) Error() *Error {
	switch m.kind {
	case KindError:
		return m.err
	case kindUnset:
		return protocolViolation
	default:
		return nil
	}
}

// Value returns the contained value. Reading Nothing yields ErrNoValue, reading
// an Error yields a *ComputationError wrapping the root cause.
func (m Maybe[T]) Value() (T, error) {
	switch m.kind {
	case KindValue:
		return m.value, nil
	case KindNothing:
		var zero T
		return zero, ErrNoValue
	default:
		var zero T
		return zero, m.Error().Err()
	}
}

// MustValue is Value that panics instead of returning the error.
func (m Maybe[T]) MustValue() T {
	v, err := m.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns nil unless m is in the Error state.
func (m Maybe[T]) Err() error {
	if !m.IsError() {
		return nil
	}
	return m.Error().Err()
}

// CrashIfError panics with the computation error if m failed and does nothing
// otherwise.
func (m Maybe[T]) CrashIfError() {
	if m.IsError() {
		m.Error().Throw()
	}
}

func (m Maybe[T]) ValueOrDefault(def T) T {
	if m.kind == KindValue {
		return m.value
	}
	return def
}

func (m Maybe[T]) ValueOrZero() T {
	var zero T
	return m.ValueOrDefault(zero)
}

func (m Maybe[T]) String() string {
	switch m.kind {
	case KindValue:
		return fmt.Sprint(m.value)
	case KindNothing:
		return "<nothing>"
	default:
		return "ERROR: " + m.Error().Error()
	}
}

// retype moves a non-value state to another type parameter.
func retype[T, V any](m Maybe[T]) Maybe[V] {
	if m.kind == KindNothing {
		return Nothing[V]()
	}
	return FailWith[V](m.Error())
}
