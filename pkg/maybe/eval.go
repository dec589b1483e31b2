package maybe

import (
	"github.com/pkg/errors"
)

// capture runs fn and turns a panic into an Error state and an uninitialized
// result into the protocol violation. Every combinator that calls caller code
// goes through here.
func capture[V any](fn func() Maybe[V]) (res Maybe[V]) {
	defer func() {
		if r := recover(); r != nil {
			res = FromError[V](panicError(r))
		}
	}()

	res = fn()
	if res.kind == kindUnset {
		return FailWith[V](protocolViolation)
	}
	return res
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Errorf("%v", r)
}

// Eval runs f, capturing a panic as an Error.
func Eval[T any](f func() T) Maybe[T] {
	return capture(func() Maybe[T] {
		return From(f())
	})
}

func EvalMaybe[T any](f func() Maybe[T]) Maybe[T] {
	return capture(f)
}

// EvalDo runs an effect-only function.
func EvalDo(f func()) Maybe[Unit] {
	return capture(func() Maybe[Unit] {
		f()
		return Ok()
	})
}
