package maybe

import (
	"fmt"
)

// If evaluates then or otherwise depending on condition. A nil otherwise
// yields Nothing. Panics in either body become an Error.
func If[T any](condition bool, then func() Maybe[T], otherwise func() Maybe[T]) Maybe[T] {
	switch {
	case condition:
		return EvalMaybe(then)
	case otherwise != nil:
		return EvalMaybe(otherwise)
	default:
		return Nothing[T]()
	}
}

// IfValue is If for bodies that produce a plain value.
func IfValue[T any](condition bool, then func() T) Maybe[T] {
	if !condition {
		return Nothing[T]()
	}
	return Eval(then)
}

func Holds(condition bool) Maybe[Unit] {
	if condition {
		return Ok()
	}
	return Nothing[Unit]()
}

func FailWhen(condition bool, format string, args ...any) Maybe[Unit] {
	if condition {
		return Fail[Unit](fmt.Sprintf(format, args...))
	}
	return Ok()
}

func FailWhenFunc(condition bool, message func() string) Maybe[Unit] {
	if !condition {
		return Ok()
	}
	return EvalMaybe(func() Maybe[Unit] {
		return Fail[Unit](message())
	})
}

func Do(action func()) Maybe[Unit] {
	return EvalDo(action)
}

func DoWhen(condition bool, action func()) Maybe[Unit] {
	return EvalDo(func() {
		if condition {
			action()
		}
	})
}
