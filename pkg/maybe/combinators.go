package maybe

import (
	"fmt"
)

// Then is bind. On a value it calls fn and returns its result as is; a panic
// in fn becomes an Error. Error and Nothing short-circuit without calling fn,
// an Error keeping its original payload.
func Then[T, V any](m Maybe[T], fn func(T) Maybe[V]) Maybe[V] {
	if m.kind != KindValue {
		return retype[T, V](m)
	}
	return capture(func() Maybe[V] {
		return fn(m.value)
	})
}

// Where keeps the value when pred holds and turns it into Nothing otherwise.
func (m Maybe[T]) Where(pred func(T) bool) Maybe[T] {
	return Then(m, func(v T) Maybe[T] {
		if pred(v) {
			return From(v)
		}
		return Nothing[T]()
	})
}

// WhenError replaces an Error with the result of backup.
func (m Maybe[T]) WhenError(backup func(*Error) Maybe[T]) Maybe[T] {
	if !m.IsError() {
		return m
	}
	failure := m.Error()
	return EvalMaybe(func() Maybe[T] {
		return backup(failure)
	})
}

func (m Maybe[T]) WhenErrorReturn(backup func(*Error) T) Maybe[T] {
	if !m.IsError() {
		return m
	}
	failure := m.Error()
	return Eval(func() T {
		return backup(failure)
	})
}

func (m Maybe[T]) WhenNothing(backup func() Maybe[T]) Maybe[T] {
	if m.kind != KindNothing {
		return m
	}
	return EvalMaybe(backup)
}

func (m Maybe[T]) WhenNothingReturn(backup func() T) Maybe[T] {
	if m.kind != KindNothing {
		return m
	}
	return Eval(backup)
}

func (m Maybe[T]) WhenNothingReturnZero() Maybe[T] {
	return m.WhenNothingReturn(func() T {
		var zero T
		return zero
	})
}

// WhenNothingFail turns Nothing into an Error with the given message.
func (m Maybe[T]) WhenNothingFail(message string) Maybe[T] {
	if m.kind != KindNothing {
		return m
	}
	return Fail[T](message)
}

func (m Maybe[T]) WhenNothingFailf(format string, args ...any) Maybe[T] {
	if m.kind != KindNothing {
		return m
	}
	return Fail[T](fmt.Sprintf(format, args...))
}

// WhenNothingFailWith turns Nothing into an Error whose root cause is built by
// createErr. A nil error from createErr yields ErrNilFailure as the cause.
func (m Maybe[T]) WhenNothingFailWith(createErr func() error) Maybe[T] {
	if m.kind != KindNothing {
		return m
	}
	return EvalMaybe(func() Maybe[T] {
		err := createErr()
		if IsNil(err) {
			err = ErrNilFailure
		}
		return FromError[T](err)
	})
}

// WhenNothingFailError is WhenNothingFailWith for a ready-made payload. A nil
// payload is reported as ErrProtocolViolation.
func (m Maybe[T]) WhenNothingFailError(createErr func() *Error) Maybe[T] {
	if m.kind != KindNothing {
		return m
	}
	return EvalMaybe(func() Maybe[T] {
		return FailWith[T](createErr())
	})
}

// Do runs action on the value for its side effect and hands the value on.
func (m Maybe[T]) Do(action func(T)) Maybe[T] {
	return Then(m, func(v T) Maybe[T] {
		action(v)
		return From(v)
	})
}

// LogErrors passes a failure to log, the root cause once if there is one and
// each message otherwise. m is returned unchanged, even when log panics; the
// panic is dropped.
func (m Maybe[T]) LogErrors(log func(any)) Maybe[T] {
	if !m.IsError() {
		return m
	}

	failure := m.Error()
	EvalDo(func() {
		if failure.Cause() != nil {
			log(failure.Cause())
			return
		}
		for _, msg := range failure.messages {
			log(msg)
		}
	})
	return m
}
